package domain

// ExpertiseLevel grades a speciality.
type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "Beginner"
	ExpertiseIntermediate ExpertiseLevel = "Intermediate"
	ExpertiseAdvanced     ExpertiseLevel = "Advanced"
	ExpertiseExpert       ExpertiseLevel = "Expert"
)

// ContactStatus tracks how far a contact submission has been handled.
type ContactStatus string

const (
	ContactNew        ContactStatus = "New"
	ContactInProgress ContactStatus = "In Progress"
	ContactResolved   ContactStatus = "Resolved"
	ContactClosed     ContactStatus = "Closed"
)

const DefaultTestimonialRating = 5

// Banner is a hero image shown on the landing page.
type Banner struct {
	Document `bson:",inline"`
	Title    string `json:"title" bson:"title"`
	Image    string `json:"image" bson:"image"`
	Link     string `json:"link" bson:"link"`
	IsActive bool   `json:"isActive" bson:"isActive"`
}

// Service is an offering listed with an optional price.
type Service struct {
	Document    `bson:",inline"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image" bson:"image"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	IsActive    bool    `json:"isActive" bson:"isActive"`
}

type Speciality struct {
	Document       `bson:",inline"`
	Name           string         `json:"name" bson:"name"`
	Description    string         `json:"description" bson:"description"`
	Image          string         `json:"image" bson:"image"`
	ExpertiseLevel ExpertiseLevel `json:"expertiseLevel" bson:"expertiseLevel"`
	IsActive       bool           `json:"isActive" bson:"isActive"`
}

type Testimonial struct {
	Document   `bson:",inline"`
	ClientName string  `json:"clientName" bson:"clientName"`
	Content    string  `json:"content" bson:"content"`
	Rating     float64 `json:"rating" bson:"rating"`
	Image      string  `json:"image" bson:"image"`
	IsActive   bool    `json:"isActive" bson:"isActive"`
}

// AboutUs is one block of the "about us" page.
type AboutUs struct {
	Document    `bson:",inline"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
	IsActive    bool   `json:"isActive" bson:"isActive"`
}

// ContactSubmission is a message sent through the public contact form. It has
// no active flag; listings always return every submission.
type ContactSubmission struct {
	Document `bson:",inline"`
	Name     string        `json:"name" bson:"name"`
	Email    string        `json:"email" bson:"email"`
	Phone    string        `json:"phone" bson:"phone"`
	Subject  string        `json:"subject" bson:"subject"`
	Message  string        `json:"message" bson:"message"`
	Status   ContactStatus `json:"status" bson:"status"`
	IsRead   bool          `json:"isRead" bson:"isRead"`
}
