package ports

// Create and update payloads for the content collections. They double as the
// HTTP request bodies, so they carry json and validate tags. Update payloads
// use pointers: nil means "leave unchanged".

type BannerInput struct {
	Title    string `json:"title"`
	Image    string `json:"image" validate:"required"`
	Link     string `json:"link"`
	IsActive *bool  `json:"isActive"`
}

type BannerUpdate struct {
	Title    *string `json:"title"`
	Image    *string `json:"image"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"isActive"`
}

type ServiceInput struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Category    string  `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

type ServiceUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

type SpecialityInput struct {
	Name           string `json:"name"           validate:"required"`
	Description    string `json:"description"    validate:"required"`
	Image          string `json:"image"`
	ExpertiseLevel string `json:"expertiseLevel" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	IsActive       *bool  `json:"isActive"`
}

type SpecialityUpdate struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Image          *string `json:"image"`
	ExpertiseLevel *string `json:"expertiseLevel" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	IsActive       *bool   `json:"isActive"`
}

type TestimonialInput struct {
	ClientName string   `json:"clientName" validate:"required"`
	Content    string   `json:"content"    validate:"required"`
	Rating     *float64 `json:"rating"     validate:"omitempty,gte=0,lte=5"`
	Image      string   `json:"image"`
	IsActive   *bool    `json:"isActive"`
}

type TestimonialUpdate struct {
	ClientName *string  `json:"clientName"`
	Content    *string  `json:"content"`
	Rating     *float64 `json:"rating"   validate:"omitempty,gte=0,lte=5"`
	Image      *string  `json:"image"`
	IsActive   *bool    `json:"isActive"`
}

type AboutUsInput struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

type AboutUsUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}
