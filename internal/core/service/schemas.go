package service

import (
	"strings"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

// Route segments of the content collections.
const (
	ResourceBanners      = "banners"
	ResourceServices     = "services"
	ResourceSpecialities = "specialities"
	ResourceTestimonials = "testimonials"
	ResourceAboutUs      = "about-us"
	ResourceContact      = "contact"
)

var BannerSchema = Schema[*domain.Banner, ports.BannerInput, ports.BannerUpdate]{
	Name:       ResourceBanners,
	Label:      "Banner",
	ActiveOnly: true,
	Build: func(in ports.BannerInput) (*domain.Banner, error) {
		if err := required("Image is required", &in.Image); err != nil {
			return nil, err
		}
		return &domain.Banner{
			Title:    in.Title,
			Image:    in.Image,
			Link:     in.Link,
			IsActive: activeOrDefault(in.IsActive),
		}, nil
	},
	Changes: func(in ports.BannerUpdate) (domain.Changes, error) {
		c := domain.Changes{}
		setFilled(c, "image", in.Image)
		setPresent(c, "title", in.Title)
		setPresent(c, "link", in.Link)
		setPresent(c, "isActive", in.IsActive)
		return c, nil
	},
}

var ServiceSchema = Schema[*domain.Service, ports.ServiceInput, ports.ServiceUpdate]{
	Name:       ResourceServices,
	Label:      "Service",
	ActiveOnly: true,
	Build: func(in ports.ServiceInput) (*domain.Service, error) {
		if err := required("Name and description are required", &in.Name, &in.Description); err != nil {
			return nil, err
		}
		if in.Price < 0 {
			return nil, domain.NewValidation("Price cannot be negative")
		}
		return &domain.Service{
			Name:        in.Name,
			Description: in.Description,
			Image:       in.Image,
			Price:       in.Price,
			Category:    in.Category,
			IsActive:    activeOrDefault(in.IsActive),
		}, nil
	},
	Changes: func(in ports.ServiceUpdate) (domain.Changes, error) {
		if in.Price != nil && *in.Price < 0 {
			return nil, domain.NewValidation("Price cannot be negative")
		}
		c := domain.Changes{}
		setFilled(c, "name", in.Name)
		setFilled(c, "description", in.Description)
		setPresent(c, "image", in.Image)
		setPresent(c, "price", in.Price)
		setPresent(c, "category", in.Category)
		setPresent(c, "isActive", in.IsActive)
		return c, nil
	},
}

var SpecialitySchema = Schema[*domain.Speciality, ports.SpecialityInput, ports.SpecialityUpdate]{
	Name:       ResourceSpecialities,
	Label:      "Speciality",
	ActiveOnly: true,
	Build: func(in ports.SpecialityInput) (*domain.Speciality, error) {
		if err := required("Name and description are required", &in.Name, &in.Description); err != nil {
			return nil, err
		}
		level := domain.ExpertiseIntermediate
		if in.ExpertiseLevel != "" {
			if !validExpertise(in.ExpertiseLevel) {
				return nil, domain.NewValidation("Invalid expertise level %q", in.ExpertiseLevel)
			}
			level = domain.ExpertiseLevel(in.ExpertiseLevel)
		}
		return &domain.Speciality{
			Name:           in.Name,
			Description:    in.Description,
			Image:          in.Image,
			ExpertiseLevel: level,
			IsActive:       activeOrDefault(in.IsActive),
		}, nil
	},
	Changes: func(in ports.SpecialityUpdate) (domain.Changes, error) {
		c := domain.Changes{}
		setFilled(c, "name", in.Name)
		setFilled(c, "description", in.Description)
		setPresent(c, "image", in.Image)
		if in.ExpertiseLevel != nil && *in.ExpertiseLevel != "" {
			if !validExpertise(*in.ExpertiseLevel) {
				return nil, domain.NewValidation("Invalid expertise level %q", *in.ExpertiseLevel)
			}
			c["expertiseLevel"] = *in.ExpertiseLevel
		}
		setPresent(c, "isActive", in.IsActive)
		return c, nil
	},
}

var TestimonialSchema = Schema[*domain.Testimonial, ports.TestimonialInput, ports.TestimonialUpdate]{
	Name:       ResourceTestimonials,
	Label:      "Testimonial",
	ActiveOnly: true,
	Build: func(in ports.TestimonialInput) (*domain.Testimonial, error) {
		if err := required("Client name and content are required", &in.ClientName, &in.Content); err != nil {
			return nil, err
		}
		rating := float64(domain.DefaultTestimonialRating)
		if in.Rating != nil {
			rating = *in.Rating
		}
		if err := checkRating(rating); err != nil {
			return nil, err
		}
		return &domain.Testimonial{
			ClientName: in.ClientName,
			Content:    in.Content,
			Rating:     rating,
			Image:      in.Image,
			IsActive:   activeOrDefault(in.IsActive),
		}, nil
	},
	Changes: func(in ports.TestimonialUpdate) (domain.Changes, error) {
		if in.Rating != nil {
			if err := checkRating(*in.Rating); err != nil {
				return nil, err
			}
		}
		c := domain.Changes{}
		setFilled(c, "clientName", in.ClientName)
		setFilled(c, "content", in.Content)
		setPresent(c, "rating", in.Rating)
		setPresent(c, "image", in.Image)
		setPresent(c, "isActive", in.IsActive)
		return c, nil
	},
}

var AboutUsSchema = Schema[*domain.AboutUs, ports.AboutUsInput, ports.AboutUsUpdate]{
	Name:       ResourceAboutUs,
	Label:      "About us entry",
	ActiveOnly: true,
	Build: func(in ports.AboutUsInput) (*domain.AboutUs, error) {
		if err := required("Title and description are required", &in.Title, &in.Description); err != nil {
			return nil, err
		}
		return &domain.AboutUs{
			Title:       in.Title,
			Description: in.Description,
			Image:       in.Image,
			IsActive:    activeOrDefault(in.IsActive),
		}, nil
	},
	Changes: func(in ports.AboutUsUpdate) (domain.Changes, error) {
		c := domain.Changes{}
		setFilled(c, "title", in.Title)
		setFilled(c, "description", in.Description)
		setPresent(c, "image", in.Image)
		setPresent(c, "isActive", in.IsActive)
		return c, nil
	},
}

// ContactSchema has no active flag: admins always see every submission.
var ContactSchema = Schema[*domain.ContactSubmission, ports.ContactInput, ports.ContactUpdate]{
	Name:  ResourceContact,
	Label: "Contact submission",
	Build: func(in ports.ContactInput) (*domain.ContactSubmission, error) {
		if err := required("Name, email, subject and message are required",
			&in.Name, &in.Email, &in.Subject, &in.Message); err != nil {
			return nil, err
		}
		return &domain.ContactSubmission{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   strings.TrimSpace(in.Phone),
			Subject: in.Subject,
			Message: in.Message,
			Status:  domain.ContactNew,
			IsRead:  false,
		}, nil
	},
	Changes: func(in ports.ContactUpdate) (domain.Changes, error) {
		c := domain.Changes{}
		if in.Status != nil && *in.Status != "" {
			if !validContactStatus(*in.Status) {
				return nil, domain.NewValidation("Invalid status %q", *in.Status)
			}
			c["status"] = *in.Status
		}
		setPresent(c, "isRead", in.IsRead)
		return c, nil
	},
}

// required trims each field in place and fails with msg if any is blank.
func required(msg string, fields ...*string) error {
	missing := false
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
		if *f == "" {
			missing = true
		}
	}
	if missing {
		return domain.NewValidation("%s", msg)
	}
	return nil
}

// setFilled records a text change only when the value is non-blank; an empty
// string on these fields means "not provided".
func setFilled(c domain.Changes, field string, v *string) {
	if v == nil {
		return
	}
	if s := strings.TrimSpace(*v); s != "" {
		c[field] = s
	}
}

// setPresent records any provided value, including "", 0 and false.
func setPresent[T any](c domain.Changes, field string, v *T) {
	if v != nil {
		c[field] = *v
	}
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func checkRating(r float64) error {
	if r < 0 || r > 5 {
		return domain.NewValidation("Rating must be between 0 and 5")
	}
	return nil
}

func validExpertise(level string) bool {
	switch domain.ExpertiseLevel(level) {
	case domain.ExpertiseBeginner, domain.ExpertiseIntermediate, domain.ExpertiseAdvanced, domain.ExpertiseExpert:
		return true
	}
	return false
}

func validContactStatus(status string) bool {
	switch domain.ContactStatus(status) {
	case domain.ContactNew, domain.ContactInProgress, domain.ContactResolved, domain.ContactClosed:
		return true
	}
	return false
}
