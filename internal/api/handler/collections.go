package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

// The collection handlers below only pin ResourceHandler to a concrete
// collection so each route carries its own API docs.

// BannerHandler serves /api/banners.
type BannerHandler struct {
	*ResourceHandler[*domain.Banner, ports.BannerInput, ports.BannerUpdate]
}

// List handles GET /api/banners.
//
// @Summary      List active banners
// @Tags         banners
// @Produce      json
// @Success      200  {array}   domain.Banner
// @Failure      500  {object}  ErrorResponse
// @Router       /api/banners [get]
func (h BannerHandler) List(c echo.Context) error { return h.ResourceHandler.List(c) }

// Get handles GET /api/banners/:id.
//
// @Summary      Get banner
// @Tags         banners
// @Produce      json
// @Param        id   path      string  true  "Banner id"
// @Success      200  {object}  domain.Banner
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/banners/{id} [get]
func (h BannerHandler) Get(c echo.Context) error { return h.ResourceHandler.Get(c) }

// Create handles POST /api/banners.
//
// @Summary      Create banner
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.BannerInput  true  "Banner"
// @Success      201   {object}  domain.Banner
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/banners [post]
func (h BannerHandler) Create(c echo.Context) error { return h.ResourceHandler.Create(c) }

// Update handles PUT /api/banners/:id.
//
// @Summary      Update banner
// @Description  Only the fields present in the body change.
// @Tags         banners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Banner id"
// @Param        body  body      ports.BannerUpdate  true  "Fields to change"
// @Success      200   {object}  domain.Banner
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/banners/{id} [put]
func (h BannerHandler) Update(c echo.Context) error { return h.ResourceHandler.Update(c) }

// Delete handles DELETE /api/banners/:id.
//
// @Summary      Delete banner
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Banner id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/banners/{id} [delete]
func (h BannerHandler) Delete(c echo.Context) error { return h.ResourceHandler.Delete(c) }

// ServiceHandler serves /api/services.
type ServiceHandler struct {
	*ResourceHandler[*domain.Service, ports.ServiceInput, ports.ServiceUpdate]
}

// List handles GET /api/services.
//
// @Summary      List active services
// @Tags         services
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      500  {object}  ErrorResponse
// @Router       /api/services [get]
func (h ServiceHandler) List(c echo.Context) error { return h.ResourceHandler.List(c) }

// Get handles GET /api/services/:id.
//
// @Summary      Get service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/services/{id} [get]
func (h ServiceHandler) Get(c echo.Context) error { return h.ResourceHandler.Get(c) }

// Create handles POST /api/services.
//
// @Summary      Create service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ServiceInput  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/services [post]
func (h ServiceHandler) Create(c echo.Context) error { return h.ResourceHandler.Create(c) }

// Update handles PUT /api/services/:id.
//
// @Summary      Update service
// @Description  Only the fields present in the body change.
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Service id"
// @Param        body  body      ports.ServiceUpdate  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/services/{id} [put]
func (h ServiceHandler) Update(c echo.Context) error { return h.ResourceHandler.Update(c) }

// Delete handles DELETE /api/services/:id.
//
// @Summary      Delete service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/services/{id} [delete]
func (h ServiceHandler) Delete(c echo.Context) error { return h.ResourceHandler.Delete(c) }

// SpecialityHandler serves /api/specialities.
type SpecialityHandler struct {
	*ResourceHandler[*domain.Speciality, ports.SpecialityInput, ports.SpecialityUpdate]
}

// List handles GET /api/specialities.
//
// @Summary      List active specialities
// @Tags         specialities
// @Produce      json
// @Success      200  {array}   domain.Speciality
// @Failure      500  {object}  ErrorResponse
// @Router       /api/specialities [get]
func (h SpecialityHandler) List(c echo.Context) error { return h.ResourceHandler.List(c) }

// Get handles GET /api/specialities/:id.
//
// @Summary      Get speciality
// @Tags         specialities
// @Produce      json
// @Param        id   path      string  true  "Speciality id"
// @Success      200  {object}  domain.Speciality
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/specialities/{id} [get]
func (h SpecialityHandler) Get(c echo.Context) error { return h.ResourceHandler.Get(c) }

// Create handles POST /api/specialities.
//
// @Summary      Create speciality
// @Tags         specialities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.SpecialityInput  true  "Speciality"
// @Success      201   {object}  domain.Speciality
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/specialities [post]
func (h SpecialityHandler) Create(c echo.Context) error { return h.ResourceHandler.Create(c) }

// Update handles PUT /api/specialities/:id.
//
// @Summary      Update speciality
// @Description  Only the fields present in the body change.
// @Tags         specialities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Speciality id"
// @Param        body  body      ports.SpecialityUpdate  true  "Fields to change"
// @Success      200   {object}  domain.Speciality
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/specialities/{id} [put]
func (h SpecialityHandler) Update(c echo.Context) error { return h.ResourceHandler.Update(c) }

// Delete handles DELETE /api/specialities/:id.
//
// @Summary      Delete speciality
// @Tags         specialities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Speciality id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/specialities/{id} [delete]
func (h SpecialityHandler) Delete(c echo.Context) error { return h.ResourceHandler.Delete(c) }

// TestimonialHandler serves /api/testimonials.
type TestimonialHandler struct {
	*ResourceHandler[*domain.Testimonial, ports.TestimonialInput, ports.TestimonialUpdate]
}

// List handles GET /api/testimonials.
//
// @Summary      List active testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      500  {object}  ErrorResponse
// @Router       /api/testimonials [get]
func (h TestimonialHandler) List(c echo.Context) error { return h.ResourceHandler.List(c) }

// Get handles GET /api/testimonials/:id.
//
// @Summary      Get testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial id"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/testimonials/{id} [get]
func (h TestimonialHandler) Get(c echo.Context) error { return h.ResourceHandler.Get(c) }

// Create handles POST /api/testimonials.
//
// @Summary      Create testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.TestimonialInput  true  "Testimonial"
// @Success      201   {object}  domain.Testimonial
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/testimonials [post]
func (h TestimonialHandler) Create(c echo.Context) error { return h.ResourceHandler.Create(c) }

// Update handles PUT /api/testimonials/:id.
//
// @Summary      Update testimonial
// @Description  Only the fields present in the body change.
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Testimonial id"
// @Param        body  body      ports.TestimonialUpdate  true  "Fields to change"
// @Success      200   {object}  domain.Testimonial
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/testimonials/{id} [put]
func (h TestimonialHandler) Update(c echo.Context) error { return h.ResourceHandler.Update(c) }

// Delete handles DELETE /api/testimonials/:id.
//
// @Summary      Delete testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Testimonial id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/testimonials/{id} [delete]
func (h TestimonialHandler) Delete(c echo.Context) error { return h.ResourceHandler.Delete(c) }

// AboutUsHandler serves /api/about-us.
type AboutUsHandler struct {
	*ResourceHandler[*domain.AboutUs, ports.AboutUsInput, ports.AboutUsUpdate]
}

// List handles GET /api/about-us.
//
// @Summary      List active about us entries
// @Tags         about-us
// @Produce      json
// @Success      200  {array}   domain.AboutUs
// @Failure      500  {object}  ErrorResponse
// @Router       /api/about-us [get]
func (h AboutUsHandler) List(c echo.Context) error { return h.ResourceHandler.List(c) }

// Get handles GET /api/about-us/:id.
//
// @Summary      Get about us entry
// @Tags         about-us
// @Produce      json
// @Param        id   path      string  true  "About us entry id"
// @Success      200  {object}  domain.AboutUs
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/about-us/{id} [get]
func (h AboutUsHandler) Get(c echo.Context) error { return h.ResourceHandler.Get(c) }

// Create handles POST /api/about-us.
//
// @Summary      Create about us entry
// @Tags         about-us
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.AboutUsInput  true  "About us entry"
// @Success      201   {object}  domain.AboutUs
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/about-us [post]
func (h AboutUsHandler) Create(c echo.Context) error { return h.ResourceHandler.Create(c) }

// Update handles PUT /api/about-us/:id.
//
// @Summary      Update about us entry
// @Description  Only the fields present in the body change.
// @Tags         about-us
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "About us entry id"
// @Param        body  body      ports.AboutUsUpdate  true  "Fields to change"
// @Success      200   {object}  domain.AboutUs
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/about-us/{id} [put]
func (h AboutUsHandler) Update(c echo.Context) error { return h.ResourceHandler.Update(c) }

// Delete handles DELETE /api/about-us/:id.
//
// @Summary      Delete about us entry
// @Tags         about-us
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "About us entry id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/about-us/{id} [delete]
func (h AboutUsHandler) Delete(c echo.Context) error { return h.ResourceHandler.Delete(c) }

// ContactAdminHandler serves the token protected /api/contact routes. Submissions come in
// through ContactHandler.
type ContactAdminHandler struct {
	*ResourceHandler[*domain.ContactSubmission, ports.ContactInput, ports.ContactUpdate]
}

// List handles GET /api/contact.
//
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ContactSubmission
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/contact [get]
func (h ContactAdminHandler) List(c echo.Context) error { return h.ResourceHandler.List(c) }

// Get handles GET /api/contact/:id.
//
// @Summary      Get contact submission
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact submission id"
// @Success      200  {object}  domain.ContactSubmission
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/contact/{id} [get]
func (h ContactAdminHandler) Get(c echo.Context) error { return h.ResourceHandler.Get(c) }

// Update handles PUT /api/contact/:id.
//
// @Summary      Update contact submission
// @Description  Sets the follow-up status or the read flag.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Contact submission id"
// @Param        body  body      ports.ContactUpdate  true  "Fields to change"
// @Success      200   {object}  domain.ContactSubmission
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/contact/{id} [put]
func (h ContactAdminHandler) Update(c echo.Context) error { return h.ResourceHandler.Update(c) }

// Delete handles DELETE /api/contact/:id.
//
// @Summary      Delete contact submission
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact submission id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/contact/{id} [delete]
func (h ContactAdminHandler) Delete(c echo.Context) error { return h.ResourceHandler.Delete(c) }
