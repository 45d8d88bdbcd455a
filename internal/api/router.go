package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/musicadmin/content-api/docs"
	"github.com/musicadmin/content-api/internal/api/handler"
	"github.com/musicadmin/content-api/internal/api/metrics"
	"github.com/musicadmin/content-api/internal/api/middleware"
	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
	"github.com/musicadmin/content-api/internal/core/service"
)

// ContactService is the contact collection: admin CRUD plus public submit.
type ContactService interface {
	ports.ResourceService[*domain.ContactSubmission, ports.ContactInput, ports.ContactUpdate]
	handler.ContactSubmitter
}

// Services groups the use cases the router exposes.
type Services struct {
	Auth         ports.AuthService
	Banners      ports.ResourceService[*domain.Banner, ports.BannerInput, ports.BannerUpdate]
	Services     ports.ResourceService[*domain.Service, ports.ServiceInput, ports.ServiceUpdate]
	Specialities ports.ResourceService[*domain.Speciality, ports.SpecialityInput, ports.SpecialityUpdate]
	Testimonials ports.ResourceService[*domain.Testimonial, ports.TestimonialInput, ports.TestimonialUpdate]
	AboutUs      ports.ResourceService[*domain.AboutUs, ports.AboutUsInput, ports.AboutUsUpdate]
	Contact      ContactService
}

// Options carries the HTTP-level settings and probes.
type Options struct {
	BaseURL     string
	Environment string
	CORSOrigin  string
	BodyLimit   string
	UploadDir   string

	Tokens middleware.TokenVerifier
	Logger zerolog.Logger

	// MongoPing is required; RedisPing is nil when Redis is not configured.
	MongoPing handler.PingFunc
	RedisPing handler.PingFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Each router owns a fresh Prometheus registry.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: splitOrigins(opts.CORSOrigin),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if opts.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(opts.BodyLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "content_api",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	auth := middleware.Auth(opts.Tokens)
	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth, m)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/login", authHandler.Login)

	// --- Content collections ---
	mountPublic(api, service.ResourceBanners, handler.BannerHandler{
		ResourceHandler: handler.NewResourceHandler(service.ResourceBanners, svc.Banners, m, opts.Logger)}, auth)
	mountPublic(api, service.ResourceServices, handler.ServiceHandler{
		ResourceHandler: handler.NewResourceHandler(service.ResourceServices, svc.Services, m, opts.Logger)}, auth)
	mountPublic(api, service.ResourceSpecialities, handler.SpecialityHandler{
		ResourceHandler: handler.NewResourceHandler(service.ResourceSpecialities, svc.Specialities, m, opts.Logger)}, auth)
	mountPublic(api, service.ResourceTestimonials, handler.TestimonialHandler{
		ResourceHandler: handler.NewResourceHandler(service.ResourceTestimonials, svc.Testimonials, m, opts.Logger)}, auth)
	mountPublic(api, service.ResourceAboutUs, handler.AboutUsHandler{
		ResourceHandler: handler.NewResourceHandler(service.ResourceAboutUs, svc.AboutUs, m, opts.Logger)}, auth)

	// --- Contact: public submit, admin everything else ---
	contactHandler := handler.NewContactHandler(svc.Contact, m, opts.Logger)
	contactAdmin := handler.ContactAdminHandler{
		ResourceHandler: handler.NewResourceHandler[*domain.ContactSubmission, ports.ContactInput, ports.ContactUpdate](
			service.ResourceContact, svc.Contact, m, opts.Logger),
	}
	contact := api.Group("/" + service.ResourceContact)
	contact.POST("", contactHandler.Submit)
	contact.GET("", contactAdmin.List, auth)
	contact.GET("/:id", contactAdmin.Get, auth)
	contact.PUT("/:id", contactAdmin.Update, auth)
	contact.DELETE("/:id", contactAdmin.Delete, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(opts.BaseURL, opts.Environment, Endpoints(opts.BaseURL))
	readinessHandler := handler.NewReadinessHandler(opts.MongoPing, opts.RedisPing)
	api.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	api.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	api.GET("/test", healthHandler.Test)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(opts.BaseURL, "https://"), "http://")
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if opts.UploadDir != "" {
		e.Static("/uploads", opts.UploadDir)
	}

	return e
}

// crudRoutes is the handler surface of one content collection.
type crudRoutes interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// mountPublic registers reads as public and writes behind auth.
func mountPublic(api *echo.Group, name string, h crudRoutes, auth echo.MiddlewareFunc) {
	g := api.Group("/" + name)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, auth)
	g.PUT("/:id", h.Update, auth)
	g.DELETE("/:id", h.Delete, auth)
}

// Endpoints lists the public API routes advertised by the health check.
func Endpoints(baseURL string) []string {
	paths := []string{
		"/api/auth/login",
		"/api/login",
		"/api/" + service.ResourceAboutUs,
		"/api/" + service.ResourceBanners,
		"/api/" + service.ResourceServices,
		"/api/" + service.ResourceSpecialities,
		"/api/" + service.ResourceTestimonials,
		"/api/" + service.ResourceContact,
	}
	base := strings.TrimSuffix(baseURL, "/")
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = base + p
	}
	return out
}

func splitOrigins(origin string) []string {
	if origin == "" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(origin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
