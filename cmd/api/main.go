// Command api serves the content admin REST API.
//
// @title                       Content Admin API
// @version                     1.0
// @description                 CRUD backend for the website's banners, services, specialities, testimonials, about-us entries and contact submissions.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/musicadmin/content-api/internal/api"
	"github.com/musicadmin/content-api/internal/api/handler"
	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
	"github.com/musicadmin/content-api/internal/core/service"
	mongostore "github.com/musicadmin/content-api/internal/infrastructure/db/mongo"
	redisstore "github.com/musicadmin/content-api/internal/infrastructure/db/redis"
	"github.com/musicadmin/content-api/internal/pkg/config"
	"github.com/musicadmin/content-api/internal/pkg/security"
	"github.com/musicadmin/content-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.New(logger.Options{})
		l.Fatal().Err(err).Msg("error loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "content-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongostore.ConnectWithRetry(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	}, mongostore.RetryPolicy{
		Attempts: cfg.Startup.Attempts,
		Delay:    cfg.Startup.RetryDelay,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	users := mongostore.NewUserRepository(db)
	banners := mongostore.NewResourceRepository(db, mongostore.CollectionBanners, func() *domain.Banner { return &domain.Banner{} })
	services := mongostore.NewResourceRepository(db, mongostore.CollectionServices, func() *domain.Service { return &domain.Service{} })
	specialities := mongostore.NewResourceRepository(db, mongostore.CollectionSpecialities, func() *domain.Speciality { return &domain.Speciality{} })
	testimonials := mongostore.NewResourceRepository(db, mongostore.CollectionTestimonials, func() *domain.Testimonial { return &domain.Testimonial{} })
	aboutUs := mongostore.NewResourceRepository(db, mongostore.CollectionAboutUs, func() *domain.AboutUs { return &domain.AboutUs{} })
	contact := mongostore.NewResourceRepository(db, mongostore.CollectionContact, func() *domain.ContactSubmission { return &domain.ContactSubmission{} })

	indexed := []struct {
		name string
		repo interface{ EnsureIndexes(context.Context) error }
	}{
		{mongostore.CollectionUsers, users},
		{mongostore.CollectionBanners, banners},
		{mongostore.CollectionServices, services},
		{mongostore.CollectionSpecialities, specialities},
		{mongostore.CollectionTestimonials, testimonials},
		{mongostore.CollectionAboutUs, aboutUs},
		{mongostore.CollectionContact, contact},
	}
	for _, ix := range indexed {
		if err := ix.repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", ix.name, err)
		}
	}

	if _, err := service.NewBootstrapper(users, service.AdminAccount{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log).EnsureAdmin(ctx); err != nil {
		return err
	}

	// Redis is optional and only backs contact dedup.
	var (
		dedup     ports.SubmissionDeduper
		redisPing handler.PingFunc
	)
	if rdb := connectRedis(ctx, cfg, log); rdb != nil {
		defer rdb.Close()
		dedup = redisstore.NewContactDeduper(rdb)
		redisPing = redisstore.Pinger(rdb)
	}

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(api.Services{
		Auth:         service.NewAuthService(users, tokens, log),
		Banners:      service.NewResourceService(service.BannerSchema, banners, log),
		Services:     service.NewResourceService(service.ServiceSchema, services, log),
		Specialities: service.NewResourceService(service.SpecialitySchema, specialities, log),
		Testimonials: service.NewResourceService(service.TestimonialSchema, testimonials, log),
		AboutUs:      service.NewResourceService(service.AboutUsSchema, aboutUs, log),
		Contact:      service.NewContactService(contact, dedup, cfg.Redis.DedupTTL, log),
	}, api.Options{
		BaseURL:     cfg.BaseURL,
		Environment: cfg.Env,
		CORSOrigin:  cfg.CORSOrigin,
		BodyLimit:   cfg.BodyLimit,
		UploadDir:   cfg.UploadDir,
		Tokens:      tokens,
		Logger:      log,
		MongoPing:   func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		RedisPing:   redisPing,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("base_url", cfg.BaseURL).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// connectRedis returns nil when Redis is not configured or unreachable; the
// API then runs without contact dedup.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *goredis.Client {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("redis not configured, contact dedup disabled")
		return nil
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, contact dedup disabled")
		return nil
	}
	return rdb
}
