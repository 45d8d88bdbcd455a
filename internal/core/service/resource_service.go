package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

// Schema describes one content collection: how a create payload becomes a
// record and which stored fields an update payload changes.
type Schema[R domain.Record, C any, U any] struct {
	// Name is the collection's route segment, used in logs ("services").
	Name string
	// Label is the singular display name used in error messages ("Service").
	Label string
	// ActiveOnly hides records with isActive=false from List.
	ActiveOnly bool
	// Build validates the payload, applies defaults and returns a new record.
	// Validation failures must be *domain.ValidationError.
	Build func(C) (R, error)
	// Changes returns the fields to overwrite. An empty result leaves the
	// record untouched.
	Changes func(U) (domain.Changes, error)
}

// ResourceService implements ports.ResourceService for any Schema.
type ResourceService[R domain.Record, C any, U any] struct {
	schema Schema[R, C, U]
	repo   ports.ResourceRepository[R]
	logger zerolog.Logger
}

func NewResourceService[R domain.Record, C any, U any](
	schema Schema[R, C, U],
	repo ports.ResourceRepository[R],
	logger zerolog.Logger,
) *ResourceService[R, C, U] {
	return &ResourceService[R, C, U]{
		schema: schema,
		repo:   repo,
		logger: logger.With().Str("resource", schema.Name).Logger(),
	}
}

func (s *ResourceService[R, C, U]) Label() string { return s.schema.Label }

// List returns the collection newest first.
func (s *ResourceService[R, C, U]) List(ctx context.Context) ([]R, error) {
	records, err := s.repo.List(ctx, s.schema.ActiveOnly)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list records")
		return nil, err
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

func (s *ResourceService[R, C, U]) Get(ctx context.Context, id string) (R, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return record, s.translate(err, id, "failed to fetch record")
	}
	return record, nil
}

// Create validates input before touching the store; a rejected payload never
// produces a write.
func (s *ResourceService[R, C, U]) Create(ctx context.Context, input C) (R, error) {
	record, err := s.schema.Build(input)
	if err != nil {
		var zero R
		return zero, err
	}

	created, err := s.repo.Insert(ctx, record)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create record")
		return created, err
	}

	s.logger.Debug().Str("id", created.Identity()).Msg("record created")
	return created, nil
}

// Update merges the provided fields over the stored record.
func (s *ResourceService[R, C, U]) Update(ctx context.Context, id string, input U) (R, error) {
	changes, err := s.schema.Changes(input)
	if err != nil {
		var zero R
		return zero, err
	}
	if len(changes) == 0 {
		return s.Get(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return updated, s.translate(err, id, "failed to update record")
	}

	s.logger.Debug().Str("id", id).Int("fields", len(changes)).Msg("record updated")
	return updated, nil
}

func (s *ResourceService[R, C, U]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, id, "failed to delete record")
	}

	s.logger.Debug().Str("id", id).Msg("record deleted")
	return nil
}

// translate turns a repository miss into a labelled NotFoundError and logs
// everything else.
func (s *ResourceService[R, C, U]) translate(err error, id, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound(s.schema.Label)
	}
	s.logger.Error().Err(err).Str("id", id).Msg(msg)
	return err
}
