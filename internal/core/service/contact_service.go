package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

const defaultDedupTTL = 10 * time.Minute

// ContactService handles contact form submissions. Admin operations come from
// the embedded ResourceService; Submit is the public entry point.
type ContactService struct {
	*ResourceService[*domain.ContactSubmission, ports.ContactInput, ports.ContactUpdate]
	dedup  ports.SubmissionDeduper
	ttl    time.Duration
	logger zerolog.Logger
}

// NewContactService wires the contact collection. dedup may be nil, in which
// case every submission is stored.
func NewContactService(
	repo ports.ResourceRepository[*domain.ContactSubmission],
	dedup ports.SubmissionDeduper,
	ttl time.Duration,
	logger zerolog.Logger,
) *ContactService {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &ContactService{
		ResourceService: NewResourceService(ContactSchema, repo, logger),
		dedup:           dedup,
		ttl:             ttl,
		logger:          logger.With().Str("resource", ResourceContact).Logger(),
	}
}

// Submit stores a submission. When the same message was accepted within the
// dedup window the earlier record is returned and replayed is true.
func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactSubmission, bool, error) {
	fp := Fingerprint(in)

	if existing := s.replay(ctx, fp); existing != nil {
		return existing, true, nil
	}

	created, err := s.Create(ctx, in)
	if err != nil {
		return nil, false, err
	}

	if s.dedup != nil {
		if err := s.dedup.Remember(ctx, fp, created.ID, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record submission fingerprint")
		}
	}
	return created, false, nil
}

// replay returns the earlier submission for fp, or nil. Dedup failures never
// block a submission.
func (s *ContactService) replay(ctx context.Context, fp string) *domain.ContactSubmission {
	if s.dedup == nil {
		return nil
	}

	id, ok, err := s.dedup.Lookup(ctx, fp)
	if err != nil {
		s.logger.Warn().Err(err).Msg("dedup lookup failed, storing submission anyway")
		return nil
	}
	if !ok {
		return nil
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Str("id", id).Msg("failed to load deduplicated submission")
		}
		return nil
	}

	s.logger.Info().Str("id", id).Msg("duplicate submission replayed")
	return existing
}

// Fingerprint identifies a submission by sender and content.
func Fingerprint(in ports.ContactInput) string {
	h := sha256.New()
	for _, part := range []string{
		strings.ToLower(strings.TrimSpace(in.Email)),
		strings.TrimSpace(in.Subject),
		strings.TrimSpace(in.Message),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
