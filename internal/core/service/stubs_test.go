package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// memoryRepo is an in-memory ports.ResourceRepository. Records are stored as
// JSON so Update can patch fields by their wire names, the same names the
// Mongo documents use.
type memoryRepo[R domain.Record] struct {
	docs    map[string]map[string]any
	order   []string
	seq     int
	clock   time.Time
	newR    func() R
	failErr error
	writes  int
}

func newMemoryRepo[R domain.Record](newR func() R) *memoryRepo[R] {
	return &memoryRepo[R]{
		docs:  make(map[string]map[string]any),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		newR:  newR,
	}
}

func (r *memoryRepo[R]) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memoryRepo[R]) decode(doc map[string]any) R {
	raw, _ := json.Marshal(doc)
	out := r.newR()
	_ = json.Unmarshal(raw, out)
	return out
}

func (r *memoryRepo[R]) List(_ context.Context, activeOnly bool) ([]R, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []R
	for i := len(r.order) - 1; i >= 0; i-- {
		doc := r.docs[r.order[i]]
		if activeOnly {
			if active, ok := doc["isActive"].(bool); !ok || !active {
				continue
			}
		}
		out = append(out, r.decode(doc))
	}
	return out, nil
}

func (r *memoryRepo[R]) FindByID(_ context.Context, id string) (R, error) {
	doc, ok := r.docs[id]
	if !ok {
		var zero R
		return zero, domain.ErrNotFound
	}
	return r.decode(doc), nil
}

func (r *memoryRepo[R]) Insert(_ context.Context, record R) (R, error) {
	if r.failErr != nil {
		var zero R
		return zero, r.failErr
	}
	r.writes++
	r.seq++
	record.Touch(r.tick())

	raw, _ := json.Marshal(record)
	doc := map[string]any{}
	_ = json.Unmarshal(raw, &doc)
	id := fmt.Sprintf("id-%03d", r.seq)
	doc["_id"] = id

	r.docs[id] = doc
	r.order = append(r.order, id)
	return r.decode(doc), nil
}

func (r *memoryRepo[R]) Update(_ context.Context, id string, changes domain.Changes) (R, error) {
	doc, ok := r.docs[id]
	if !ok {
		var zero R
		return zero, domain.ErrNotFound
	}
	r.writes++
	for k, v := range changes {
		doc[k] = v
	}
	doc["updatedAt"] = r.tick()
	return r.decode(doc), nil
}

func (r *memoryRepo[R]) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	r.writes++
	delete(r.docs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users     map[string]*domain.User
	findErr   error
	createErr error
	creates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.creates++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}
