package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/musicadmin/content-api/internal/core/domain"
)

// memoryRepo is an in-memory ports.ResourceRepository keyed by 24-hex ids,
// the shape Mongo ObjectIDs have on the wire.
type memoryRepo[R domain.Record] struct {
	mu    sync.Mutex
	docs  map[string]map[string]any
	order []string
	seq   int
	newR  func() R
}

func newMemoryRepo[R domain.Record](newR func() R) *memoryRepo[R] {
	return &memoryRepo[R]{docs: make(map[string]map[string]any), newR: newR}
}

func (r *memoryRepo[R]) decode(doc map[string]any) R {
	raw, _ := json.Marshal(doc)
	out := r.newR()
	_ = json.Unmarshal(raw, out)
	return out
}

func (r *memoryRepo[R]) List(_ context.Context, activeOnly bool) ([]R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []R
	for i := len(r.order) - 1; i >= 0; i-- {
		doc := r.docs[r.order[i]]
		if active, _ := doc["isActive"].(bool); activeOnly && !active {
			continue
		}
		out = append(out, r.decode(doc))
	}
	return out, nil
}

func (r *memoryRepo[R]) FindByID(_ context.Context, id string) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		var zero R
		return zero, domain.ErrNotFound
	}
	return r.decode(doc), nil
}

func (r *memoryRepo[R]) Insert(_ context.Context, record R) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	record.Touch(time.Now().UTC().Truncate(time.Millisecond))
	raw, _ := json.Marshal(record)
	doc := map[string]any{}
	_ = json.Unmarshal(raw, &doc)

	id := fmt.Sprintf("%024x", r.seq)
	doc["_id"] = id
	r.docs[id] = doc
	r.order = append(r.order, id)
	return r.decode(doc), nil
}

func (r *memoryRepo[R]) Update(_ context.Context, id string, changes domain.Changes) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		var zero R
		return zero, domain.ErrNotFound
	}
	for k, v := range changes {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now().UTC().Truncate(time.Millisecond)
	return r.decode(doc), nil
}

func (r *memoryRepo[R]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *memoryUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.users == nil {
		r.users = make(map[string]*domain.User)
	}
	if _, ok := r.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = fmt.Sprintf("%024x", len(r.users)+1)
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}
