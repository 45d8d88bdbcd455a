package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

func ptr[T any](v T) *T { return &v }

func newServiceFixture() (*ResourceService[*domain.Service, ports.ServiceInput, ports.ServiceUpdate], *memoryRepo[*domain.Service]) {
	repo := newMemoryRepo(func() *domain.Service { return &domain.Service{} })
	return NewResourceService(ServiceSchema, repo, discardLogger), repo
}

func TestResourceService_Create_AppliesDefaults(t *testing.T) {
	svc, _ := newServiceFixture()

	created, err := svc.Create(context.Background(), ports.ServiceInput{Name: "Haircut", Description: "Basic cut"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Haircut", created.Name)
	assert.Equal(t, 0.0, created.Price)
	assert.Equal(t, "", created.Category)
	assert.Equal(t, "", created.Image)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestResourceService_Create_MissingRequiredFieldWritesNothing(t *testing.T) {
	cases := map[string]ports.ServiceInput{
		"no name":          {Description: "Basic cut"},
		"no description":   {Name: "Haircut"},
		"blank name":       {Name: "   ", Description: "Basic cut"},
		"nothing provided": {},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo := newServiceFixture()

			_, err := svc.Create(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, "Name and description are required", err.Error())
			assert.Zero(t, repo.writes)
			assert.Empty(t, repo.docs)
		})
	}
}

func TestResourceService_CreateThenGet_RoundTrip(t *testing.T) {
	svc, _ := newServiceFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.ServiceInput{
		Name: "Colour", Description: "Full colour", Image: "/uploads/c.png", Price: 45.5, Category: "hair",
	})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestResourceService_Get_NotFoundIsLabelled(t *testing.T) {
	svc, _ := newServiceFixture()

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Service not found", err.Error())
}

func TestResourceService_List_ActiveOnlyNewestFirst(t *testing.T) {
	svc, _ := newServiceFixture()
	ctx := context.Background()

	first, _ := svc.Create(ctx, ports.ServiceInput{Name: "A", Description: "a"})
	_, _ = svc.Create(ctx, ports.ServiceInput{Name: "B", Description: "b", IsActive: ptr(false)})
	third, _ := svc.Create(ctx, ports.ServiceInput{Name: "C", Description: "c"})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestResourceService_List_EmptyIsNotNil(t *testing.T) {
	svc, _ := newServiceFixture()

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestResourceService_List_StoreFailure(t *testing.T) {
	svc, repo := newServiceFixture()
	repo.failErr = errors.New("connection reset")

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceService_Update_EmptyPatchLeavesRecordUnchanged(t *testing.T) {
	svc, repo := newServiceFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.ServiceInput{Name: "Haircut", Description: "Basic cut", Price: 20})
	require.NoError(t, err)
	writes := repo.writes

	updated, err := svc.Update(ctx, created.ID, ports.ServiceUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
	assert.Equal(t, writes, repo.writes)

	stored, _ := svc.Get(ctx, created.ID)
	assert.Equal(t, created, stored)
}

func TestResourceService_Update_PartialSemantics(t *testing.T) {
	svc, _ := newServiceFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.ServiceInput{
		Name: "Haircut", Description: "Basic cut", Image: "/a.png", Price: 20, Category: "hair",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ports.ServiceUpdate{
		Name:     ptr(""),    // empty key text means "not provided"
		Image:    ptr(""),    // optional text can be cleared
		Price:    ptr(0.0),   // zero is a real value
		IsActive: ptr(false), // false is a real value
	})
	require.NoError(t, err)

	assert.Equal(t, "Haircut", updated.Name)
	assert.Equal(t, "Basic cut", updated.Description)
	assert.Equal(t, "", updated.Image)
	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, "hair", updated.Category)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestResourceService_Update_NotFound(t *testing.T) {
	svc, _ := newServiceFixture()
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", ports.ServiceUpdate{Name: ptr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, "missing", ports.ServiceUpdate{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceService_Update_RejectsInvalidValue(t *testing.T) {
	svc, repo := newServiceFixture()
	ctx := context.Background()
	created, _ := svc.Create(ctx, ports.ServiceInput{Name: "Haircut", Description: "Basic cut"})
	writes := repo.writes

	_, err := svc.Update(ctx, created.ID, ports.ServiceUpdate{Price: ptr(-1.0)})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, writes, repo.writes)
}

func TestResourceService_Delete_ThenGetIsNotFound(t *testing.T) {
	svc, _ := newServiceFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, ports.ServiceInput{Name: "Haircut", Description: "Basic cut"})
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err := svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Service not found", err.Error())
}
