package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/musicadmin/content-api/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "db." + CollectionUsers

	userDoc := func(id primitive.ObjectID) bson.D {
		return bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "admin"},
			{Key: "email", Value: "admin@example.com"},
			{Key: "password", Value: "$2a$10$hash"},
		}
	}

	mt.Run("find by username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id)))

		u, err := repo.FindByUsername(context.Background(), "admin")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, "$2a$10$hash", u.PasswordHash)
		assert.Equal(mt, "admin", mt.GetStartedEvent().Command.Lookup("filter", "username").StringValue())
	})

	mt.Run("unknown username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByUsername(context.Background(), "ghost")
		require.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id)),
		)

		now := time.Now()
		u, err := repo.Create(context.Background(), &domain.User{
			ID: "ignored", Username: "admin", Email: "admin@example.com", PasswordHash: "$2a$10$hash",
			CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), u.ID)

		doc := mt.GetStartedEvent().Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, "$2a$10$hash", doc.Lookup("password").StringValue())
		assert.Equal(mt, bson.TypeObjectID, doc.Lookup("_id").Type)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error collection: users index: username_1",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Username: "admin"})
		require.ErrorIs(mt, err, domain.ErrUserExists)
	})

	mt.Run("ensure indexes makes username unique", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(context.Background()))
		indexes, err := mt.GetStartedEvent().Command.Lookup("indexes").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, indexes, 2)
		assert.True(mt, indexes[0].Document().Lookup("unique").Boolean())
	})
}
