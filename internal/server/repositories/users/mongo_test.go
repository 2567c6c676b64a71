package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	fixed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("create fills timestamps", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		repo.now = func() time.Time { return fixed }
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := repo.Create(context.Background(), &models.User{ID: "u-1", Name: "Asha", Email: "asha@example.com"})
		require.NoError(mt, err)
		assert.Equal(mt, fixed, got.CreatedAt)
		assert.Equal(mt, []string{}, got.Expertise)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: careerhub.users index: email_1",
		}))

		_, err := repo.Create(context.Background(), &models.User{ID: "u-2", Email: "asha@example.com"})
		assert.True(mt, errors.Is(err, common.ErrorAlreadyExists), "got %v", err)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-1"},
			{Key: "name", Value: "Asha"},
			{Key: "email", Value: "asha@example.com"},
			{Key: "password_hash", Value: "hash"},
			{Key: "role", Value: "mentor"},
			{Key: "expertise", Value: bson.A{"go"}},
			{Key: "bio", Value: ""},
			{Key: "created_at", Value: fixed},
			{Key: "updated_at", Value: fixed},
		}))

		got, err := repo.GetByEmail(context.Background(), "asha@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "u-1", got.ID)
		assert.Equal(mt, models.RoleMentor, got.Role)
		assert.Equal(mt, []string{"go"}, got.Expertise)
		assert.True(mt, fixed.Equal(got.CreatedAt))
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(mt, err, common.ErrorNotFound)
	})

	mt.Run("command error is wrapped", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad"}))

		_, err := repo.GetByID(context.Background(), "u-1")
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "db error")
	})
}
