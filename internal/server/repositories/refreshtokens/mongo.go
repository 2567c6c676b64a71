package refreshtokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type tokenDocument struct {
	UserID    string    `bson:"user_id"`
	TokenHash string    `bson:"token_hash"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// MongoRepository keeps refresh tokens in a collection whose TTL index on
// expires_at lets the server purge stale rows on its own.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, userID string, tokenHash string, validity time.Duration) error {
	doc := tokenDocument{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(validity).UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error performing insert: %w", err)
	}
	return nil
}

func (r *MongoRepository) Consume(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var doc tokenDocument
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "token_hash", Value: tokenHash}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &models.RefreshToken{UserID: doc.UserID, TokenHash: doc.TokenHash, Expires: doc.ExpiresAt}, nil
}

func (r *MongoRepository) Delete(ctx context.Context, tokenHash string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "token_hash", Value: tokenHash}}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
