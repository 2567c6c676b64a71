package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/careerhub/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/careerhub/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection         = "users"
	refreshTokensCollection = "refresh_tokens"
)

// MongoRepositoryManager vends MongoDB-backed repositories.
// WithTx runs fn directly; no session transaction is opened.
type MongoRepositoryManager struct {
	db *mongo.Database
}

func NewMongoRepositoryManager(db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{db: db}
}

// ConnectMongo dials uri and returns a handle on the named database.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(database), nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.db.Collection(usersCollection))
}

func (m *MongoRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return refreshtokens.NewMongoRepository(m.db.Collection(refreshTokensCollection))
}

func (m *MongoRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return fn(ctx, m)
}

// RunMigrations creates the unique and TTL indexes the repositories rely on.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	_, err := m.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = m.db.Collection(refreshTokensCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token_hash", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("refresh_tokens indexes: %w", err)
	}

	return nil
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.db.Client().Disconnect(ctx)
}
