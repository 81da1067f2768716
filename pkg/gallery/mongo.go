package gallery

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a MongoDB-backed figure store for server deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string
	// Database name. Empty means "tikzgo".
	Database string
	// Collection name. Empty means "figures".
	Collection string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "tikzgo"
	}
	if cfg.Collection == "" {
		cfg.Collection = "figures"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("create name index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Figure, error) {
	return s.findOne(ctx, bson.M{"_id": id}, id)
}

func (s *MongoStore) GetByName(ctx context.Context, name string) (*Figure, error) {
	return s.findOne(ctx, bson.M{"name": name}, name)
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M, key string) (*Figure, error) {
	var fig Figure
	err := s.coll.FindOne(ctx, filter).Decode(&fig)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, fmt.Errorf("find figure: %w", err)
	}
	return &fig, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Figure, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list figures: %w", err)
	}
	defer cur.Close(ctx)

	var figs []*Figure
	if err := cur.All(ctx, &figs); err != nil {
		return nil, fmt.Errorf("decode figures: %w", err)
	}
	return figs, nil
}

func (s *MongoStore) Put(ctx context.Context, fig *Figure) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": fig.ID}, fig, opts); err != nil {
		return fmt.Errorf("store figure: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete figure: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
