package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// layoutRecord is one key/value pair in the layout collection.
type layoutRecord struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps each key as a document of a single collection.
type MongoStore struct {
	Records *mongo.Collection
	Client  *mongo.Client
}

var _ KVStore = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database, collectionName string) *MongoStore {
	return &MongoStore{
		Records: db.Collection(collectionName),
		Client:  db.Client(),
	}
}

func (r *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec layoutRecord
	err := r.Records.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Value), true, nil
}

func (r *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	filter := bson.M{"_id": key}
	update := bson.M{
		"$set": bson.M{
			"value":      string(value),
			"updated_at": time.Now().UTC(),
		},
	}
	_, err := r.Records.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Close disconnects the client the store was built from.
func (r *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Client.Disconnect(ctx)
}
