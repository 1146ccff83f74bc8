package store

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for uri, verifies the connection with a ping and
// returns a store bound to dbName.
func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "ping mongo")
	}

	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoStore) Find(ctx context.Context, collection string, filter bson.M, page Page, out any) error {
	opts := options.Find().SetSkip(page.Skip).SetLimit(page.Limit)
	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return errors.Wrapf(err, "find in %s", collection)
	}
	if err := cur.All(ctx, out); err != nil {
		return errors.Wrapf(err, "decode %s results", collection)
	}
	return nil
}

func (m *MongoStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	if err != nil {
		return errors.Wrapf(err, "find %s by id", collection)
	}
	return nil
}

func (m *MongoStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "insert into %s", collection)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Newf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *MongoStore) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) error {
	res, err := m.db.Collection(collection).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return errors.Wrapf(err, "update %s by id", collection)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (m *MongoStore) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "delete from %s", collection)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (m *MongoStore) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := m.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "delete many from %s", collection)
	}
	return res.DeletedCount, nil
}
