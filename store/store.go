package store

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names used by the service.
const (
	Players = "players"
	Teams   = "teams"
	Matches = "matches"
)

// ErrNoDocument is returned by single-document lookups and deletions when no
// document matches the given id.
var ErrNoDocument = errors.New("no matching document")

// Page is the offset/limit window applied after filtering.
type Page struct {
	Skip  int64
	Limit int64
}

// Store is the document-store client the services are built against. The
// production implementation is MongoStore; tests inject MemoryStore.
type Store interface {
	// Find decodes all documents matching filter, within page, into out
	// (a pointer to a slice).
	Find(ctx context.Context, collection string, filter bson.M, page Page, out any) error
	// FindByID decodes the document with the given id into out, or returns
	// ErrNoDocument.
	FindByID(ctx context.Context, collection string, id primitive.ObjectID, out any) error
	// Insert stores a new document and returns its assigned id.
	Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	// UpdateByID applies a partial $set to the document with the given id.
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) error
	// DeleteByID removes a single document, or returns ErrNoDocument.
	DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) error
	// DeleteMany removes every document matching filter and reports how many
	// were removed.
	DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error)
}
