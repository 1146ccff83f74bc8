package store

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store that evaluates the same predicate
// documents the query builders produce. It backs the test suite so no live
// MongoDB is needed.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]bson.M)}
}

// Seed stores a document exactly as given, assigning an id only when the
// document carries none. Tests use it to stage pre-existing records,
// including production data without the test flag.
func (m *MemoryStore) Seed(collection string, doc any) (primitive.ObjectID, error) {
	return m.insert(collection, doc)
}

func (m *MemoryStore) Find(ctx context.Context, collection string, filter bson.M, page Page, out any) error {
	m.mu.Lock()
	var selected []bson.M
	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			selected = append(selected, doc)
		}
	}
	m.mu.Unlock()

	if page.Skip > 0 {
		if page.Skip >= int64(len(selected)) {
			selected = nil
		} else {
			selected = selected[page.Skip:]
		}
	}
	if page.Limit > 0 && int64(len(selected)) > page.Limit {
		selected = selected[:page.Limit]
	}
	if selected == nil {
		selected = []bson.M{}
	}
	return decodeInto(selected, out)
}

func (m *MemoryStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	m.mu.Lock()
	doc, _ := m.findByID(collection, id)
	m.mu.Unlock()
	if doc == nil {
		return ErrNoDocument
	}
	return decodeInto(doc, out)
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	return m.insert(collection, doc)
}

func (m *MemoryStore) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, _ := m.findByID(collection, id)
	if doc == nil {
		return ErrNoDocument
	}
	for k, v := range set {
		doc[k] = v
	}
	return nil
}

func (m *MemoryStore) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, i := m.findByID(collection, id)
	if doc == nil {
		return ErrNoDocument
	}
	docs := m.data[collection]
	m.data[collection] = append(docs[:i], docs[i+1:]...)
	return nil
}

func (m *MemoryStore) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []bson.M
	var deleted int64
	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	m.data[collection] = kept
	return deleted, nil
}

func (m *MemoryStore) insert(collection string, doc any) (primitive.ObjectID, error) {
	stored, err := toDoc(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := stored["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}
	m.mu.Lock()
	m.data[collection] = append(m.data[collection], stored)
	m.mu.Unlock()
	return id, nil
}

// findByID must be called with the mutex held.
func (m *MemoryStore) findByID(collection string, id primitive.ObjectID) (bson.M, int) {
	for i, doc := range m.data[collection] {
		if got, ok := doc["_id"].(primitive.ObjectID); ok && got == id {
			return doc, i
		}
	}
	return nil, -1
}

// toDoc normalizes any document value into a bson.M via a marshal round-trip.
func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document")
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal document")
	}
	return doc, nil
}

// decodeInto re-marshals src (a bson.M or a slice of them) into out.
func decodeInto(src, out any) error {
	t, raw, err := bson.MarshalValue(src)
	if err != nil {
		return errors.Wrap(err, "marshal stored value")
	}
	if err := bson.UnmarshalValue(t, raw, out); err != nil {
		return errors.Wrap(err, "decode stored value")
	}
	return nil
}

// matches evaluates a filter document against a stored document. Top-level
// keys are ANDed; supported operators are the ones the query builders emit:
// $or, $regex/$options, $gte, $lte, $lt and plain equality.
func matches(doc, filter bson.M) bool {
	for key, cond := range filter {
		if key == "$or" {
			if !matchesAny(doc, cond) {
				return false
			}
			continue
		}
		if !matchesValue(doc[key], cond) {
			return false
		}
	}
	return true
}

func matchesAny(doc bson.M, cond any) bool {
	switch alternatives := cond.(type) {
	case []bson.M:
		for _, alt := range alternatives {
			if matches(doc, alt) {
				return true
			}
		}
	case primitive.A:
		for _, raw := range alternatives {
			if alt, ok := asDoc(raw); ok && matches(doc, alt) {
				return true
			}
		}
	}
	return false
}

func matchesValue(value, cond any) bool {
	ops, ok := asDoc(cond)
	if !ok {
		return equal(value, cond)
	}
	for op, operand := range ops {
		switch op {
		case "$regex":
			pattern, ok := operand.(string)
			if !ok {
				return false
			}
			if opts, _ := ops["$options"].(string); strings.Contains(opts, "i") {
				pattern = "(?i)" + pattern
			}
			s, ok := value.(string)
			if !ok {
				return false
			}
			re, err := regexp.Compile(pattern)
			if err != nil || !re.MatchString(s) {
				return false
			}
		case "$options":
			// handled with $regex
		case "$gte":
			if c, ok := compare(value, operand); !ok || c < 0 {
				return false
			}
		case "$lte":
			if c, ok := compare(value, operand); !ok || c > 0 {
				return false
			}
		case "$lt":
			if c, ok := compare(value, operand); !ok || c >= 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// asDoc widens the document representations the bson round-trip can produce.
func asDoc(v any) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case primitive.D:
		doc := bson.M{}
		for _, e := range d {
			doc[e.Key] = e.Value
		}
		return doc, true
	}
	return nil, false
}

func equal(a, b any) bool {
	if c, ok := compare(a, b); ok {
		return c == 0
	}
	return a == b
}

// compare orders two values when both are numeric, both timestamps or both
// strings, tolerating the type changes a bson round-trip introduces.
func compare(a, b any) (int, bool) {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	if x, ok := toTime(a); ok {
		if y, ok := toTime(b); ok {
			switch {
			case x.Before(y):
				return -1, true
			case x.After(y):
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}
