package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Predicate adds one filter clause to a query document. A nil Predicate means
// the parameter was absent and contributes no constraint.
type Predicate func(bson.M)

// Compose applies the predicates in order to a fresh query document. The
// resulting clauses are ANDed by the store.
func Compose(preds ...Predicate) bson.M {
	q := bson.M{}
	for _, p := range preds {
		if p != nil {
			p(q)
		}
	}
	return q
}

// TextContains matches documents whose field contains s, case-insensitively.
func TextContains(field string, s *string) Predicate {
	if s == nil || *s == "" {
		return nil
	}
	return func(q bson.M) {
		q[field] = bson.M{"$regex": *s, "$options": "i"}
	}
}

// IDEquals matches documents whose identifier field equals id exactly.
func IDEquals(field string, id *string) Predicate {
	if id == nil || *id == "" {
		return nil
	}
	return func(q bson.M) {
		q[field] = *id
	}
}

// BoolEquals matches documents whose field equals v, including explicit false.
func BoolEquals(field string, v *bool) Predicate {
	if v == nil {
		return nil
	}
	return func(q bson.M) {
		q[field] = *v
	}
}

// EitherIDEquals matches documents where fieldA or fieldB equals id. The
// clause lands in a top-level $or and is ANDed with every other predicate,
// including exact-match predicates on fieldA or fieldB themselves.
func EitherIDEquals(fieldA, fieldB string, id *string) Predicate {
	if id == nil || *id == "" {
		return nil
	}
	return func(q bson.M) {
		q["$or"] = []bson.M{{fieldA: *id}, {fieldB: *id}}
	}
}

// IntAtLeast bounds an integer field from below, inclusive.
func IntAtLeast(field string, v *int) Predicate {
	if v == nil {
		return nil
	}
	return rangeBound(field, "$gte", *v)
}

// IntAtMost bounds an integer field from above, inclusive.
func IntAtMost(field string, v *int) Predicate {
	if v == nil {
		return nil
	}
	return rangeBound(field, "$lte", *v)
}

// TimeFrom bounds a timestamp field from below, inclusive.
func TimeFrom(field string, v *time.Time) Predicate {
	if v == nil {
		return nil
	}
	return rangeBound(field, "$gte", *v)
}

// TimeTo bounds a timestamp field from above, inclusive.
func TimeTo(field string, v *time.Time) Predicate {
	if v == nil {
		return nil
	}
	return rangeBound(field, "$lte", *v)
}

// rangeBound merges an operator into the field's range sub-document, so that a
// lower and an upper bound on the same field form a single closed range.
func rangeBound(field, op string, v any) Predicate {
	return func(q bson.M) {
		sub, ok := q[field].(bson.M)
		if !ok {
			sub = bson.M{}
			q[field] = sub
		}
		sub[op] = v
	}
}
