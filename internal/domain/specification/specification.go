// Package specification expresses "find records where field == value" as small,
// composable predicate objects that do not depend on any query engine.
//
// A Specification always carries an in-memory predicate. It may also describe itself as a
// list of equality Criteria, which lets engines such as gorm push the condition down to
// the database instead of filtering rows in memory.
package specification

import "slices"

// Field names a logical record field a Criterion compares against. Backends map fields to
// their own column names.
type Field string

const (
	FieldKey         Field = "key"
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldProvider    Field = "provider"
	FieldProviderKey Field = "provider_key"
	FieldClaimType   Field = "claim_type"
	FieldClaimValue  Field = "claim_value"
)

// Criterion is a single equality term: Field == Value.
type Criterion struct {
	Field Field
	Value any
}

// Specification is a reusable search condition over T.
type Specification[T any] interface {
	// Predicate returns the condition as a plain function. It is not evaluated until called.
	Predicate() func(T) bool

	// IsSatisfiedBy evaluates the condition against a single record.
	IsSatisfiedBy(entity T) bool

	// Criteria returns the equality terms the condition is made of. The bool is false when
	// the terms do not describe the predicate completely, in which case callers must filter
	// with Predicate.
	Criteria() ([]Criterion, bool)
}

type spec[T any] struct {
	predicate func(T) bool
	criteria  []Criterion
	complete  bool
}

// New builds a Specification from a predicate and the criteria that fully describe it.
// Pass no criteria for conditions that can only be evaluated in memory.
func New[T any](predicate func(T) bool, criteria ...Criterion) Specification[T] {
	return &spec[T]{
		predicate: predicate,
		criteria:  criteria,
		complete:  len(criteria) > 0,
	}
}

func (s *spec[T]) Predicate() func(T) bool {
	return s.predicate
}

func (s *spec[T]) IsSatisfiedBy(entity T) bool {
	return s.predicate(entity)
}

func (s *spec[T]) Criteria() ([]Criterion, bool) {
	return slices.Clone(s.criteria), s.complete
}

// And matches records satisfying both left and right.
func And[T any](left, right Specification[T]) Specification[T] {
	l, r := left.Predicate(), right.Predicate()
	lc, lok := left.Criteria()
	rc, rok := right.Criteria()

	return &spec[T]{
		predicate: func(entity T) bool { return l(entity) && r(entity) },
		criteria:  append(lc, rc...),
		complete:  lok && rok,
	}
}

// Or matches records satisfying either side. Equality criteria cannot express it.
func Or[T any](left, right Specification[T]) Specification[T] {
	l, r := left.Predicate(), right.Predicate()

	return &spec[T]{
		predicate: func(entity T) bool { return l(entity) || r(entity) },
	}
}

// Not negates a specification. Equality criteria cannot express it.
func Not[T any](inner Specification[T]) Specification[T] {
	p := inner.Predicate()

	return &spec[T]{
		predicate: func(entity T) bool { return !p(entity) },
	}
}

// Filter returns the records in items that satisfy s, preserving order.
func Filter[T any](s Specification[T], items []T) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if s.IsSatisfiedBy(item) {
			matched = append(matched, item)
		}
	}

	return matched
}
