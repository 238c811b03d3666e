package specification

import "idstore/internal/domain/entity"

// ByUserID matches records owned by the user with the given key. Equality is the key
// type's own ==.
func ByUserID[T entity.Keyed[K], K comparable](id K) Specification[T] {
	return New(
		func(e T) bool { return e.Key() == id },
		Criterion{Field: FieldKey, Value: id},
	)
}

// ByUserName matches records whose name equals name exactly (case-sensitive).
func ByUserName[T interface{ Name() string }](name string) Specification[T] {
	return New(
		func(e T) bool { return e.Name() == name },
		Criterion{Field: FieldName, Value: name},
	)
}

// ByEmail matches records whose email equals email exactly.
func ByEmail[T interface{ Email() string }](email string) Specification[T] {
	return New(
		func(e T) bool { return e.Email() == email },
		Criterion{Field: FieldEmail, Value: email},
	)
}

// ByUserWithEmail is ByUserID over email holders.
func ByUserWithEmail[K comparable](id K) Specification[entity.EmailHolder[K]] {
	return ByUserID[entity.EmailHolder[K]](id)
}

// ByEmailConfirmationStatus is ByUserID over email confirmation records.
func ByEmailConfirmationStatus[K comparable](id K) Specification[entity.EmailConfirmable[K]] {
	return ByUserID[entity.EmailConfirmable[K]](id)
}
