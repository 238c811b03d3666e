// Package entity declares what an identity record must be able to do to be stored by
// idstore, plus default record types that satisfy those capabilities.
package entity

// Keyed is anything that belongs to a user identified by a comparable key.
type Keyed[K comparable] interface {
	Key() K
}

// Identity is the user capability every stored user type has: a key and a unique
// login/display name.
type Identity[K comparable] interface {
	Keyed[K]
	Name() string
}

// LoginRecord links a user to an external login. The (Key, Provider, ProviderKey)
// triple is unique within a store.
type LoginRecord[K comparable] interface {
	Keyed[K]
	Provider() string
	ProviderKey() string
}

// ClaimRecord is a claim issued for a user. All fields are opaque strings.
type ClaimRecord[K comparable] interface {
	Keyed[K]
	Issuer() string
	OriginalIssuer() string
	Type() string
	Value() string
	ValueType() string
}

// EmailHolder is a record with a mutable email address.
type EmailHolder[K comparable] interface {
	Keyed[K]
	Email() string
	SetEmail(email string)
}

// EmailConfirmable is an EmailHolder that tracks whether the address was confirmed.
type EmailConfirmable[K comparable] interface {
	EmailHolder[K]
	EmailConfirmed() bool
	SetEmailConfirmed(confirmed bool)
}
