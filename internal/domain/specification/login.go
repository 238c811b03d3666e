package specification

import "idstore/internal/domain/entity"

// ByUserLogin is ByUserID over login records: every login of one user.
func ByUserLogin[K comparable](id K) Specification[entity.LoginRecord[K]] {
	return ByUserID[entity.LoginRecord[K]](id)
}

// ByLoginProviderAndKey matches the login with the given provider and provider key.
// Both must match.
func ByLoginProviderAndKey[K comparable](provider, providerKey string) Specification[entity.LoginRecord[K]] {
	return New(
		func(l entity.LoginRecord[K]) bool {
			return l.Provider() == provider && l.ProviderKey() == providerKey
		},
		Criterion{Field: FieldProvider, Value: provider},
		Criterion{Field: FieldProviderKey, Value: providerKey},
	)
}
