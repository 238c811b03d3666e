package specification

import "idstore/internal/domain/entity"

// ByUserClaim is ByUserID over claim records: every claim of one user.
func ByUserClaim[K comparable](id K) Specification[entity.ClaimRecord[K]] {
	return ByUserID[entity.ClaimRecord[K]](id)
}

// ByClaimTypeAndValue matches claims with the given type and value, whoever owns them.
func ByClaimTypeAndValue[K comparable](claimType, value string) Specification[entity.ClaimRecord[K]] {
	return New(
		func(c entity.ClaimRecord[K]) bool {
			return c.Type() == claimType && c.Value() == value
		},
		Criterion{Field: FieldClaimType, Value: claimType},
		Criterion{Field: FieldClaimValue, Value: value},
	)
}
