package entity

import "github.com/google/uuid"

// Factory builds the default Login and Claim records. It is the dependency factory used
// by both bundled backends.
type Factory[K comparable] struct{}

// NewFactory returns a Factory for key type K.
func NewFactory[K comparable]() *Factory[K] {
	return &Factory[K]{}
}

// NewLogin builds a login record for userID.
func (Factory[K]) NewLogin(userID K, provider, providerKey string) (LoginRecord[K], error) {
	return &Login[K]{
		UserID:        userID,
		LoginProvider: provider,
		LoginKey:      providerKey,
	}, nil
}

// NewClaim builds a claim record for userID with a fresh row id.
func (Factory[K]) NewClaim(userID K, claim ClaimInfo) (ClaimRecord[K], error) {
	return &Claim[K]{
		ID:                  uuid.NewString(),
		UserID:              userID,
		ClaimIssuer:         claim.Issuer,
		ClaimOriginalIssuer: claim.OriginalIssuer,
		ClaimType:           claim.Type,
		ClaimValue:          claim.Value,
		ClaimValueType:      claim.ValueType,
	}, nil
}
