package entity

// Claim is a claim stored for a user.
type Claim[K comparable] struct {
	ID                  string // Row id assigned by the dependency factory.
	UserID              K
	ClaimIssuer         string
	ClaimOriginalIssuer string
	ClaimType           string
	ClaimValue          string
	ClaimValueType      string
}

func (c *Claim[K]) Key() K { return c.UserID }

func (c *Claim[K]) Issuer() string { return c.ClaimIssuer }

func (c *Claim[K]) OriginalIssuer() string { return c.ClaimOriginalIssuer }

func (c *Claim[K]) Type() string { return c.ClaimType }

func (c *Claim[K]) Value() string { return c.ClaimValue }

func (c *Claim[K]) ValueType() string { return c.ClaimValueType }

// ClaimInfo is the claim as the host knows it, without a user key.
type ClaimInfo struct {
	Issuer         string
	OriginalIssuer string
	Type           string
	Value          string
	ValueType      string
}

// ToClaimInfo projects a stored claim onto the value the host sees.
func ToClaimInfo[K comparable](c ClaimRecord[K]) ClaimInfo {
	return ClaimInfo{
		Issuer:         c.Issuer(),
		OriginalIssuer: c.OriginalIssuer(),
		Type:           c.Type(),
		Value:          c.Value(),
		ValueType:      c.ValueType(),
	}
}
