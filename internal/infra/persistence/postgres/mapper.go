package postgres

import (
	"idstore/internal/domain/entity"
	"idstore/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func toUserDomain(m *model.UserModel) *User {
	return &User{
		ID:           m.ID,
		UserName:     m.UserName,
		EmailAddress: m.Email,
		Confirmed:    m.EmailConfirmed,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *User) *model.UserModel {
	return &model.UserModel{
		ID:             u.ID,
		UserName:       u.UserName,
		Email:          u.EmailAddress,
		EmailConfirmed: u.Confirmed,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toLoginDomain(m *model.UserLoginModel) entity.LoginRecord[uuid.UUID] {
	return &entity.Login[uuid.UUID]{
		UserID:        m.UserID,
		LoginProvider: m.LoginProvider,
		LoginKey:      m.ProviderKey,
	}
}

func toLoginModel(l entity.LoginRecord[uuid.UUID]) *model.UserLoginModel {
	return &model.UserLoginModel{
		UserID:        l.Key(),
		LoginProvider: l.Provider(),
		ProviderKey:   l.ProviderKey(),
	}
}

func toClaimDomain(m *model.UserClaimModel) entity.ClaimRecord[uuid.UUID] {
	return &entity.Claim[uuid.UUID]{
		ID:                  m.ID.String(),
		UserID:              m.UserID,
		ClaimIssuer:         m.Issuer,
		ClaimOriginalIssuer: m.OriginalIssuer,
		ClaimType:           m.ClaimType,
		ClaimValue:          m.ClaimValue,
		ClaimValueType:      m.ValueType,
	}
}

// toClaimModel keeps the row id of claims created by entity.Factory. Other claim records
// have no id and get uuid.Nil.
func toClaimModel(c entity.ClaimRecord[uuid.UUID]) *model.UserClaimModel {
	m := &model.UserClaimModel{
		UserID:         c.Key(),
		Issuer:         c.Issuer(),
		OriginalIssuer: c.OriginalIssuer(),
		ClaimType:      c.Type(),
		ClaimValue:     c.Value(),
		ValueType:      c.ValueType(),
	}
	if claim, ok := c.(*entity.Claim[uuid.UUID]); ok {
		if id, err := uuid.Parse(claim.ID); err == nil {
			m.ID = id
		}
	}

	return m
}
