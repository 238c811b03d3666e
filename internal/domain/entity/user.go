package entity

import "time"

// User is the default user record. It satisfies Identity, EmailHolder and
// EmailConfirmable, so a single row serves every user-facing capability.
type User[K comparable] struct {
	ID           K         // Primary key of the user.
	UserName     string    // Unique login name, compared case-sensitively.
	EmailAddress string    // Empty until SetEmail is called.
	Confirmed    bool      // Whether EmailAddress has been confirmed.
	CreatedAt    time.Time // Set by the backing store.
	UpdatedAt    time.Time // Set by the backing store.
}

func (u *User[K]) Key() K { return u.ID }

func (u *User[K]) Name() string { return u.UserName }

func (u *User[K]) Email() string { return u.EmailAddress }

func (u *User[K]) SetEmail(email string) { u.EmailAddress = email }

func (u *User[K]) EmailConfirmed() bool { return u.Confirmed }

func (u *User[K]) SetEmailConfirmed(confirmed bool) { u.Confirmed = confirmed }
