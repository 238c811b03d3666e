package entity

// Login links a user to an external login provider, e.g. a Google account.
type Login[K comparable] struct {
	UserID        K      // The user this login belongs to.
	LoginProvider string // Provider name, e.g. "google".
	LoginKey      string // The user's id at the provider (e.g. Google's 'sub' claim).
}

func (l *Login[K]) Key() K { return l.UserID }

func (l *Login[K]) Provider() string { return l.LoginProvider }

func (l *Login[K]) ProviderKey() string { return l.LoginKey }

// LoginInfo is the provider pair the host hands in and gets back; it carries no user key.
type LoginInfo struct {
	LoginProvider string
	ProviderKey   string
}

// ToLoginInfo projects a stored login onto the value the host sees.
func ToLoginInfo[K comparable](l LoginRecord[K]) LoginInfo {
	return LoginInfo{
		LoginProvider: l.Provider(),
		ProviderKey:   l.ProviderKey(),
	}
}
