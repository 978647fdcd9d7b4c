package auth

import (
	"strconv"
	"time"

	"github.com/zerozero/zerozero/internal/domain/impact"
)

// Config drives authentication behavior.
type Config struct {
	Secret          string
	TokenTTL        time.Duration
	RefreshTokenTTL time.Duration
	Google          GoogleConfig
}

// GoogleConfig holds OAuth settings for Google sign-in.
type GoogleConfig struct {
	ClientID             string
	ClientSecret         string
	RedirectURL          string
	TokenEncryptionKey   string
	PostLoginRedirectURL string
}

// User represents a persisted account together with the lifestyle profile
// the savings calculators consume.
type User struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Postcode          string    `json:"postcode"`
	Household         int       `json:"household"`
	HomeType          string    `json:"homeType"`
	TransportBaseline string    `json:"transportBaseline"`
	PasswordHash      string    `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Identity represents an external auth provider linkage.
type Identity struct {
	ID              int64
	UserID          int64
	Provider        string
	ProviderSubject string
	ProviderEmail   string
	RefreshToken    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RegisterRequest captures the registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest captures login details.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the signed token.
type LoginResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	User         UserView `json:"user"`
}

// UserView trims sensitive fields.
type UserView struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Postcode          string    `json:"postcode,omitempty"`
	Household         int       `json:"household,omitempty"`
	HomeType          string    `json:"homeType,omitempty"`
	TransportBaseline string    `json:"transportBaseline,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UpdateProfileRequest carries the editable lifestyle fields. Nil pointers
// leave the stored value untouched.
type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty"`
	Postcode          *string `json:"postcode,omitempty"`
	Household         *int    `json:"household,omitempty"`
	HomeType          *string `json:"homeType,omitempty"`
	TransportBaseline *string `json:"transportBaseline,omitempty"`
}

// ProfileUpdate is the normalized form handed to the repository.
type ProfileUpdate struct {
	Name              *string
	Postcode          *string
	Household         *int
	HomeType          *string
	TransportBaseline *string
}

// Claims are extracted from the JWT token.
type Claims struct {
	UserID    int64
	Email     string
	TokenType string
	ExpiresAt time.Time
}

// RefreshRequest encapsulates refresh token payload.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ImpactProfile projects the account into the shape the savings
// calculators consume.
func (u User) ImpactProfile() impact.Profile {
	household := ""
	if u.Household > 0 {
		household = strconv.Itoa(u.Household)
	}
	return impact.Profile{
		Name:              u.Name,
		Postcode:          u.Postcode,
		Household:         household,
		HomeType:          u.HomeType,
		TransportBaseline: u.TransportBaseline,
	}
}
