package models

// User is the session account record. Credentials are never verified for
// real; the mocked authenticator accepts any non-empty email/password pair.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	RWNBalance int64  `json:"rwn_balance"`
	Tier       string `json:"tier"`
}

// Membership tiers, lowest first.
const (
	TierStandard = "standard"
	TierVIP      = "vip"
	TierPremium  = "premium"
)

// AuthSnapshot is the persisted auth state for a session, stored under the
// auth-storage namespace, separate from the cart snapshot.
type AuthSnapshot struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
	// PasswordHash is kept here so a registered session can log back in
	// with the same credentials.
	PasswordHash string `json:"password_hash,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
