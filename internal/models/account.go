package models

// Account is the single registration record. Registration overwrites it
// unconditionally; there is no multi-account support. The Password field
// holds a bcrypt hash, or the raw password when the insecure demo mode is
// enabled.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session records which account is logged in. It is persisted separately
// from the Account record and cleared on logout.
type Session struct {
	Email string `json:"email"`
}
