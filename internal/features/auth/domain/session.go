package domain

import "errors"

// ErrNotSignedIn is returned when an operation requires an active staff
// session and there is none.
var ErrNotSignedIn = errors.New("not signed in")

// ErrInvalidCredentials is returned when the backend rejects a sign-in.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Credentials is the access/refresh token pair identifying a staff session.
// Exactly one pair is current per process; only the refresh routine and
// sign-out may replace it.
type Credentials struct {
	// AccessToken is the short-lived bearer token.
	AccessToken string `json:"accessToken"`
	// RefreshToken is the long-lived token used to rotate the access token.
	RefreshToken string `json:"refreshToken"`
}

// StaffUser is the authenticated dashboard user as reported by the backend.
type StaffUser struct {
	// ID is the staff account identifier.
	ID string `json:"id"`
	// Username is the sign-in name.
	Username string `json:"username"`
	// FullName is the display name.
	FullName string `json:"fullName"`
	// Permissions is the flat list of permission codes granted to the user.
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the user holds a permission code.
// Gating is a pure membership check.
func (u StaffUser) HasPermission(code string) bool {
	for _, p := range u.Permissions {
		if p == code {
			return true
		}
	}
	return false
}
