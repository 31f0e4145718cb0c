package models

import "time"

// DefaultAvatarURL is assigned to newly registered users until they upload
// their own profile picture.
const DefaultAvatarURL = "https://lirp.cdn-website.com/f8a58d87/dms3rep/multi/opt/Headshot+placeholder+Motion+Mortgages-1920w.jpg"

// User represents an account entity used for authentication and listing
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the globally unique display login of the user.
	Username string `json:"username"`

	// Email is the globally unique e-mail address of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way salted hash, never plaintext, and it is
	// never serialized into API responses.
	PasswordHash string `json:"-"`

	// Avatar is the URL of the user's profile picture. Defaults to
	// [DefaultAvatarURL] at registration time.
	Avatar string `json:"avatar"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the client-visible projection of the user. The password
// hash is already suppressed by its JSON tag; Public additionally clears the
// field so that copies of the struct can be passed around untrusted layers.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
