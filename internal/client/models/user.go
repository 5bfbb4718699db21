package models

import "time"

// Role is the user's access level. A fresh profile is anonymous until the
// user attaches a marketplace account.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// User is the single local-identity record. The auth fields are stored
// opaquely for a future sync implementation; the store never interprets the
// token.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       *string    `json:"email"`
	AvatarURL   *string    `json:"avatarUrl"`
	IsLoggedIn  bool       `json:"isLoggedIn"`
	RemoteID    *string    `json:"remoteId"`
	AuthToken   *string    `json:"authToken"`
	TokenExpiry *time.Time `json:"tokenExpiry"`
	Role        Role       `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// UserPatch is a partial update. Nil fields are left untouched. ClearAuth
// nulls the token, its expiry and the remote id (pointer fields cannot
// express "set to null" on their own).
type UserPatch struct {
	Name        *string
	Email       *string
	AvatarURL   *string
	IsLoggedIn  *bool
	RemoteID    *string
	AuthToken   *string
	TokenExpiry *time.Time
	Role        *Role
	ClearAuth   bool
}

// Apply merges the patch into u. UpdatedAt is the caller's responsibility.
func (u *User) Apply(patch UserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = patch.Email
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = patch.AvatarURL
	}
	if patch.IsLoggedIn != nil {
		u.IsLoggedIn = *patch.IsLoggedIn
	}
	if patch.RemoteID != nil {
		u.RemoteID = patch.RemoteID
	}
	if patch.AuthToken != nil {
		u.AuthToken = patch.AuthToken
	}
	if patch.TokenExpiry != nil {
		u.TokenExpiry = patch.TokenExpiry
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.ClearAuth {
		u.AuthToken = nil
		u.TokenExpiry = nil
		u.RemoteID = nil
	}
}
