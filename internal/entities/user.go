package entities

import "time"

// User is a registered account holder.
//
// PasswordHash is a bcrypt hash. It must never contain the plaintext
// password and is excluded from every serialized form.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the password-free projection of a User produced after
// successful authentication. It is the only user representation that
// crosses into a token claim or a response body.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Identity returns the serializable projection of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username}
}
