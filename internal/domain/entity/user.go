// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record behind every login. The username is the
// primary identifier; email is unique as well. The record is created at
// registration and immutable afterwards except for the password hash.
type User struct {
	Username     string    // Unique login name, the primary identifier.
	Email        string    // Unique contact email.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the password; never leaves the credential layer.
	Roles        Roles     // Roles granted to this user.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// PublicUser is the user as exposed to clients: the stored record minus
// the password hash.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Public strips the credential material from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
	}
}
