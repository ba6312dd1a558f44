package domain

import (
	"strings"
	"time"
)

// User is an account identified by email. Users may be created before
// they activate: a role assignment can reference someone who has only
// received an invitation so far.
type User struct {
	ID              int32      `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	PhoneNumber     string     `json:"phone_number"`
	PhotoURL        string     `json:"photo_url"`
	PasswordHash    string     `json:"-"`
	IsActive        bool       `json:"is_active"`
	ActivationToken *string    `json:"-"`
	CreatedOn       time.Time  `json:"created_on"`
}

// FullName returns the first name plus the last name, with a space in
// between.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail lower-cases an email address. Emails are the primary
// identifier and are stored case-normalized.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ResolvedUser is the outcome of invitation resolution for one email:
// either an existing account or a newly invited one carrying a fresh
// activation token.
type ResolvedUser struct {
	User    User   `json:"user"`
	Invited bool   `json:"invited"`
	Token   string `json:"-"` // set only when Invited
}
