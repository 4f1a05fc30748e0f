package domain

import (
	"fmt"
	"strings"
	"time"
)

// User-specific validation errors. All wrap ErrValidation so the API
// boundary can map the whole class to a 400 response.
var (
	ErrEmptyEmail       = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyDisplayName = fmt.Errorf("%w: display name cannot be empty", ErrValidation)
)

// User represents a registered user of the Drop Task application.
// A record is created the first time a user logs in and is never
// updated or deleted afterwards; the email address is the unique key.
type User struct {
	Email       string    `json:"email"                bson:"email"`
	DisplayName string    `json:"displayName"          bson:"displayName"`
	UID         string    `json:"uid,omitempty"        bson:"uid,omitempty"` // legacy identifier from the earlier auth scheme
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// NewUser creates a new User with the given email and display name and
// sets the creation timestamp. Returns an error if validation fails.
func NewUser(email, displayName string) (*User, error) {
	user := &User{
		Email:       strings.TrimSpace(email),
		DisplayName: strings.TrimSpace(displayName),
		CreatedAt:   time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.DisplayName == "" {
		return ErrEmptyDisplayName
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// Stricter RFC 5322 validation happens at the API boundary; this check
// only keeps obviously broken values out of the store.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	if dotIndex <= 0 || dotIndex == len(domainPart)-1 {
		return false
	}

	return true
}
