package model

import (
	"net/mail"
	"strings"
)

// FormState is the validity signal the presentation layer attaches to a
// submitted form
type FormState interface {
	Valid() bool
}

// FormValidity is a FormState whose validity was decided elsewhere
type FormValidity bool

// Valid implements FormState
func (v FormValidity) Valid() bool {
	return bool(v)
}

// UserForm is the create-user form model
type UserForm struct {
	UserName string `json:"user_name"`
	Email    string `json:"email,omitempty"`
}

// IsZero reports whether the form has been reset
func (f UserForm) IsZero() bool {
	return f == UserForm{}
}

// Validate checks the form the way the create-user dialog does before
// enabling submit: a user name is required and the email, if given, must parse
func (f UserForm) Validate() FormValidity {
	if strings.TrimSpace(f.UserName) == "" {
		return false
	}
	if f.Email != "" {
		if _, err := mail.ParseAddress(f.Email); err != nil {
			return false
		}
	}
	return true
}

// NewGameForm is the new-game form model
type NewGameForm struct {
	UserName1 string `json:"user_name1"`
	UserName2 string `json:"user_name2"`
}

// IsZero reports whether the form has been reset
func (f NewGameForm) IsZero() bool {
	return f == NewGameForm{}
}

// Validate requires both player names
func (f NewGameForm) Validate() FormValidity {
	return strings.TrimSpace(f.UserName1) != "" && strings.TrimSpace(f.UserName2) != ""
}
