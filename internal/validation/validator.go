package validation

import (
	"regexp"
	"strings"

	"github.com/blogvault/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Error represents a single validation error
type Error struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is a list of validation errors that itself satisfies error.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for i := range e {
		msgs = append(msgs, e[i].Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateRegistration validates a registration request. Passwords have no
// policy beyond being present, matching the original demo.
func ValidateRegistration(username, email, password, confirmPassword string) Errors {
	var errors Errors

	if strings.TrimSpace(username) == "" {
		errors = append(errors, Error{Field: "username", Message: "username is required"})
	}

	if email == "" {
		errors = append(errors, Error{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, Error{Field: "email", Message: "invalid email format", Value: email})
	}

	if password == "" {
		errors = append(errors, Error{Field: "password", Message: "password is required"})
	}

	if confirmPassword != password {
		errors = append(errors, Error{Field: "confirm_password", Message: "password doesn't match"})
	}

	return errors
}

// ValidatePost validates post input against its target status. Publishing
// requires title and content; a draft needs only a title. Whitespace-only
// values count as empty.
func ValidatePost(input *models.PostInput, status string) Errors {
	var errors Errors

	if !models.ValidStatuses[status] {
		errors = append(errors, Error{
			Field:   "status",
			Message: "invalid status, must be one of: Published, Draft",
			Value:   status,
		})
	}

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, Error{Field: "title", Message: "title is required"})
	}

	if status == models.StatusPublished && strings.TrimSpace(input.Content) == "" {
		errors = append(errors, Error{Field: "content", Message: "content is required to publish"})
	}

	return errors
}

// ValidateText checks a required free-text field (comment or reply body).
func ValidateText(field, text string) Errors {
	if strings.TrimSpace(text) == "" {
		return Errors{{Field: field, Message: field + " text is required"}}
	}
	return nil
}
