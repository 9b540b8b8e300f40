// Package contact validates contact form submissions. Submissions are not
// persisted; a valid one is logged and acknowledged.
package contact

import "regexp"

// Submission is one contact form post, already URL-decoded. Name, Email and
// Message are required; Subject is optional.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Result is the outcome shown back to the visitor.
type Result struct {
	Success bool
	Message string
}

// User-facing validation messages.
const (
	msgMissingFields = "Please fill in all required fields."
	msgInvalidEmail  = "Please enter a valid email address."
	msgTooShort      = "Please enter a longer message (at least 10 characters)."
	msgTooLong       = "Message is too long (maximum 5000 characters)."
	msgSuccess       = "Thanks for reaching out! We'll get back to you within a day or two."
)

// Message length bounds, counted in characters after trimming.
const (
	minMessageLen = 10
	maxMessageLen = 5000
)

// emailPattern requires a local part, an @, a domain and a dot-separated TLD,
// with no whitespace anywhere. "foo@bar" fails; "foo@bar.com" passes.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a trimmed submission and returns the result to display.
// Checks run in a fixed order and the first failure wins.
func Validate(s Submission) Result {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return Result{Success: false, Message: msgMissingFields}
	}
	if !emailPattern.MatchString(s.Email) {
		return Result{Success: false, Message: msgInvalidEmail}
	}
	if n := len([]rune(s.Message)); n < minMessageLen {
		return Result{Success: false, Message: msgTooShort}
	} else if n > maxMessageLen {
		return Result{Success: false, Message: msgTooLong}
	}
	return Result{Success: true, Message: msgSuccess}
}
