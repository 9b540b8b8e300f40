package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() Submission {
	return Submission{
		Name:    "Maya Chen",
		Email:   "maya@emberandoak.coffee",
		Subject: "Wholesale",
		Message: "Do you offer wholesale pricing for cafes?",
	}
}

func TestValidate_Accepts(t *testing.T) {
	res := Validate(valid())
	require.True(t, res.Success)
	assert.Equal(t, "Thanks for reaching out! We'll get back to you within a day or two.", res.Message)
}

func TestValidate_RequiredFields(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Submission)
	}{
		{"missing name", func(s *Submission) { s.Name = "" }},
		{"missing email", func(s *Submission) { s.Email = "" }},
		{"missing message", func(s *Submission) { s.Message = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			res := Validate(s)
			require.False(t, res.Success)
			assert.Equal(t, "Please fill in all required fields.", res.Message)
		})
	}
}

func TestValidate_SubjectOptional(t *testing.T) {
	s := valid()
	s.Subject = ""
	require.True(t, Validate(s).Success)
}

func TestValidate_Email(t *testing.T) {
	for email, ok := range map[string]bool{
		"foo@bar.com":     true,
		"a.b+c@d.e.co":    true,
		"foo@bar":         false,
		"foo bar@baz.com": false,
		"@bar.com":        false,
		"foo@":            false,
	} {
		s := valid()
		s.Email = email
		res := Validate(s)
		require.Equal(t, ok, res.Success, "email %q", email)
		if !ok {
			assert.Equal(t, "Please enter a valid email address.", res.Message)
		}
	}
}

func TestValidate_MessageLengthBounds(t *testing.T) {
	for _, tc := range []struct {
		length  int
		success bool
		message string
	}{
		{9, false, "Please enter a longer message (at least 10 characters)."},
		{10, true, ""},
		{5000, true, ""},
		{5001, false, "Message is too long (maximum 5000 characters)."},
	} {
		s := valid()
		s.Message = strings.Repeat("x", tc.length)
		res := Validate(s)
		require.Equal(t, tc.success, res.Success, "length %d", tc.length)
		if tc.message != "" {
			assert.Equal(t, tc.message, res.Message)
		}
	}
}

func TestValidate_MessageLengthCountsRunes(t *testing.T) {
	s := valid()
	s.Message = strings.Repeat("é", 10)
	require.True(t, Validate(s).Success)
}

func TestValidate_MissingFieldsWinsOverEmailCheck(t *testing.T) {
	s := valid()
	s.Name = ""
	s.Email = "not-an-email"
	assert.Equal(t, "Please fill in all required fields.", Validate(s).Message)
}
