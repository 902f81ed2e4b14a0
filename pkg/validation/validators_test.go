package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `json:"email" validate:"contact_email"`
	Short string `json:"short" validate:"trimmed_min=2"`
	Long  string `json:"long_text,omitempty" validate:"required,trimmed_min=10"`
}

func TestContactEmail(t *testing.T) {
	v := New()

	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"ann@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"bad", false},
		{"a@b", false},
		{"@b.co", false},
		{"a@.co", false},
		{"a@b.", false},
		{"a b@c.co", false},
		{"a@b@c.co", false},
		{"a@b.co\n", false},
		{"a @b.co", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.Var(tt.email, "contact_email")
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestTrimmedMin(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("Jo", "trimmed_min=2"))
	assert.NoError(t, v.Var("  Jo  ", "trimmed_min=2"))
	assert.Error(t, v.Var(" J ", "trimmed_min=2"))
	assert.NoError(t, v.Var("Zoë", "trimmed_min=3"))
	assert.Error(t, v.Var("\t\n", "trimmed_min=1"))
}

func TestFieldMessagesUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(sample{Email: "nope", Short: "x"})
	fields := FieldMessages(err, map[string]string{"email": "Valid email is required"})

	assert.Equal(t, map[string]string{
		"email":     "Valid email is required",
		"short":     "short must be at least 2 characters",
		"long_text": "long_text is required",
	}, fields)
}

func TestFieldMessagesIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldMessages(assert.AnError, nil))
	assert.Nil(t, FieldMessages(nil, nil))
}
