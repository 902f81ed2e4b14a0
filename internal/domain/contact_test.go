package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContactSubmission(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want ContactSubmission
	}{
		{
			name: "all strings",
			body: map[string]any{"name": "Jo", "email": "a@b.co", "message": "1234567890"},
			want: ContactSubmission{Name: "Jo", Email: "a@b.co", Message: "1234567890"},
		},
		{
			name: "nil body",
			body: nil,
			want: ContactSubmission{},
		},
		{
			name: "null and non-string values",
			body: map[string]any{"name": nil, "email": 42.0, "message": []any{"hello world!"}},
			want: ContactSubmission{},
		},
		{
			name: "extra keys ignored",
			body: map[string]any{"name": "Ann", "subject": "hi"},
			want: ContactSubmission{Name: "Ann"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, NewContactSubmission(tt.body))
		})
	}
}
