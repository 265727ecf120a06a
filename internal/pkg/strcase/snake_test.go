package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLowerSnake(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"Name":          "name",
		"FullName":      "full_name",
		"Email":         "email",
		"userID":        "user_id",
		"HTTPServer":    "http_server",
		"OTP":           "otp",
		"already_snake": "already_snake",
	}

	for in, want := range tests {
		assert.Equal(t, want, ToLowerSnake(in), "input %q", in)
	}
}
