package service_test

import (
	"strings"
	"testing"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/service"
	"github.com/stretchr/testify/assert"
)

func validInput() dto.RegisterInput {
	return dto.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "password123",
	}
}

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RegisterInput)
		want   []string
	}{
		{"valid", func(*dto.RegisterInput) {}, nil},
		{"missing first name", func(in *dto.RegisterInput) { in.FirstName = "" }, []string{"First name is required"}},
		{"whitespace first name", func(in *dto.RegisterInput) { in.FirstName = "   " }, []string{"First name is required"}},
		{"whitespace last name", func(in *dto.RegisterInput) { in.LastName = "\t" }, []string{"Last name is required"}},
		{"missing email", func(in *dto.RegisterInput) { in.Email = "" }, []string{"Invalid email format"}},
		{"email without tld", func(in *dto.RegisterInput) { in.Email = "a@b" }, []string{"Invalid email format"}},
		{"email without domain", func(in *dto.RegisterInput) { in.Email = "a@" }, []string{"Invalid email format"}},
		{"plain email", func(in *dto.RegisterInput) { in.Email = "plain" }, []string{"Invalid email format"}},
		{"email with inner space", func(in *dto.RegisterInput) { in.Email = "a b@c.d" }, []string{"Invalid email format"}},
		{"missing password", func(in *dto.RegisterInput) { in.Password = "" }, []string{"Password must be at least 8 characters"}},
		{"seven char password", func(in *dto.RegisterInput) { in.Password = "1234567" }, []string{"Password must be at least 8 characters"}},
		{"eight char password", func(in *dto.RegisterInput) { in.Password = "12345678" }, nil},
		{"password over bcrypt limit", func(in *dto.RegisterInput) { in.Password = strings.Repeat("x", 73) }, []string{"Password must be at most 72 bytes"}},
		{
			"everything wrong",
			func(in *dto.RegisterInput) { *in = dto.RegisterInput{Email: "nope", Password: "short"} },
			[]string{
				"First name is required",
				"Last name is required",
				"Invalid email format",
				"Password must be at least 8 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			assert.Equal(t, tt.want, service.ValidateRegisterInput(in))
		})
	}
}

func TestValidateRegisterInput_TrimsEmailBeforeMatching(t *testing.T) {
	in := validInput()
	in.Email = "  Ada@Example.COM "
	assert.Empty(t, service.ValidateRegisterInput(in))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", service.NormalizeEmail("  Ada@Example.COM\n"))
}
