package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "lena@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		ContactName:     "Lena Weber",
	}

	tests := []struct {
		name    string
		mutate  func(r *SignupRequest)
		wantErr bool
	}{
		{"valid request", func(r *SignupRequest) {}, false},
		{"missing email", func(r *SignupRequest) { r.Email = "" }, true},
		{"malformed email", func(r *SignupRequest) { r.Email = "not-an-email" }, true},
		{"password too short", func(r *SignupRequest) { r.Password = "pass1"; r.ConfirmPassword = "pass1" }, true},
		{"password without digit", func(r *SignupRequest) { r.Password = "passwords"; r.ConfirmPassword = "passwords" }, true},
		{"password without letter", func(r *SignupRequest) { r.Password = "123456789"; r.ConfirmPassword = "123456789" }, true},
		{"confirm mismatch", func(r *SignupRequest) { r.ConfirmPassword = "password2" }, true},
		{"missing contact name", func(r *SignupRequest) { r.ContactName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "lena@example.com", Password: "password1"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "", Password: "password1"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "lena@example.com", Password: ""}).Validate())
}
