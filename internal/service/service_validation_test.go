package service

import (
	"testing"

	"github.com/MKhiriev/jwt-keychain/models"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestValidateUserForm_RegistrationComplete(t *testing.T) {
	form := models.UserForm{
		Email:          ptr("alice@example.com"),
		Name:           ptr("Alice"),
		Password:       ptr("Sup3rSecret"),
		PasswordRepeat: ptr("Sup3rSecret"),
	}

	fieldErrors := validateUserForm(form, models.ValidateAll)

	assert.Empty(t, fieldErrors)
}

func TestValidateUserForm_RegistrationMissingFields(t *testing.T) {
	fieldErrors := validateUserForm(models.UserForm{}, models.ValidateAll)

	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fe.Field)
	}

	assert.Contains(t, fields, models.FieldEmail)
	assert.Contains(t, fields, models.FieldPassword)
}

func TestValidateUserForm_UpdateIgnoresAbsentFields(t *testing.T) {
	// Only the name is supplied; absent email and password must not fail.
	fieldErrors := validateUserForm(models.UserForm{Name: ptr("New Name")}, models.ValidateNonNil)

	assert.Empty(t, fieldErrors)
}

func TestValidateUserForm_UpdateChecksSuppliedFields(t *testing.T) {
	form := models.UserForm{Email: ptr("not-an-email")}

	fieldErrors := validateUserForm(form, models.ValidateNonNil)

	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, models.FieldEmail, fieldErrors[0].Field)
}

func TestValidateUserForm_PasswordWithoutRepeat(t *testing.T) {
	form := models.UserForm{Password: ptr("Sup3rSecret")}

	fieldErrors := validateUserForm(form, models.ValidateNonNil)

	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, models.FieldPasswordRepeat, fieldErrors[0].Field)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong password", "Sup3rSecret", true},
		{"too short", "Ab1", false},
		{"no upper case", "sup3rsecret", false},
		{"no lower case", "SUP3RSECRET", false},
		{"no digit", "SuperSecret", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldError := validatePasswordStrength(tt.password)
			if tt.valid {
				assert.Nil(t, fieldError)
			} else {
				assert.NotNil(t, fieldError)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "alice@example.com", true},
		{"missing at sign", "alice.example.com", false},
		{"display name form rejected", "Alice <alice@example.com>", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldError := validateEmail(tt.email)
			if tt.valid {
				assert.Nil(t, fieldError)
			} else {
				assert.NotNil(t, fieldError)
			}
		})
	}
}
