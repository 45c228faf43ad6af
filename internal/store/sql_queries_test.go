package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/jwt-keychain/models"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateUserQuery_AllFields(t *testing.T) {
	update := models.UserUpdate{
		UserID:              7,
		Email:               strPtr("new@example.com"),
		Name:                strPtr("New Name"),
		HashedPassword:      strPtr("$2a$10$newhash"),
		BumpPasswordVersion: true,
	}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"UPDATE users",
		"updated_at = NOW()",
		"email = $",
		"name = $",
		"hashed_password = $",
		"password_version = password_version + 1",
		"deleted_at IS NULL",
		"RETURNING user_id",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("query missing fragment %q:\n%s", fragment, query)
		}
	}

	// email, name, hashed_password, user_id
	if len(args) != 4 {
		t.Errorf("expected 4 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateUserQuery_EmailOnly(t *testing.T) {
	query, args, err := buildUpdateUserQuery(models.UserUpdate{UserID: 7, Email: strPtr("new@example.com")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "hashed_password") {
		t.Errorf("query must not touch hashed_password:\n%s", query)
	}
	if strings.Contains(query, "password_version") {
		t.Errorf("query must not touch password_version:\n%s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateUserQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateUserQuery(models.UserUpdate{UserID: 7})
	if err == nil {
		t.Fatal("expected error for empty update, got nil")
	}
}
