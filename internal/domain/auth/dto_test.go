package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
)

func TestRegisterAdminRequest_Validate(t *testing.T) {
	req := RegisterAdminRequest{
		Username:  "alice",
		Subdomain: "acme-fitness",
		Email:     "alice@example.com",
		Password:  "supersecret",
	}
	assert.NoError(t, req.Validate())
}

func TestRegisterAdminRequest_Validate_CollectsAllErrors(t *testing.T) {
	req := RegisterAdminRequest{
		Username:  "ab",       // too short
		Subdomain: "-bad",     // leading hyphen
		Email:     "not-mail", // invalid
		Password:  "  ",       // blank
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "username")
	assert.Contains(t, m, "subdomain")
	assert.Contains(t, m, "email")
	assert.Contains(t, m, "password")
}

func TestLoginRequest_Validate(t *testing.T) {
	ok := LoginRequest{Username: "bob", Password: "pw", Subdomain: "acme1"}
	assert.NoError(t, ok.Validate())

	missing := LoginRequest{Username: "", Password: ""}
	err := missing.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}
