package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,is-user-role"`
	Gender string `json:"gender" validate:"is-gender"`
	Kind   string `json:"kind" validate:"omitempty,is-compensation-kind"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "user@example.com",
		Role:   "talent",
		Gender: "female",
		Kind:   "paid",
	})
	assert.NoError(t, err)
}

func TestValidateEmptyOptionalEnums(t *testing.T) {
	v := New()

	// Gender and kind are optional; empty values pass the enum rules.
	err := v.Validate(&sampleRequest{
		Email: "user@example.com",
		Role:  "producer",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email: "not-an-email",
		Role:  "wizard",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidateEnumRules(t *testing.T) {
	v := New()

	cases := []struct {
		name string
		req  sampleRequest
		ok   bool
	}{
		{"admin role rejected", sampleRequest{Email: "a@b.co", Role: "admin"}, false},
		{"unknown gender", sampleRequest{Email: "a@b.co", Role: "talent", Gender: "unknown"}, false},
		{"any gender ok", sampleRequest{Email: "a@b.co", Role: "talent", Gender: "any"}, true},
		{"deferred compensation ok", sampleRequest{Email: "a@b.co", Role: "talent", Kind: "deferred"}, true},
		{"bad compensation", sampleRequest{Email: "a@b.co", Role: "talent", Kind: "gifted"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
