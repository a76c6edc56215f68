package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountForm struct {
	Username string `json:"username" validate:"required,min=3,username"`
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"omitempty,len=6,numeric"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&accountForm{Username: "ok_user", Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.NotContains(t, vErr.Errors, "username")
}

func TestValidate_UsernameRule(t *testing.T) {
	v := New()

	valid := []string{"wanjiku", "Wanjiku_95", "user.name-1"}
	for _, u := range valid {
		err := v.Validate(&accountForm{Username: u, Email: "a@b.co"})
		assert.NoError(t, err, "username %q should pass", u)
	}

	invalid := []string{"has space", "emoji🙂", "semi;colon"}
	for _, u := range invalid {
		err := v.Validate(&accountForm{Username: u, Email: "a@b.co"})
		require.Error(t, err, "username %q should fail", u)
		vErr := err.(*ValidationError)
		assert.Contains(t, vErr.Errors, "username")
	}
}

func TestValidate_CodeShape(t *testing.T) {
	v := New()

	base := accountForm{Username: "wanjiku", Email: "a@b.co"}

	withCode := base
	withCode.Code = "123456"
	assert.NoError(t, v.Validate(&withCode))

	short := base
	short.Code = "123"
	err := v.Validate(&short)
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "code")

	alpha := base
	alpha.Code = "12a456"
	err = v.Validate(&alpha)
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "code")
}

func TestValidate_RequiredMessage(t *testing.T) {
	v := New()

	err := v.Validate(&accountForm{})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["username"])
	assert.Equal(t, "This field is required", vErr.Errors["email"])
}
