package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Password string `json:"password" validate:"required"`
	Ignored  string `json:"-"`
}

func TestEchoValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&loginRequest{Name: "Ana", Password: "1"}))

	err := v.Validate(&loginRequest{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: notblank")
	assert.Contains(t, err.Error(), "password: required")
}
