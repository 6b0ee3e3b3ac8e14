package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("4561261212345467"))
	assert.False(t, IsLuhn("4561261212345464"))
	assert.False(t, IsLuhn("not-a-number"))
}

func TestStruct(t *testing.T) {
	type req struct {
		Name  string  `validate:"required"`
		Email string  `validate:"omitempty,email"`
		Sum   float64 `validate:"omitempty,gt=0"`
	}

	assert.NoError(t, Struct(req{Name: "ID Card"}))

	err := Struct(req{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	err = Struct(req{Name: "x", Email: "nope"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
}
