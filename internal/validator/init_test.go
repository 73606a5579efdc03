package validator

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordInput struct {
	Password string `validate:"maxbytes=72"`
}

type bindInput struct {
	Password string `binding:"required,maxbytes=72"`
}

func TestStruct_MaxBytes(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "ascii at limit", password: strings.Repeat("a", 72)},
		{name: "ascii over limit", password: strings.Repeat("a", 73), wantErr: true},
		{name: "multibyte at limit", password: strings.Repeat("é", 36)},
		{name: "multibyte over limit under rune count", password: strings.Repeat("é", 40), wantErr: true},
		{name: "empty", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(passwordInput{Password: tt.password})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterGin(t *testing.T) {
	require.NoError(t, RegisterGin())
	require.NoError(t, RegisterGin())

	assert.NoError(t, binding.Validator.ValidateStruct(bindInput{Password: strings.Repeat("é", 36)}))
	assert.Error(t, binding.Validator.ValidateStruct(bindInput{Password: strings.Repeat("é", 40)}))
}
