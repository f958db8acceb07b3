package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordMeetsPolicy(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"Admin@123", true},
		{"Sh0rt!", false},
		{"alllower1!", false},
		{"ALLUPPER1!", false},
		{"NoDigits!!", false},
		{"NoSymbol12", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordMeetsPolicy(tt.password))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,password"`
		Role     string `validate:"omitempty,oneof=admin user"`
	}

	assert.Empty(t, ValidateStruct(payload{Email: "a@example.com", Password: "Str0ng!pass"}))

	errs := ValidateStruct(payload{Email: "nope", Password: "weak", Role: "root"})
	require.Len(t, errs, 3)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be one of: admin, user", errs["Role"])
	assert.Contains(t, errs["Password"], "at least 8 characters")
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "second", "a": "first"})
	assert.Equal(t, "a: first; b: second", got)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)
	assert.True(t, CheckPasswordHash("Str0ng!pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestParseUUIDList(t *testing.T) {
	a := "6f1c2f0e-3d1e-4a4f-9b0c-1a2b3c4d5e6f"
	b := "0a9b8c7d-6e5f-4a3b-8c2d-1e0f9a8b7c6d"

	ids, err := ParseUUIDList([]string{a + ", " + b, "", " "})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, a, ids[0].String())
	assert.Equal(t, b, ids[1].String())

	ids, err = ParseUUIDList(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseUUIDList([]string{a, "not-a-uuid"})
	assert.Error(t, err)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, ParseInt("", 7))
	assert.Equal(t, 7, ParseInt("abc", 7))
	assert.Equal(t, -1, ParseInt("-1", 7))
	assert.Equal(t, 3, ParseInt("3", 7))
}
