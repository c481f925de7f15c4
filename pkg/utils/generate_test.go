package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 500; i++ {
		code := GenerateOTPCode(4)
		assert.GreaterOrEqual(t, code, 1000)
		assert.LessOrEqual(t, code, 9999)
	}
}

func TestGenerateOTPCodeSixDigits(t *testing.T) {
	for i := 0; i < 500; i++ {
		code := GenerateOTPCode(6)
		assert.GreaterOrEqual(t, code, 100000)
		assert.LessOrEqual(t, code, 999999)
	}
}

func TestGenerateOTPCodeMinimumLength(t *testing.T) {
	// Anything below 4 digits is bumped up to 4.
	for i := 0; i < 100; i++ {
		code := GenerateOTPCode(2)
		assert.GreaterOrEqual(t, code, 1000)
		assert.LessOrEqual(t, code, 9999)
	}
}

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.NotEqual(t, a, b)

	parsed, err := ParseUUID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
}
