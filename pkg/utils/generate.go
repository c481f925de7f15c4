package utils

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OTP ====================

// GenerateOTPCode returns a numeric code with exactly length digits
// (no leading zero), e.g. length 4 gives 1000..9999.
func GenerateOTPCode(length int) int {
	if length < 4 {
		length = 4
	}

	min := 1
	for i := 1; i < length; i++ {
		min *= 10
	}
	max := min*10 - 1

	return min + rand.Intn(max-min+1)
}

// ==================== QUERY PARAMS ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
