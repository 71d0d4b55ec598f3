package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+254712345678"))
	assert.True(t, ValidatePhone("712 345 678"))
	assert.True(t, ValidatePhone("+1 (555) 123-4567"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("+0123456"))
}

func TestNormalizePhone(t *testing.T) {
	// Formatting variants of one number must normalize identically so a
	// customer is never split across two records.
	assert.Equal(t, "+254712345678", NormalizePhone("+254 712-345678"))
	assert.Equal(t, "+254712345678", NormalizePhone("+254712345678"))
	assert.Equal(t, "+15551234567", NormalizePhone("+1 (555) 123-4567"))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "KBZ123A", NormalizePlate("kbz 123a"))
	assert.Equal(t, "KBZ123A", NormalizePlate("KBZ-123-A"))
}

func TestValidatePlate(t *testing.T) {
	assert.True(t, ValidatePlate("KBZ 123A"))
	assert.True(t, ValidatePlate("abc123"))
	assert.False(t, ValidatePlate("ab"))
	assert.False(t, ValidatePlate("TOO-LONG-PLATE-99"))
	assert.False(t, ValidatePlate("KBZ 123!"))
}
