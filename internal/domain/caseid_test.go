package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCaseID(t *testing.T) {
	assert.True(t, IsValidCaseID("123456"))
	assert.True(t, IsValidCaseID("000000"))

	assert.False(t, IsValidCaseID(""))
	assert.False(t, IsValidCaseID("12345"))
	assert.False(t, IsValidCaseID("1234567"))
	assert.False(t, IsValidCaseID("12a456"))
	assert.False(t, IsValidCaseID("12 456"))
	assert.False(t, IsValidCaseID("１２３４５６"), "full-width digits are not ASCII digits")
}

func TestNormalizeCaseID(t *testing.T) {
	assert.Equal(t, "123456", NormalizeCaseID("  123456\t"))
}
