package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jordan@campus.edu"))
	assert.True(t, ValidateEmail("first.last+tag@sub.domain.org"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@campus.edu"))
}

func TestValidatePasswordComplexity(t *testing.T) {
	assert.True(t, ValidatePasswordComplexity("Password123"))
	assert.False(t, ValidatePasswordComplexity("password123"))
	assert.False(t, ValidatePasswordComplexity("PASSWORD123"))
	assert.False(t, ValidatePasswordComplexity("Password"))
}
