package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidClockCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"0000", true},
		{"1234", true},
		{"9999", true},
		{"", false},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"12 4", false},
		{"-123", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidClockCode(tc.code), "code %q", tc.code)
	}
}

func TestIsValidRate(t *testing.T) {
	cases := []struct {
		rate string
		want bool
	}{
		{"0", true},
		{"120", true},
		{"120.50", true},
		{"0.01", true},
		{"-0.01", false},
		{"-120", false},
		{"120.505", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidRate(decimal.RequireFromString(tc.rate)), "rate %s", tc.rate)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0192d2f0-1111-7abc-8def-000000000001"))
	assert.False(t, IsValidUUID("0192d2f0-1111-4abc-8def-000000000001"), "wrong version")
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "clock_code", Message: "clock code must be exactly 4 digits"},
	}

	assert.Equal(t, "name: name is required; clock_code: clock code must be exactly 4 digits", errs.Error())
	assert.Equal(t, map[string]string{
		"name":       "name is required",
		"clock_code": "clock code must be exactly 4 digits",
	}, errs.ToMap())
}
