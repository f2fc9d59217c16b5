package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyExactMatch(t *testing.T) {
	v := NewVerifier("daylio")

	assert.True(t, v.Verify("daylio"))
}

func TestVerifyRejectsWrongToken(t *testing.T) {
	v := NewVerifier("daylio")

	assert.False(t, v.Verify("wrong"))
}

func TestVerifyRejectsCaseDifference(t *testing.T) {
	v := NewVerifier("daylio")

	assert.False(t, v.Verify("Daylio"))
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	v := NewVerifier("daylio")

	assert.False(t, v.Verify(""))
}

func TestVerifyRejectsPrefix(t *testing.T) {
	v := NewVerifier("daylio")

	assert.False(t, v.Verify("dayli"))
	assert.False(t, v.Verify("daylios"))
}
