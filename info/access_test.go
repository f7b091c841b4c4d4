package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessFlags_Predicates(t *testing.T) {
	a := AccPublic | AccStatic | AccFinal
	assert.True(t, a.IsPublic())
	assert.True(t, a.IsStatic())
	assert.True(t, a.IsFinal())
	assert.False(t, a.IsPrivate())
	assert.False(t, a.IsProtected())
	assert.False(t, a.IsAbstract())
}

func TestAccessFlags_IsPackagePrivate(t *testing.T) {
	assert.True(t, AccessFlags(0).IsPackagePrivate(), "zero access flags should be package-private")
	assert.False(t, AccPublic.IsPackagePrivate(), "public access flags should not be package-private")
	assert.True(t, AccStatic.IsPackagePrivate(), "static-only access flags (no public/protected/private) should be package-private")
}

func TestAccessFlags_WithDeprecated(t *testing.T) {
	a := AccPublic
	b := a.WithDeprecated()
	assert.False(t, a.IsDeprecated(), "WithDeprecated must not mutate the receiver")
	assert.True(t, b.IsDeprecated())
	assert.True(t, b.IsPublic(), "WithDeprecated must preserve other bits")
}
