package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProofExtension(t *testing.T) {
	ext, ok := ProofExtension("Application/PDF")
	assert.True(t, ok)
	assert.Equal(t, ".pdf", ext)

	ext, ok = ProofExtension("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, ".jpg", ext)

	_, ok = ProofExtension("text/html")
	assert.False(t, ok)
}

func TestProofKey(t *testing.T) {
	key := ProofKey("c1", "cert-9", ".png")

	assert.True(t, strings.HasPrefix(key, "companies/c1/certificates/cert-9/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, ProofKey("c1", "cert-9", ".png"))
}
