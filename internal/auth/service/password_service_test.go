package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndCompare(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	plain := "secret123"

	digest, err := svc.Hash(plain)
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, plain, digest)

	assert.True(t, svc.Compare(plain, digest))
	assert.False(t, svc.Compare("wrong-password", digest))
	assert.False(t, svc.Compare(plain, "not-a-valid-digest"))
}

func TestPasswordService_HashIsSalted(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	digest1, err := svc.Hash("secret123")
	require.NoError(t, err)
	digest2, err := svc.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, digest1, digest2)
}
