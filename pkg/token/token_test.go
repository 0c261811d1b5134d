package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	token, err := Generate(8)
	assert.NoError(t, err)
	assert.Equal(t, 8, len(token))

	token2, err := Generate(8)
	assert.NoError(t, err)
	assert.NotEqual(t, token, token2)

	for _, n := range []int{1, 3, 4, 24, 40} {
		token, err := Generate(n)
		assert.NoError(t, err)
		assert.Equal(t, n, len(token))
	}

	_, err = Generate(0)
	assert.EqualError(t, err, "token length must be greater than zero")
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("abc", "abc"))
	assert.False(t, Equal("abc", "abd"))
	assert.False(t, Equal("abc", ""))
}
