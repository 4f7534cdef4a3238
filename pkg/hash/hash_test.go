package hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/luxfi/qudoku/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	// SHA-256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	got := hash.SHA256.Sum([]byte("abc"))
	assert.Equal(t, want, hex.EncodeToString(got[:]))
	assert.Equal(t, got, hash.Sum256([]byte("abc")))
	assert.Equal(t, got, hash.SHA256.Sum([]byte("a"), []byte("bc")))

	// SHA3-256("abc")
	want = "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"
	got = hash.SHA3_256.Sum([]byte("abc"))
	assert.Equal(t, want, hex.EncodeToString(got[:]))

	b1 := hash.BLAKE3.Sum([]byte("abc"))
	b2 := hash.BLAKE3.Sum([]byte("abc"))
	assert.Equal(t, b1, b2)
	assert.NotEqual(t, b1, got)
}

func TestParseFunction(t *testing.T) {
	for _, fn := range []hash.Function{hash.SHA256, hash.SHA3_256, hash.BLAKE3} {
		parsed, err := hash.ParseFunction(fn.String())
		require.NoError(t, err)
		assert.Equal(t, fn, parsed)
	}

	_, err := hash.ParseFunction("md5")
	assert.ErrorIs(t, err, hash.ErrUnknownFunction)
}

func TestUnknownFunctionPanics(t *testing.T) {
	assert.Panics(t, func() { hash.Function(9).New() })
	assert.Panics(t, func() { hash.Function(9).Sum([]byte("abc")) })
}
