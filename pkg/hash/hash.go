// Package hash wraps the byte hash functions used across the module and
// implements hashing onto the curve.
package hash

import (
	"crypto/sha256"
	"errors"
	"fmt"
	stdhash "hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the output size in bytes of every supported Function.
const DigestSize = 32

// ErrUnknownFunction is returned when parsing an unsupported function name.
var ErrUnknownFunction = errors.New("hash: unknown function")

// Function selects a 256-bit hash function.
type Function uint8

const (
	// SHA256 is SHA-256. It is the default everywhere.
	SHA256 Function = iota
	// SHA3_256 is SHA3-256.
	SHA3_256
	// BLAKE3 is BLAKE3 with a 32-byte output.
	BLAKE3
)

func (f Function) String() string {
	switch f {
	case SHA256:
		return "sha256"
	case SHA3_256:
		return "sha3-256"
	case BLAKE3:
		return "blake3"
	default:
		return fmt.Sprintf("hash(%d)", uint8(f))
	}
}

// ParseFunction returns the Function named name, as printed by String.
func ParseFunction(name string) (Function, error) {
	for _, f := range []Function{SHA256, SHA3_256, BLAKE3} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// New returns a fresh hash.Hash for f. It panics if f is not one of the
// defined functions; use ParseFunction for untrusted names.
func (f Function) New() stdhash.Hash {
	switch f {
	case SHA256:
		return sha256.New()
	case SHA3_256:
		return sha3.New256()
	case BLAKE3:
		return blake3.New()
	default:
		panic(fmt.Sprintf("hash: unknown function %s", f))
	}
}

// Sum returns the digest of the concatenation of data.
func (f Function) Sum(data ...[]byte) [DigestSize]byte {
	h := f.New()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out [DigestSize]byte
	h.Sum(out[:0])
	return out
}

// Sum256 returns the SHA-256 digest of input.
func Sum256(input []byte) [DigestSize]byte {
	return sha256.Sum256(input)
}
