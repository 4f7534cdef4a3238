package sample_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/math/sample"
	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestScalar(t *testing.T) {
	group := curve.Secp256k1{}

	a := sample.Scalar(rand.Reader, group)
	b := sample.Scalar(rand.Reader, group)
	assert.False(t, a.Equal(b))

	zeros := bytes.NewReader(make([]byte, group.SafeScalarBytes()))
	assert.True(t, sample.Scalar(zeros, group).IsZero())
}

func TestCoefficients(t *testing.T) {
	group := curve.Secp256k1{}

	coefs := sample.Coefficients(rand.Reader, group, 5)
	assert.Len(t, coefs, 5)
	for _, c := range coefs {
		assert.False(t, c.IsZero())
	}
	assert.Empty(t, sample.Coefficients(rand.Reader, group, 0))
}

func TestFailingReader(t *testing.T) {
	assert.PanicsWithValue(t, sample.ErrMaxIterations, func() {
		sample.Scalar(failingReader{}, curve.Secp256k1{})
	})
}
