package encoding

import (
	"fmt"

	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/sharing"
)

// CommitmentFile is the serialized form of a sharing.Commitment, holding the
// compressed encoding of every coefficient point, constant term first.
type CommitmentFile struct {
	Version      int      `cbor:"1,keyasint" json:"version"`
	Curve        string   `cbor:"2,keyasint" json:"curve"`
	Coefficients [][]byte `cbor:"3,keyasint" json:"coefficients"`
}

// FromCommitment returns the commitment file for c.
func FromCommitment(group curve.Curve, c *sharing.Commitment) (*CommitmentFile, error) {
	coefficients := c.Coefficients()
	f := &CommitmentFile{
		Version:      Version,
		Curve:        group.Name(),
		Coefficients: make([][]byte, len(coefficients)),
	}
	for i, p := range coefficients {
		data, err := p.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("encoding: failed to marshal coefficient %d: %w", i, err)
		}
		f.Coefficients[i] = data
	}
	return f, nil
}

// Commitment decodes the commitment held in f.
func (f *CommitmentFile) Commitment(group curve.Curve) (*sharing.Commitment, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	if f.Curve != group.Name() {
		return nil, fmt.Errorf("%w: file is for %s, want %s", ErrCurveMismatch, f.Curve, group.Name())
	}
	if len(f.Coefficients) == 0 {
		return nil, ErrEmptyCommitment
	}
	points := make([]curve.Point, len(f.Coefficients))
	for i, data := range f.Coefficients {
		points[i] = group.NewPoint()
		if err := points[i].UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("encoding: failed to unmarshal coefficient %d: %w", i, err)
		}
	}
	return sharing.NewPointSharingPolynomial(group, points), nil
}

// MarshalCommitment serializes f in the given format.
func MarshalCommitment(f *CommitmentFile, format Format) ([]byte, error) {
	return marshal(f, format)
}

// DecodeCommitment parses a commitment file of either format.
func DecodeCommitment(data []byte) (*CommitmentFile, error) {
	var f CommitmentFile
	if err := unmarshal(data, detect(data), &f); err != nil {
		return nil, err
	}
	return &f, nil
}
