// Package encoding stores shares in portable files, as JSON or as
// deterministic CBOR.
package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/party"
	"github.com/luxfi/qudoku/pkg/sharing"
)

// Version is the current share file version.
const Version = 1

var (
	// ErrUnknownFormat is returned when parsing an unsupported format name.
	ErrUnknownFormat = errors.New("encoding: unknown format")
	// ErrKindMismatch is returned when a share file holds the other kind of
	// share than the one requested.
	ErrKindMismatch = errors.New("encoding: share kind mismatch")
	// ErrCurveMismatch is returned when a share file was written for another
	// curve.
	ErrCurveMismatch = errors.New("encoding: curve mismatch")
	// ErrUnsupportedVersion is returned for files from a newer version and for
	// files without a version.
	ErrUnsupportedVersion = errors.New("encoding: unsupported share file version")
	// ErrEmptyCommitment is returned for a commitment file without
	// coefficients.
	ErrEmptyCommitment = errors.New("encoding: commitment has no coefficients")
)

// Kind tells secret shares and point shares apart.
type Kind string

const (
	KindSecret Kind = "secret"
	KindPoint  Kind = "point"
)

// Format selects the serialization of a ShareFile.
type Format string

const (
	JSON Format = "json"
	CBOR Format = "cbor"
)

// ParseFormat returns the Format named name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case JSON, CBOR:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ShareFile is the serialized form of a single share.
type ShareFile struct {
	Version int    `cbor:"1,keyasint" json:"version"`
	Kind    Kind   `cbor:"2,keyasint" json:"kind"`
	Curve   string `cbor:"3,keyasint" json:"curve"`
	Holder  string `cbor:"4,keyasint,omitempty" json:"holder,omitempty"`
	// Label names the point Q a point share was multiplied by, if any.
	Label  string `cbor:"5,keyasint,omitempty" json:"label,omitempty"`
	Input  []byte `cbor:"6,keyasint" json:"input"`
	Output []byte `cbor:"7,keyasint" json:"output"`
}

// FromSecretShare returns the share file for a secret share held by holder.
func FromSecretShare(group curve.Curve, holder party.ID, share sharing.SecretShare) (*ShareFile, error) {
	return newShareFile(group, KindSecret, holder, "", share.Input, share.Output)
}

// FromPointShare returns the share file for a point share of the polynomial
// multiplied by the point labelled label.
func FromPointShare(group curve.Curve, holder party.ID, label string, share sharing.PointShare) (*ShareFile, error) {
	return newShareFile(group, KindPoint, holder, label, share.Input, share.Output)
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

func newShareFile(group curve.Curve, kind Kind, holder party.ID, label string, input curve.Scalar, output binaryMarshaler) (*ShareFile, error) {
	in, err := input.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding: failed to marshal share input: %w", err)
	}
	out, err := output.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding: failed to marshal share output: %w", err)
	}
	return &ShareFile{
		Version: Version,
		Kind:    kind,
		Curve:   group.Name(),
		Holder:  string(holder),
		Label:   label,
		Input:   in,
		Output:  out,
	}, nil
}

func checkVersion(v int) error {
	if v < 1 || v > Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	return nil
}

func (f *ShareFile) check(group curve.Curve, kind Kind) error {
	if err := checkVersion(f.Version); err != nil {
		return err
	}
	if f.Kind != kind {
		return fmt.Errorf("%w: file holds a %s share, want %s", ErrKindMismatch, f.Kind, kind)
	}
	if f.Curve != group.Name() {
		return fmt.Errorf("%w: file is for %s, want %s", ErrCurveMismatch, f.Curve, group.Name())
	}
	return nil
}

func (f *ShareFile) input(group curve.Curve) (curve.Scalar, error) {
	input := group.NewScalar()
	if err := input.UnmarshalBinary(f.Input); err != nil {
		return nil, fmt.Errorf("encoding: failed to unmarshal share input: %w", err)
	}
	return input, nil
}

// SecretShare decodes the secret share held in f.
func (f *ShareFile) SecretShare(group curve.Curve) (sharing.SecretShare, error) {
	if err := f.check(group, KindSecret); err != nil {
		return sharing.SecretShare{}, err
	}
	input, err := f.input(group)
	if err != nil {
		return sharing.SecretShare{}, err
	}
	output := group.NewScalar()
	if err := output.UnmarshalBinary(f.Output); err != nil {
		return sharing.SecretShare{}, fmt.Errorf("encoding: failed to unmarshal share output: %w", err)
	}
	return sharing.SecretShare{Input: input, Output: output}, nil
}

// PointShare decodes the point share held in f.
func (f *ShareFile) PointShare(group curve.Curve) (sharing.PointShare, error) {
	if err := f.check(group, KindPoint); err != nil {
		return sharing.PointShare{}, err
	}
	input, err := f.input(group)
	if err != nil {
		return sharing.PointShare{}, err
	}
	output := group.NewPoint()
	if err := output.UnmarshalBinary(f.Output); err != nil {
		return sharing.PointShare{}, fmt.Errorf("encoding: failed to unmarshal share output: %w", err)
	}
	return sharing.PointShare{Input: input, Output: output}, nil
}

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Marshal serializes f in the given format.
func Marshal(f *ShareFile, format Format) ([]byte, error) {
	return marshal(f, format)
}

// Unmarshal parses a share file in the given format.
func Unmarshal(data []byte, format Format) (*ShareFile, error) {
	var f ShareFile
	if err := unmarshal(data, format, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Decode parses a share file of either format. JSON documents are recognized
// by their leading brace; anything else is read as CBOR.
func Decode(data []byte) (*ShareFile, error) {
	return Unmarshal(data, detect(data))
}

func detect(data []byte) Format {
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		return JSON
	}
	return CBOR
}

func marshal(v interface{}, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return json.MarshalIndent(v, "", "  ")
	case CBOR:
		return cborEncMode.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func unmarshal(data []byte, format Format, v interface{}) error {
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, v)
	case CBOR:
		err = cbor.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encoding: failed to parse %s file: %w", format, err)
	}
	return nil
}
