package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cronokirby/saferith"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/sharing"
	"github.com/luxfi/qudoku/pkg/sharing/encoding"
)

func readShareFile(path string) (*encoding.ShareFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read share file: %w", err)
	}
	f, err := encoding.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func readCommitment(path string) (*sharing.Commitment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commitment: %w", err)
	}
	f, err := encoding.DecodeCommitment(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Commitment(group)
}

func writeShareFile(dir, name string, f *encoding.ShareFile, format encoding.Format) (string, error) {
	data, err := encoding.Marshal(f, format)
	if err != nil {
		return "", fmt.Errorf("failed to marshal share: %w", err)
	}
	path := filepath.Join(dir, name+"."+string(format))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write share file: %w", err)
	}
	return path, nil
}

// fileComponent rejects names that cannot be used as part of a file name.
func fileComponent(kind, name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%s %q cannot be used in a file name", kind, name)
	}
	return nil
}

// parseScalar reads a big-endian hex integer and reduces it modulo the group
// order. An empty string is zero.
func parseScalar(group curve.Curve, s string) (curve.Scalar, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode scalar: %w", err)
	}
	return group.NewScalar().SetNat(new(saferith.Nat).SetBytes(data)), nil
}

func scalarHex(s curve.Scalar) (string, error) {
	data, err := s.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

func pointHex(p curve.Point) (string, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}
