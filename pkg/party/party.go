// Package party identifies shareholders and maps them to the polynomial
// inputs their shares are issued at.
package party

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cronokirby/saferith"
	"github.com/luxfi/qudoku/pkg/math/curve"
)

var (
	// ErrZeroInput is returned for an ID whose input is zero, where the
	// shared secret itself lives.
	ErrZeroInput = errors.New("party: id maps to the zero input")
	// ErrInputCollision is returned when two distinct IDs map to the same
	// input and would receive the same share.
	ErrInputCollision = errors.New("party: ids map to the same input")
)

// ID is a shareholder identifier.
type ID string

// Scalar returns the polynomial input of the shareholder: the big-endian
// integer value of the ID's bytes, reduced modulo the group order.
//
// IDs that map to zero, such as the empty ID, would receive the secret itself
// and are rejected by Scalars and Valid.
func (id ID) Scalar(group curve.Curve) curve.Scalar {
	return group.NewScalar().SetNat(new(saferith.Nat).SetBytes([]byte(id)))
}

// Bytes returns the ID as a byte slice.
func (id ID) Bytes() []byte {
	return []byte(id)
}

// IDSlice is a sorted list of distinct IDs.
type IDSlice []ID

// NewIDSlice returns a sorted copy of ids with duplicates removed.
func NewIDSlice(ids []ID) IDSlice {
	out := make(IDSlice, len(ids))
	copy(out, ids)
	sort.Sort(out)
	unique := out[:0]
	for _, id := range out {
		if len(unique) > 0 && unique[len(unique)-1] == id {
			continue
		}
		unique = append(unique, id)
	}
	return unique
}

// Contains reports whether every id in ids is present.
func (s IDSlice) Contains(ids ...ID) bool {
	for _, id := range ids {
		i := sort.Search(len(s), func(i int) bool { return s[i] >= id })
		if i == len(s) || s[i] != id {
			return false
		}
	}
	return true
}

// Valid reports whether s is sorted and free of duplicates, and whether its
// IDs map to distinct non-zero inputs of group.
func (s IDSlice) Valid(group curve.Curve) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	_, err := Scalars(group, s)
	return err == nil
}

// Scalars returns the input of every id, in order. It fails if an input is
// zero or if two ids share an input, since either would leak the secret or
// hand the same share to two holders.
func Scalars(group curve.Curve, ids []ID) ([]curve.Scalar, error) {
	out := make([]curve.Scalar, len(ids))
	seen := make(map[string]ID, len(ids))
	for i, id := range ids {
		x := id.Scalar(group)
		if x.IsZero() {
			return nil, fmt.Errorf("%w: %q", ErrZeroInput, id)
		}
		data, err := x.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("party: failed to marshal input of %q: %w", id, err)
		}
		if other, ok := seen[string(data)]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrInputCollision, other, id)
		}
		seen[string(data)] = id
		out[i] = x
	}
	return out, nil
}

func (s IDSlice) Len() int           { return len(s) }
func (s IDSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s IDSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s IDSlice) String() string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
