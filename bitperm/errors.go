// SPDX-License-Identifier: MIT
// Package: graymap/bitperm
//
// errors.go — sentinel errors for the bitperm package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the return site with wrapf (method prefix + %w).
//   • Nothing in this package panics on caller input.

package bitperm

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder indicates a bit width outside [MinBitWidth, MaxBitWidth].
// Classification: caller error; never recovered by retrying.
var ErrInvalidOrder = errors.New("bitperm: invalid bit width")

// ErrInvalidPermutation indicates that a Perm is not a bijection on
// {0..n-1}: wrong length, a target out of range, or a repeated target.
var ErrInvalidPermutation = errors.New("bitperm: invalid permutation")

// Method names used as error prefixes.
const (
	methodPermutations = "Permutations"
	methodMasks        = "Masks"
	methodRank         = "Rank"
	methodUnrank       = "Unrank"
	methodValidate     = "Validate"
)

// wrapf returns "<method>: <message>: <sentinel>" keeping err matchable by errors.Is.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
