// SPDX-License-Identifier: MIT
// Package: graymap/symmetry
//
// errors.go — sentinel errors for the symmetry package.
//
// Error policy:
//   • Callers MUST branch with errors.Is; messages are not part of the contract.
//   • ErrNonBijectiveMapping marks a broken invariant: treat it as fatal, do
//     not retry and do not drop the offending variant.

package symmetry

import (
	"errors"
	"fmt"
)

// ErrGeometryLengthMismatch indicates a symbol list whose length is not 2^n
// for the transform's bit width n.
var ErrGeometryLengthMismatch = errors.New("symmetry: symbol list length mismatch")

// ErrNonBijectiveMapping indicates a labeling that is not a permutation of
// {0..len-1} (missing, duplicated, or out-of-range symbol).
var ErrNonBijectiveMapping = errors.New("symmetry: mapping is not bijective")

// ErrInvalidTransform indicates a mask outside [0, 2^n) or a malformed permutation.
var ErrInvalidTransform = errors.New("symmetry: invalid transform")

const (
	methodApply     = "Apply"
	methodEnumerate = "Enumerate"
	methodValidate  = "ValidateBijection"
	methodTransform = "Transform.Validate"
)

func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
