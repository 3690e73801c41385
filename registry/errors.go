// SPDX-License-Identifier: MIT
// Package: graymap/registry
//
// errors.go — sentinel errors for the registry package.
//
// Error policy:
//   • Build surfaces bitperm.ErrInvalidOrder, symmetry.ErrGeometryLengthMismatch
//     and symmetry.ErrNonBijectiveMapping unchanged (wrapped with %w).
//   • Lookups return ErrNotFound; it is an expected outcome, not a failure
//     of the registry.

package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no variant matches the lookup key.
var ErrNotFound = errors.New("registry: variant not found")

// ErrNilBase indicates Build was called with a nil base constellation.
var ErrNilBase = errors.New("registry: base constellation is nil")

// ErrDuplicateName indicates two variants resolved to the same lookup key.
// Like ErrNonBijectiveMapping it signals a defect, not bad input.
var ErrDuplicateName = errors.New("registry: duplicate variant name")

// ErrIndexMismatch indicates that a transform's resolved index disagrees with
// its position in the enumeration. It is an internal invariant violation.
var ErrIndexMismatch = errors.New("registry: variant index does not match enumeration order")

// Method names used as error prefixes.
const (
	MethodBuild       = "Build"
	MethodByIndex     = "ByIndex"
	MethodByName      = "ByName"
	MethodByTransform = "ByTransform"
)

// registryErrorf wraps err with "<method>: <message>: ".
func registryErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
