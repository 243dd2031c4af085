//go:build !manifold

// Package manifold provides a CGo-based geometry kernel binding to the
// Manifold library. When the "manifold" build tag is not set, this stub
// package is compiled instead; New reports the kernel as unavailable and
// callers fall back to the sdfx backend.
//
// Build with: go build -tags=manifold
package manifold

import (
	"errors"

	"github.com/chazu/gable/pkg/kernel"
)

// New returns an error indicating Manifold is not built in. Rebuild with
// -tags=manifold (requires the manifoldc library) to enable it.
func New() (kernel.Kernel, error) {
	return nil, errors.New("manifold kernel not built in: rebuild with -tags=manifold")
}
