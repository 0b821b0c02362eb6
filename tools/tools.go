//go:build tools

// Package tools records the build-time dependencies of the module.
package tools

// These imports ensure that "go mod tidy" won't remove deps
// for code generators.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
