//go:build tools

package tools

// Mocks under pkg/discovery/mocks are generated by mockery (see .mockery.yaml).
// Run: go run github.com/vektra/mockery/v2
import (
	_ "github.com/vektra/mockery/v2"
)
