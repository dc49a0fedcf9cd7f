//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used during development:
// - github.com/matryer/moq (service port mocks, committed as *_mock_test.go)
