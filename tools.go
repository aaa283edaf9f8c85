//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (hand-maintained *_mock_test.go style)
// - github.com/pressly/goose/v3/cmd/goose (migrations/ outside AutoMigrate)
