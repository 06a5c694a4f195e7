//go:build tools

// Package tools pins code generators so go.mod tracks their versions.
// The mocks in internal/mocks are regenerated with:
//
//	go generate ./internal/mocks
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
