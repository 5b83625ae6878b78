//go:build tools
// +build tools

// Package tools tracks Go tools invoked through `go generate` (mockgen) as
// module dependencies, so mocks can be regenerated from a fresh checkout.
package message_board

import (
	_ "go.uber.org/mock/mockgen"
)
