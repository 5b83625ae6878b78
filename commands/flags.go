package commands

import (
	"message-board/internal"
	"message-board/services"
)

// Flags holds global flag values and the service shared by all commands.
type Flags struct {
	LogLevel string
	DataDir  string
	InMemory bool
	EnvFile  string

	Config  internal.Config
	Service services.IMessageService

	closeDB func() error
}
