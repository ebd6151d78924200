package snlist

import (
	"github.com/rs/zerolog"
)

type Configuration[T any] struct {
	logger zerolog.Logger
}

// Creates a configuration with silent diagnostics
func Configure[T any]() *Configuration[T] {
	return &Configuration[T]{
		logger: zerolog.Nop(),
	}
}

// Logger sets the logger that receives the list's diagnostic events: a
// warning when the predecessor scan runs against an empty list, an error
// when a remove misses, an info event when a remove relinks the chain.
// Without a logger every event is discarded.
func (c *Configuration[T]) Logger(logger zerolog.Logger) *Configuration[T] {
	c.logger = logger
	return c
}
