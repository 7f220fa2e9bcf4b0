package testutil

import (
	"bytes"

	"github.com/rs/zerolog"
)

// NewBufferLogger returns a zerolog logger backed by a buffer and the buffer
// for assertions.
func NewBufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return logger, &buf
}
