package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	requestIDSize  = 16
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RequestID generates a short opaque id used to correlate log lines for a
// single HTTP request.
func RequestID() string {
	return gonanoid.MustGenerate(nanoidAlphabet, requestIDSize)
}
