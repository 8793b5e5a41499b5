// ABOUTME: Base64 payload decoder
// ABOUTME: Turns the speech API's base64 audio payload into raw PCM bytes
package decode

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when a payload is not valid standard base64
var ErrInvalidEncoding = errors.New("invalid base64 encoding")

// Base64 decodes a standard (padded) base64 payload into raw bytes.
// On failure no bytes are returned.
func Base64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}
