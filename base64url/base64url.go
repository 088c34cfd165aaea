package base64url

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned by Decode for input that is not canonical unpadded base64url.
var ErrInvalid = errors.New("invalid base64url")

// strict never changes after initialization.
var strict = base64.RawURLEncoding.Strict()

// Encode returns the unpadded base64url form of src. Empty input encodes to "".
func Encode(src []byte) string {
	return strict.EncodeToString(src)
}

// Decode is the inverse of Encode.
//
// The stdlib decoder silently skips CR and LF, so they are rejected up front.
func Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line break in input", ErrInvalid)
	}
	raw, err := strict.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return raw, nil
}
