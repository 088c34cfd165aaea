package goJWT

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MrEthical07/goJWT/base64url"
)

// MapClaims is an untyped claims payload, for callers without a claims struct.
type MapClaims = map[string]any

// Secret is the set of key types accepted for signing and verification. Text and raw bytes
// are used identically as MAC key bytes.
type Secret interface {
	~string | ~[]byte
}

// TokenData is a verified token: its header and the claims decoded into T.
type TokenData[T any] struct {
	Header Header
	Claims T
}

func marshalCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func isJSONObject(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func encodeClaims(claims any) (string, error) {
	raw, err := marshalCanonical(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	if !isJSONObject(raw) {
		return "", fmt.Errorf("%w: claims must marshal to a JSON object", ErrInvalidClaims)
	}
	return base64url.Encode(raw), nil
}

func decodeClaims[T any](segment string) (T, error) {
	var claims T

	raw, err := base64url.Decode(segment)
	if err != nil {
		return claims, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	if !isJSONObject(raw) {
		return claims, fmt.Errorf("%w: not a JSON object", ErrInvalidClaims)
	}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return claims, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
	return claims, nil
}
