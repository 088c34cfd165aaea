package goJWT

import (
	"errors"

	"github.com/MrEthical07/goJWT/base64url"
)

var (
	// ErrInvalidToken is returned when a token does not split into exactly three non-empty segments.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidBase64 is returned when a segment is not canonical unpadded base64url. It is
	// always wrapped together with the error for the segment that failed.
	ErrInvalidBase64 = base64url.ErrInvalid
	// ErrInvalidHeader is returned when the header segment is not a JSON object or its alg is missing or unknown.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrUnsupportedAlgorithm is returned for algorithm names the registry cannot sign or verify with.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	// ErrWrongAlgorithmHeader is returned when the header names a different algorithm than the caller requested.
	ErrWrongAlgorithmHeader = errors.New("wrong algorithm in header")
	// ErrInvalidSignature is returned when the signature segment does not authenticate the token.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrInvalidClaims is returned when claims cannot be marshalled, or the claims segment does not fit the requested type.
	ErrInvalidClaims = errors.New("invalid claims")
)
