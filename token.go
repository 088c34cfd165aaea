package goJWT

import (
	"fmt"
	"strings"

	"github.com/MrEthical07/goJWT/base64url"
	"github.com/MrEthical07/goJWT/internal/mac"
)

// tokenSegments is the number of dot-separated segments in a compact JWT.
const tokenSegments = 3

// Encode describes the encode operation and its observable behavior.
//
// Encode serializes header and claims, frames both as base64url, and signs
// "header.claims" with the algorithm named by the header. The result is the compact
// "header.claims.signature" string.
//
// Encode may return ErrUnsupportedAlgorithm when the header names an algorithm that cannot
// sign, or ErrInvalidClaims when claims do not marshal to a JSON object.
// Encode does not mutate shared global state and can be used concurrently.
func Encode[K Secret](header Header, claims any, secret K) (string, error) {
	newHash, err := header.Algorithm.hash()
	if err != nil {
		return "", err
	}

	rawHeader, err := header.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}
	encodedClaims, err := encodeClaims(claims)
	if err != nil {
		return "", err
	}

	signingInput := base64url.Encode(rawHeader) + "." + encodedClaims
	sig := mac.Sum(newHash, []byte(secret), []byte(signingInput))

	return signingInput + "." + base64url.Encode(sig), nil
}

// Decode describes the decode operation and its observable behavior.
//
// Decode checks, in order: that token has three non-empty segments (ErrInvalidToken), that
// the header parses (ErrInvalidHeader), that the header names alg (ErrWrongAlgorithmHeader),
// that the signature authenticates the raw header and claims segments
// (ErrInvalidSignature), and finally that the claims decode into T (ErrInvalidClaims).
// Claims are never read before the signature is verified, and the signature is never
// checked with an algorithm the caller did not request.
//
// Header keys match exactly. Claims decode with encoding/json rules, so for a struct T a
// claim key such as "SUB" fills the field tagged "sub"; decode into MapClaims to see keys
// verbatim.
//
// Decode does not mutate shared global state and can be used concurrently.
func Decode[T any, K Secret](token string, secret K, alg Algorithm) (*TokenData[T], error) {
	segments, err := splitToken(token)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(segments[0])
	if err != nil {
		return nil, err
	}
	if header.Algorithm != alg {
		return nil, fmt.Errorf("%w: token uses %q, expected %q", ErrWrongAlgorithmHeader, header.Algorithm, alg)
	}

	signingInput := token[:len(segments[0])+1+len(segments[1])]
	if err := verifySignature(signingInput, segments[2], []byte(secret), alg); err != nil {
		return nil, err
	}

	claims, err := decodeClaims[T](segments[1])
	if err != nil {
		return nil, err
	}

	return &TokenData[T]{Header: header, Claims: claims}, nil
}

// DecodeHeader returns the header of a structurally valid token WITHOUT verifying its
// signature. Use it to pick a key by KeyID, then call Decode; never trust the result alone.
func DecodeHeader(token string) (Header, error) {
	segments, err := splitToken(token)
	if err != nil {
		return Header{}, err
	}
	return parseHeader(segments[0])
}

func splitToken(token string) ([]string, error) {
	segments := strings.Split(token, ".")
	if len(segments) != tokenSegments {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrInvalidToken, tokenSegments, len(segments))
	}
	for i, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: segment %d is empty", ErrInvalidToken, i+1)
		}
	}
	return segments, nil
}

func parseHeader(segment string) (Header, error) {
	raw, err := base64url.Decode(segment)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	// Called directly so syntax errors are wrapped as ErrInvalidHeader too.
	var h Header
	if err := h.UnmarshalJSON(raw); err != nil {
		return Header{}, err
	}
	return h, nil
}

func verifySignature(signingInput, segment string, secret []byte, alg Algorithm) error {
	newHash, err := alg.hash()
	if err != nil {
		return err
	}
	sig, err := base64url.Decode(segment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if !mac.Verify(newHash, secret, []byte(signingInput), sig) {
		return ErrInvalidSignature
	}
	return nil
}
