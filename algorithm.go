package goJWT

import (
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"
	"hash"

	"github.com/golang-jwt/jwt/v5"
)

// Algorithm names a JWS signing algorithm as it appears in the "alg" header field.
//
// Only the HMAC family can sign and verify. The RSA and ECDSA names are recognized so they can
// be reported precisely, but every operation rejects them with [ErrUnsupportedAlgorithm].
type Algorithm string

const (
	// HS256 is HMAC with SHA-256.
	HS256 Algorithm = "HS256"
	// HS384 is HMAC with SHA-384.
	HS384 Algorithm = "HS384"
	// HS512 is HMAC with SHA-512.
	HS512 Algorithm = "HS512"

	// RS256 is reserved and unsupported.
	RS256 Algorithm = "RS256"
	// RS384 is reserved and unsupported.
	RS384 Algorithm = "RS384"
	// RS512 is reserved and unsupported.
	RS512 Algorithm = "RS512"
	// ES256 is reserved and unsupported.
	ES256 Algorithm = "ES256"
	// ES384 is reserved and unsupported.
	ES384 Algorithm = "ES384"
	// ES512 is reserved and unsupported.
	ES512 Algorithm = "ES512"
)

// ParseAlgorithm maps a header name to a supported Algorithm. Matching is exact and
// case-sensitive. Unknown names, "none", and the reserved asymmetric names all fail with
// ErrUnsupportedAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(name)
	if !alg.Supported() {
		if alg.Reserved() {
			return "", fmt.Errorf("%w: %q is not implemented", ErrUnsupportedAlgorithm, name)
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return alg, nil
}

// Supported reports whether a can sign and verify.
func (a Algorithm) Supported() bool {
	_, ok := a.method()
	return ok
}

// Reserved reports whether a is a known asymmetric name this package does not implement.
func (a Algorithm) Reserved() bool {
	switch a {
	case RS256, RS384, RS512, ES256, ES384, ES512:
		return true
	default:
		return false
	}
}

func (a Algorithm) String() string {
	return string(a)
}

func (a Algorithm) method() (*jwt.SigningMethodHMAC, bool) {
	switch a {
	case HS256:
		return jwt.SigningMethodHS256, true
	case HS384:
		return jwt.SigningMethodHS384, true
	case HS512:
		return jwt.SigningMethodHS512, true
	default:
		return nil, false
	}
}

// hash resolves the MAC hash constructor for a.
func (a Algorithm) hash() (func() hash.Hash, error) {
	m, ok := a.method()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
	if !m.Hash.Available() {
		return nil, fmt.Errorf("%w: hash for %s not linked", ErrUnsupportedAlgorithm, a)
	}
	return m.Hash.New, nil
}
