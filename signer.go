package goJWT

import (
	"github.com/MrEthical07/goJWT/base64url"
	"github.com/MrEthical07/goJWT/internal/mac"
)

// SignBytes computes the MAC of message under secret with alg. The same inputs always
// produce the same output.
//
// SignBytes returns ErrUnsupportedAlgorithm when alg cannot sign.
func SignBytes[K Secret](message []byte, secret K, alg Algorithm) ([]byte, error) {
	newHash, err := alg.hash()
	if err != nil {
		return nil, err
	}
	return mac.Sum(newHash, []byte(secret), message), nil
}

// VerifyBytes recomputes the MAC of message and compares it with signature in constant time.
// It reports false when alg cannot verify.
func VerifyBytes[K Secret](signature, message []byte, secret K, alg Algorithm) bool {
	newHash, err := alg.hash()
	if err != nil {
		return false
	}
	return mac.Verify(newHash, []byte(secret), message, signature)
}

// Sign returns the base64url MAC of message, for signing arbitrary strings outside of JWT
// framing.
func Sign[K Secret](message string, secret K, alg Algorithm) (string, error) {
	sig, err := SignBytes([]byte(message), secret, alg)
	if err != nil {
		return "", err
	}
	return base64url.Encode(sig), nil
}

// Verify checks a signature produced by Sign. It reports false for a signature that is not
// canonical base64url, for an algorithm that cannot verify, and for a mismatch.
func Verify[K Secret](signature, message string, secret K, alg Algorithm) bool {
	sig, err := base64url.Decode(signature)
	if err != nil {
		return false
	}
	return VerifyBytes(sig, []byte(message), secret, alg)
}
