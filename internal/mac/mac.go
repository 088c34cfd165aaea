package mac

import (
	"crypto/hmac"
	"hash"
)

// Sum returns HMAC(key, message) under newHash. The result depends only on its inputs.
func Sum(newHash func() hash.Hash, key, message []byte) []byte {
	h := hmac.New(newHash, key)
	// hash.Hash.Write never returns an error.
	_, _ = h.Write(message)
	return h.Sum(nil)
}

// Equal reports whether two MACs match. Comparison time does not depend on where the
// inputs differ.
func Equal(expected, actual []byte) bool {
	return hmac.Equal(expected, actual)
}

// Verify recomputes the MAC of message and compares it to signature in constant time.
func Verify(newHash func() hash.Hash, key, message, signature []byte) bool {
	return Equal(Sum(newHash, key, message), signature)
}
