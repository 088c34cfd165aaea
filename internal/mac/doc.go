// Package mac holds the byte-level HMAC primitives shared by signing and verification.
//
// Callers choose the hash; this package knows nothing about algorithm names or JWT framing.
package mac
