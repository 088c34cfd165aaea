// Package goJWT encodes and decodes HMAC-signed JSON Web Tokens in compact serialization.
//
// A token is three unpadded base64url segments joined by dots: the JSON header, the JSON
// claims, and the MAC of the first two segments exactly as they appear on the wire. HS256,
// HS384 and HS512 are supported; RS* and ES* names are recognized and rejected.
//
// # Decode order
//
// [Decode] checks structure, then the header, then that the header names the algorithm the
// caller asked for, then the signature, and only then reads the claims. The algorithm check
// precedes any cryptographic work so a rewritten header can never select the verification
// algorithm. Every failure is a sentinel from errors.go, matched with errors.Is.
//
// # Architecture boundaries
//
// goJWT is the public surface: [Encode], [Decode], [DecodeHeader], [Sign], [Verify] and the
// [Header], [Algorithm] and [TokenData] value types. Base64url framing lives in base64url and
// the raw MAC primitives in internal/mac.
//
// # What this package must NOT do
//
//   - Hold package-level mutable state, cache keys, or keep a secret past the call it was
//     passed to.
//   - Interpret claim values (exp, nbf, iss, ...). Claims are opaque JSON objects.
//   - Log, retry, or fall back to another algorithm on failure.
//   - Compare MACs with anything but a constant-time comparison.
//
// # Concurrency
//
// Every function is a pure function of its arguments and is safe to call from any number of
// goroutines without coordination.
package goJWT
