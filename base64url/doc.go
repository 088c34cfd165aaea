// Package base64url implements the unpadded, URL-safe base64 alphabet used by every segment
// of a compact JWT.
//
// # Strictness
//
// [Decode] accepts exactly what [Encode] can produce: characters from A-Z, a-z, 0-9, '-' and
// '_', no padding, no line breaks, and zero trailing bits in the final character. Anything
// else is rejected with [ErrInvalid], so a token segment has a single valid spelling.
//
// # What this package must NOT do
//
//   - Import goJWT (no upward imports).
//   - Accept padded or standard-alphabet input as a convenience.
package base64url
