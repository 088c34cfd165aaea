package goJWT

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const defaultType = "JWT"

// Header is the JOSE header of a compact JWT.
//
// It serializes as {"alg":...,"typ":...} followed by "kid" when KeyID is set. Header values are
// plain data; once a token is encoded the header it carries cannot change.
type Header struct {
	Algorithm Algorithm
	Type      string
	// KeyID is omitted from the wire when empty.
	KeyID string
}

// DefaultHeader returns an HS256 header with type "JWT" and no key id.
func DefaultHeader() Header {
	return NewHeader(HS256)
}

// NewHeader returns a header for alg with type "JWT" and no key id.
func NewHeader(alg Algorithm) Header {
	return Header{Algorithm: alg, Type: defaultType}
}

// wireHeader fixes the canonical field order.
type wireHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
	Kid string `json:"kid,omitempty"`
}

// MarshalJSON implements json.Marshaler with the canonical field order. Encode signs exactly
// these bytes, which leave HTML characters unescaped; json.Marshal re-compacts the result and
// escapes <, > and & in string values.
func (h Header) MarshalJSON() ([]byte, error) {
	return marshalCanonical(wireHeader{
		Alg: string(h.Algorithm),
		Typ: h.Type,
		Kid: h.KeyID,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Field order is irrelevant and unknown fields are
// ignored, but the input must be an object whose "alg" is a supported algorithm name. Keys
// match exactly, so "ALG" is an unknown field, and a repeated key is rejected.
func (h *Header) UnmarshalJSON(data []byte) error {
	if !isJSONObject(data) {
		return fmt.Errorf("%w: not a JSON object", ErrInvalidHeader)
	}

	fields, err := objectFields(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	rawAlg, ok := fields["alg"]
	if !ok || bytes.Equal(rawAlg, []byte("null")) {
		return fmt.Errorf("%w: missing alg", ErrInvalidHeader)
	}
	var name string
	if err := json.Unmarshal(rawAlg, &name); err != nil {
		return fmt.Errorf("%w: alg: %w", ErrInvalidHeader, err)
	}
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	var typ, kid string
	if raw, ok := fields["typ"]; ok {
		if err := json.Unmarshal(raw, &typ); err != nil {
			return fmt.Errorf("%w: typ: %w", ErrInvalidHeader, err)
		}
	}
	if raw, ok := fields["kid"]; ok {
		if err := json.Unmarshal(raw, &kid); err != nil {
			return fmt.Errorf("%w: kid: %w", ErrInvalidHeader, err)
		}
	}

	*h = Header{Algorithm: alg, Type: typ, KeyID: kid}
	return nil
}

// objectFields splits a single JSON object into its members keyed by exact name. Duplicate
// keys and any bytes after the closing brace are errors.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		fields[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after object")
	}
	return fields, nil
}
