package goJWT

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHeader(t *testing.T) {
	t.Parallel()

	h := DefaultHeader()
	assert.Equal(t, HS256, h.Algorithm)
	assert.Equal(t, "JWT", h.Type)
	assert.Empty(t, h.KeyID)

	assert.Equal(t, Header{Algorithm: HS512, Type: "JWT"}, NewHeader(HS512))
}

func TestHeaderMarshalIsCanonical(t *testing.T) {
	t.Parallel()

	raw, err := DefaultHeader().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"alg":"HS256","typ":"JWT"}`, string(raw))

	h := NewHeader(HS384)
	h.KeyID = "k1"
	raw, err = h.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"alg":"HS384","typ":"JWT","kid":"k1"}`, string(raw))

	h.KeyID = "<a&b>"
	raw, err = h.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"alg":"HS384","typ":"JWT","kid":"<a&b>"}`, string(raw))

	// json.Marshal escapes HTML in the method's output; Encode signs the method's bytes.
	raw, err = json.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, `{"alg":"HS384","typ":"JWT","kid":"\u003ca\u0026b\u003e"}`, string(raw))
}

func TestHeaderUnmarshalToleratesOrderAndUnknownFields(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`{"alg":"HS256","typ":"JWT","kid":"k"}`,
		`{"kid":"k","typ":"JWT","alg":"HS256"}`,
		`{"typ":"JWT","x5u":"https://example.com","kid":"k","alg":"HS256","cty":"JWT"}`,
		" \n{\"typ\":\"JWT\",\"alg\":\"HS256\",\"kid\":\"k\"}",
	}
	want := Header{Algorithm: HS256, Type: "JWT", KeyID: "k"}
	for _, in := range inputs {
		var h Header
		require.NoError(t, h.UnmarshalJSON([]byte(in)), in)
		assert.Equal(t, want, h, in)
	}
}

func TestHeaderUnmarshalMatchesKeysExactly(t *testing.T) {
	t.Parallel()

	var h Header
	require.NoError(t, h.UnmarshalJSON([]byte(`{"alg":"HS384","TYP":"at+jwt","Kid":"x","typ":"JWT"}`)))
	assert.Equal(t, Header{Algorithm: HS384, Type: "JWT"}, h)

	require.NoError(t, h.UnmarshalJSON([]byte(`{"alg":"HS256","typ":null}`)))
	assert.Equal(t, Header{Algorithm: HS256}, h)
}

func TestHeaderUnmarshalWithoutTypeOrKeyID(t *testing.T) {
	t.Parallel()

	var h Header
	require.NoError(t, h.UnmarshalJSON([]byte(`{"alg":"HS512"}`)))
	assert.Equal(t, Header{Algorithm: HS512}, h)
}

func TestHeaderUnmarshalRejectsInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"array":             `["HS256"]`,
		"string":            `"HS256"`,
		"null":              `null`,
		"empty":             ``,
		"truncated":         `{"alg":"HS256"`,
		"missing alg":       `{"typ":"JWT"}`,
		"null alg":          `{"alg":null,"typ":"JWT"}`,
		"numeric alg":       `{"alg":256}`,
		"numeric typ":       `{"alg":"HS256","typ":1}`,
		"lowercase alg":     `{"alg":"hs256"}`,
		"none alg":          `{"alg":"none"}`,
		"trailing bytes":    `{"alg":"HS256"} {}`,
		"uppercase alg key": `{"ALG":"HS256","typ":"JWT"}`,
		"titlecase alg key": `{"Alg":"HS256"}`,
		"duplicate alg":     `{"alg":"HS512","alg":"HS256"}`,
		"escaped duplicate": `{"alg":"HS256","\u0061lg":"HS256"}`,
		"duplicate kid":     `{"alg":"HS256","kid":"a","kid":"b"}`,
		"numeric kid":       `{"alg":"HS256","kid":7}`,
	}
	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var h Header
			err := h.UnmarshalJSON([]byte(in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHeader)
		})
	}
}

func TestHeaderUnmarshalUnknownAlgorithmWrapsBoth(t *testing.T) {
	t.Parallel()

	var h Header
	err := h.UnmarshalJSON([]byte(`{"alg":"RS256","typ":"JWT"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestHeaderRoundTripsThroughEncodingJSON(t *testing.T) {
	t.Parallel()

	in := Header{Algorithm: HS512, Type: "JWT", KeyID: "key-2"}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Header
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
