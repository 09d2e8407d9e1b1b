package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSegment(t *testing.T) {
	tcases := []struct {
		seg string
		exp string
		err string
	}{
		{seg: "eyJhIjoxfQ", exp: `{"a":1}`},
		{seg: "eyJhIjoxfQ==", exp: `{"a":1}`},
		{seg: "eyJhIjoxfQ=", exp: `{"a":1}`},
		{seg: "eyJhIjoifn5-In0", exp: `{"a":"~~~"}`},
		{seg: "eyJhIjoifn5+In0", exp: `{"a":"~~~"}`},
		{seg: "eyJ4IjoiPj4-PyJ9", exp: `{"x":">>>?"}`},
		{seg: "", exp: ""},
		{seg: "a", err: "failed to decode segment: illegal base64 data at input byte 1"},
		{seg: "!!!", err: "failed to decode segment: illegal base64 data at input byte 0"},
		{seg: "eyJhIjox\nfQ", err: "invalid character in segment"},
		{seg: "eyJhIjox\rfQ", err: "invalid character in segment"},
		{seg: "eyJh Ijox", err: "failed to decode segment: illegal base64 data at input byte 4"},
	}
	for _, tc := range tcases {
		raw, err := DecodeSegment(tc.seg)
		if tc.err != "" {
			assert.EqualError(t, err, tc.err, "%q", tc.seg)
			assert.Nil(t, raw)
		} else {
			require.NoError(t, err, "%q", tc.seg)
			assert.Equal(t, tc.exp, string(raw))
		}
	}
}

func TestDecodeURLSegment(t *testing.T) {
	raw, err := DecodeURLSegment("eyJhIjoifn5-In0")
	require.NoError(t, err)
	assert.Equal(t, `{"a":"~~~"}`, string(raw))

	raw, err = DecodeURLSegment("eyJhIjoxfQ")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(raw))

	_, err = DecodeURLSegment("eyJhIjoifn5+In0")
	require.Error(t, err)

	_, err = DecodeURLSegment("eyJhIjox\nfQ")
	assert.EqualError(t, err, "invalid character in segment")
}

func TestEncodeSegment(t *testing.T) {
	for _, s := range []string{`{"a":1}`, `{"a":"~~~"}`, `{"x":">>>?"}`, ""} {
		seg := EncodeSegment([]byte(s))
		assert.NotContains(t, seg, "=")
		raw, err := DecodeSegment(seg)
		require.NoError(t, err)
		assert.Equal(t, s, string(raw))
	}
}

func TestParseObject(t *testing.T) {
	m, err := parseObject([]byte(`{"s":"str","i":12,"f":1.75,"b":true,"n":null,"a":[1,"x"],"o":{"k":"v"}}`))
	require.NoError(t, err)
	require.Len(t, m, 7)
	assert.Equal(t, KindString, m["s"].Kind())
	assert.Equal(t, KindInteger, m["i"].Kind())
	assert.Equal(t, KindFloat, m["f"].Kind())
	assert.Equal(t, KindBool, m["b"].Kind())
	assert.Equal(t, KindNull, m["n"].Kind())
	assert.Equal(t, KindArray, m["a"].Kind())
	assert.Equal(t, KindObject, m["o"].Kind())

	m, err = parseObject([]byte(" {} \n"))
	require.NoError(t, err)
	assert.Empty(t, m)

	for _, raw := range []string{
		``,
		`[1,2]`,
		`"str"`,
		`12`,
		`null`,
		`{"a":1} x`,
		`{"a":1}{"b":2}`,
		`{"a":}`,
	} {
		_, err = parseObject([]byte(raw))
		assert.Error(t, err, raw)
	}
}
