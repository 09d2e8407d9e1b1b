package jwt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// SegmentDecoder decodes a single JWT segment
type SegmentDecoder func(seg string) ([]byte, error)

var urlToStd = strings.NewReplacer("-", "+", "_", "/")

// urlOnlyParser restores padding the same way as DecodeSegment,
// but accepts only the URL alphabet
var urlOnlyParser = gojwt.NewParser(gojwt.WithPaddingAllowed())

// DecodeSegment decodes JWT specific base64url encoding with padding stripped.
// Stripped padding is restored, and characters of the standard base64 alphabet
// are accepted as well.
func DecodeSegment(seg string) ([]byte, error) {
	// base64 decoder skips line breaks, the segment must not contain them
	if strings.ContainsAny(seg, "\r\n") {
		return nil, errors.Errorf("invalid character in segment")
	}
	if rem := len(seg) % 4; rem > 0 {
		seg += strings.Repeat("=", 4-rem)
	}
	raw, err := base64.StdEncoding.DecodeString(urlToStd.Replace(seg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode segment")
	}
	return raw, nil
}

// DecodeURLSegment decodes a segment that uses only the base64url alphabet
func DecodeURLSegment(seg string) ([]byte, error) {
	if strings.ContainsAny(seg, "\r\n") {
		return nil, errors.Errorf("invalid character in segment")
	}
	raw, err := urlOnlyParser.DecodeSegment(seg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode segment")
	}
	return raw, nil
}

// EncodeSegment returns JWT specific base64url encoding with padding stripped
func EncodeSegment(seg []byte) string {
	return base64.RawURLEncoding.EncodeToString(seg)
}

// parseObject parses a decoded segment as JSON object
func parseObject(raw []byte) (map[string]Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Errorf("unexpected data after JSON object")
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Errorf("segment is not a JSON object: %T", v)
	}

	val, err := valueOf(m)
	if err != nil {
		return nil, err
	}
	return val.obj, nil
}
