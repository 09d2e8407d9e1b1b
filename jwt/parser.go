package jwt

import (
	"strconv"
	"strings"
	"time"

	"github.com/effective-security/x/values"
	"github.com/effective-security/xjwt/metricskey"
	"github.com/effective-security/xlog"
)

// Decoder decodes JWT without signature verification.
// Decoder is safe for concurrent use.
type Decoder struct {
	maxTokenSize  int
	decodeSegment SegmentDecoder
}

var defaultDecoder = NewDecoder(nil)

// NewDecoder returns Decoder, nil config uses defaults
func NewDecoder(cfg *Config) *Decoder {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Decoder{
		maxTokenSize:  cfg.MaxTokenSize,
		decodeSegment: values.Select[SegmentDecoder](cfg.URLAlphabetOnly, DecodeURLSegment, DecodeSegment),
	}
}

// Decode returns the token decoded with default settings
func Decode(tokenString string) *Token {
	return defaultDecoder.Decode(tokenString)
}

// Decode splits the token and decodes header and payload.
// Decode never fails: segments that can not be decoded produce
// empty header or payload, and the claims are not set.
func (d *Decoder) Decode(tokenString string) *Token {
	token := &Token{
		raw:       tokenString,
		header:    map[string]Value{},
		claimsSet: map[string]Value{},
	}

	if d.maxTokenSize > 0 && len(tokenString) > d.maxTokenSize {
		d.degraded("token", "too_large", nil)
		return token
	}

	parts := strings.Split(tokenString, ".")
	defer metricskey.PerfTokenDecode.MeasureSince(time.Now(), strconv.Itoa(len(parts)))

	if len(parts) < 2 {
		d.degraded("token", "malformed", nil)
		return token
	}

	token.header = d.object("header", parts[0])
	token.algorithm = optString(token.header, HeaderAlgorithm)
	token.typ = optString(token.header, HeaderType)
	token.contentType = optString(token.header, HeaderContentType)

	token.claimsSet = d.object("payload", parts[1])
	var rest map[string]Value
	token.claims, rest = splitClaims(token.claimsSet)
	token.payload = Payload{raw: rest}

	if len(parts) > 2 {
		token.signature = parts[2]
	}
	return token
}

// object decodes a segment as JSON object, or returns empty map
func (d *Decoder) object(name, seg string) map[string]Value {
	raw, err := d.decodeSegment(seg)
	if err != nil {
		d.degraded(name, "base64", err)
		return map[string]Value{}
	}
	m, err := parseObject(raw)
	if err != nil {
		d.degraded(name, "json", err)
		return map[string]Value{}
	}
	return m
}

func (d *Decoder) degraded(segment, reason string, err error) {
	metricskey.StatsSegmentDegraded.IncrCounter(1, segment, reason)
	if err != nil {
		logger.KV(xlog.DEBUG, "segment", segment, "reason", reason, "err", err.Error())
	} else {
		logger.KV(xlog.DEBUG, "segment", segment, "reason", reason)
	}
}
