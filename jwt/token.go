package jwt

import (
	"fmt"
	"strings"
	"time"
)

// Token for JWT.
// Token is immutable, all getters return copies.
type Token struct {
	raw       string           // the raw token
	header    map[string]Value // the first segment of the token
	claimsSet map[string]Value // the second segment of the token
	payload   Payload          // the second segment without registered claims
	signature string           // the third segment of the token

	claims      claims
	algorithm   *string
	typ         *string
	contentType *string
}

// Raw returns the string the token was decoded from
func (t *Token) Raw() string {
	return t.raw
}

// Header returns a copy of the decoded header,
// registered header parameters are included
func (t *Token) Header() map[string]Value {
	return cloneMembers(t.header)
}

// HeaderValue returns a header parameter
func (t *Token) HeaderValue(k string) (Value, bool) {
	v, ok := t.header[k]
	if !ok {
		return Value{}, false
	}
	return v.clone(), true
}

// Payload returns the members of the payload that are not registered claims
func (t *Token) Payload() Payload {
	return t.payload
}

// Signature returns the third segment as is
func (t *Token) Signature() string {
	return t.signature
}

// Issuer returns "iss" claim, RFC 7519 section 4.1.1
func (t *Token) Issuer() (string, bool) {
	return copyString(t.claims.issuer)
}

// Subject returns "sub" claim, RFC 7519 section 4.1.2
func (t *Token) Subject() (string, bool) {
	return copyString(t.claims.subject)
}

// Audience returns "aud" claim, RFC 7519 section 4.1.3,
// only when the claim is a single string
func (t *Token) Audience() (string, bool) {
	return copyString(t.claims.audience)
}

// Audiences returns "aud" claim, either a single string or an array of strings
func (t *Token) Audiences() []string {
	if len(t.claims.audiences) == 0 {
		return nil
	}
	return append([]string(nil), t.claims.audiences...)
}

// ExpiresAt returns "exp" claim, RFC 7519 section 4.1.4
func (t *Token) ExpiresAt() *time.Time {
	return copyTime(t.claims.expiresAt)
}

// NotBefore returns "nbf" claim, RFC 7519 section 4.1.5
func (t *Token) NotBefore() *time.Time {
	return copyTime(t.claims.notBefore)
}

// IssuedAt returns "iat" claim, RFC 7519 section 4.1.6
func (t *Token) IssuedAt() *time.Time {
	return copyTime(t.claims.issuedAt)
}

// ID returns "jti" claim, RFC 7519 section 4.1.7
func (t *Token) ID() (string, bool) {
	return copyString(t.claims.id)
}

// Algorithm returns "alg" header parameter
func (t *Token) Algorithm() (string, bool) {
	return copyString(t.algorithm)
}

// Type returns "typ" header parameter, RFC 7519 section 5.1
func (t *Token) Type() (string, bool) {
	return copyString(t.typ)
}

// ContentType returns "cty" header parameter, RFC 7519 section 5.2
func (t *Token) ContentType() (string, bool) {
	return copyString(t.contentType)
}

// IsExpired returns true if the token has "exp" claim in the past
func (t *Token) IsExpired() bool {
	return t.ExpiredAt(time.Now())
}

// ExpiredAt returns true if the token has "exp" claim before now
func (t *Token) ExpiredAt(now time.Time) bool {
	return t.claims.expiresAt != nil && t.claims.expiresAt.Before(now)
}

// Equal returns true if both tokens were decoded from the same string
func (t *Token) Equal(o *Token) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.raw == o.raw
}

// String returns human readable description of the token
func (t *Token) String() string {
	return t.describe([]string{
		"expiresAt", "issuedAt", "notBefore", "issuer", "subject", "audience", "id",
	})
}

// GoString returns description of the token with claim names
func (t *Token) GoString() string {
	return t.describe([]string{
		ClaimExpiration, ClaimIssuedAt, ClaimNotBefore, ClaimIssuer, ClaimSubject, ClaimAudience, ClaimID,
	})
}

func (t *Token) describe(labels []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "header: %s\n", ObjectValue(t.header).String())
	fmt.Fprintf(&b, "payload: %s\n", t.payload.Marshal())
	fmt.Fprintf(&b, "signature: %s\n", t.signature)

	c := t.claims
	vals := []string{
		describeTime(c.expiresAt),
		describeTime(c.issuedAt),
		describeTime(c.notBefore),
		describeString(c.issuer),
		describeString(c.subject),
		describeString(c.audience),
		describeString(c.id),
	}
	for idx, label := range labels {
		fmt.Fprintf(&b, "%s: %s\n", label, vals[idx])
	}
	return b.String()
}

func describeTime(t *time.Time) string {
	if t == nil {
		return "nil"
	}
	return t.Format(time.RFC3339Nano)
}

func describeString(s *string) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%q", *s)
}
