package jwt

import (
	"math"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Registered claim names, RFC 7519 section 4.1
const (
	ClaimIssuer     = "iss"
	ClaimSubject    = "sub"
	ClaimAudience   = "aud"
	ClaimExpiration = "exp"
	ClaimNotBefore  = "nbf"
	ClaimIssuedAt   = "iat"
	ClaimID         = "jti"
)

// Registered header parameter names, RFC 7515 section 4.1 and RFC 7519 section 5
const (
	HeaderAlgorithm   = "alg"
	HeaderType        = "typ"
	HeaderContentType = "cty"
)

// RegisteredClaimNames lists the claim names that are removed from Payload
var RegisteredClaimNames = []string{
	ClaimIssuer,
	ClaimSubject,
	ClaimAudience,
	ClaimExpiration,
	ClaimNotBefore,
	ClaimIssuedAt,
	ClaimID,
}

func isRegisteredClaim(k string) bool {
	switch k {
	case ClaimIssuer, ClaimSubject, ClaimAudience, ClaimExpiration,
		ClaimNotBefore, ClaimIssuedAt, ClaimID:
		return true
	}
	return false
}

// claims holds registered claims extracted from the payload
type claims struct {
	issuer    *string
	subject   *string
	audience  *string
	id        *string
	audiences []string
	expiresAt *time.Time
	issuedAt  *time.Time
	notBefore *time.Time
}

// splitClaims extracts registered claims and returns the remaining members
func splitClaims(members map[string]Value) (claims, map[string]Value) {
	c := claims{
		issuer:    optString(members, ClaimIssuer),
		subject:   optString(members, ClaimSubject),
		audience:  optString(members, ClaimAudience),
		id:        optString(members, ClaimID),
		audiences: stringList(members[ClaimAudience]),
		expiresAt: optTime(members, ClaimExpiration),
		issuedAt:  optTime(members, ClaimIssuedAt),
		notBefore: optTime(members, ClaimNotBefore),
	}

	rest := make(map[string]Value, len(members))
	for k, v := range members {
		if !isRegisteredClaim(k) {
			rest[k] = v
		}
	}
	return c, rest
}

func optString(members map[string]Value, k string) *string {
	s, ok := members[k].AsString()
	if !ok {
		return nil
	}
	return &s
}

// stringList accepts a single string or an array of strings
func stringList(v Value) []string {
	if s, ok := v.AsString(); ok {
		return []string{s}
	}
	items, ok := v.AsArray()
	if !ok {
		return nil
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.AsString()
		if !ok {
			return nil
		}
		list = append(list, s)
	}
	return list
}

// optTime converts NumericDate claim, seconds since the epoch
func optTime(members map[string]Value, k string) *time.Time {
	v := members[k]
	switch v.Kind() {
	case KindInteger:
		i, _ := v.AsInt64()
		t := time.Unix(i, 0).UTC()
		return &t
	case KindFloat:
		f, _ := v.AsFloat64()
		return timeFromSeconds(f)
	default:
		return nil
	}
}

func timeFromSeconds(f float64) *time.Time {
	if math.IsNaN(f) || math.Abs(f) >= 1<<63 {
		return nil
	}
	sec, frac := math.Modf(f)
	t := time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
	return &t
}

func copyString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func numericDate(t *time.Time) *gojwt.NumericDate {
	if t == nil {
		return nil
	}
	return gojwt.NewNumericDate(*t)
}

// RegisteredClaims returns registered claims as golang-jwt structure,
// to be used with golang-jwt validators
func (t *Token) RegisteredClaims() gojwt.RegisteredClaims {
	rc := gojwt.RegisteredClaims{
		ExpiresAt: numericDate(t.claims.expiresAt),
		NotBefore: numericDate(t.claims.notBefore),
		IssuedAt:  numericDate(t.claims.issuedAt),
	}
	rc.Issuer, _ = copyString(t.claims.issuer)
	rc.Subject, _ = copyString(t.claims.subject)
	rc.ID, _ = copyString(t.claims.id)
	if len(t.claims.audiences) > 0 {
		rc.Audience = gojwt.ClaimStrings(append([]string(nil), t.claims.audiences...))
	}
	return rc
}

// MapClaims returns the complete claims set as decoded from the payload,
// including registered claims. Numbers are json.Number, as golang-jwt
// produces with UseJSONNumber.
func (t *Token) MapClaims() gojwt.MapClaims {
	mc := gojwt.MapClaims{}
	for k, v := range t.claimsSet {
		mc[k] = v.toInterface(true)
	}
	return mc
}
