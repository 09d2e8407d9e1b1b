// Package jwt provides JSON Web Token (JWT) decoding without signature verification.
//
// The package decodes the compact serialization as defined by RFC 7519:
//   - header and payload segments are base64url decoded, with stripped padding restored
//   - both segments are parsed as JSON objects into Value, a closed set of JSON types
//   - registered claims (iss, sub, aud, exp, nbf, iat, jti) are exposed as typed getters
//     and removed from Payload, which holds the application specific members
//   - registered header parameters (alg, typ, cty) are exposed as typed getters
//     and kept in the header
//
// Decoding never fails. A malformed segment produces an empty header or payload,
// and a claim of unexpected type is reported as absent. Callers that need to reject
// malformed tokens must check the getters they rely on.
//
// Signatures are not verified, the third segment is kept as is.
// RegisteredClaims and MapClaims hand the claims over to golang-jwt
// for callers that verify tokens elsewhere.
package jwt
