// Package common contains shared constants and sentinel errors used across
// careerhub components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// LegacyTokenHeaderName is the HTTP header older web clients send the token in.
const LegacyTokenHeaderName = "x-auth-token"
