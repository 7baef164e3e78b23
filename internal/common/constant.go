// Package common contains shared constants and sentinel errors used across
// DomUnity components.
package common

const (
	// AuthorizationHeaderName is the gRPC metadata key carrying the
	// "Bearer <token>" credential.
	AuthorizationHeaderName = "authorization"

	// BearerPrefix is the literal scheme prefix expected in the
	// authorization value. Matching is case-sensitive.
	BearerPrefix = "Bearer "

	// AcceptLanguageHeaderName is the metadata key used for locale negotiation.
	AcceptLanguageHeaderName = "accept-language"
)
