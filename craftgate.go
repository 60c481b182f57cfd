// Package craftgate implements the request-signing and URL-construction
// layer of a Craftgate payment gateway API client.
//
// The package builds fully-qualified request URLs with optional query
// parameters, computes the gateway's request signature from the API
// credentials, a random nonce, and the request payload, and assembles
// the authentication header set for an outbound request. Sending the
// request, retrying it, and parsing the response are left to the
// caller's HTTP transport.
//
// All functions are stateless and safe for concurrent use; every
// header-set generation draws a fresh nonce, so no signature is ever
// reused across requests.
package craftgate

// Credentials holds the API key pair issued by the gateway. Both fields
// are opaque to this package and are never mutated.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Options holds per-client configuration: the gateway base URL and the
// language code reported in the "lang" header.
type Options struct {
	BaseURL  string
	Language string
}
