// Package signing implements the Craftgate request-signature protocol
// and the authentication header set derived from it.
package signing

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Header names used by the Craftgate API. The service matches them
// case-sensitively, so they must reach the wire lowercase.
const (
	HeaderAPIKey        = "x-api-key"
	HeaderRandomKey     = "x-rnd-key"
	HeaderAuthVersion   = "x-auth-version"
	HeaderClientVersion = "x-client-version"
	HeaderSignature     = "x-signature"
	HeaderLanguage      = "lang"
)

const (
	// AuthVersion identifies the signature scheme to the gateway.
	AuthVersion = "v1"
	// ClientVersion identifies this client library to the gateway.
	ClientVersion = "craftgate-go-client:1.1.0"
)

// Base64 returns the standard base64 encoding of the UTF-8 bytes of s.
func Base64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// SHA256 returns the lowercase hex SHA-256 digest of the UTF-8 bytes of s.
func SHA256(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Sign computes the request signature.
//
// The message to sign is the concatenation, with no separators and in
// this exact order: apiKey + secretKey + decodedURL + body + random.
// The message is base64-encoded and the signature is the SHA-256 hex
// digest of that encoding. Field order and the absence of delimiters
// are fixed by the gateway; changing either breaks verification.
//
// decodedURL is the request URL in its percent-decoded form; body is
// the JSON payload, or "" for requests without one.
func Sign(apiKey, secretKey, decodedURL, body, random string) string {
	return SHA256(Base64(apiKey + secretKey + decodedURL + body + random))
}

// BuildHeaders returns the full authentication header set for a request
// to requestURL.
//
// requestURL is expected in its percent-encoded form, as produced by
// the URL builder; it is decoded before signing so that the signature
// covers the unencoded URL. A malformed encoding surfaces as an error.
// payload, when non-nil, is serialized to JSON and included in the
// signed message; a nil payload contributes the empty string, not the
// literal "null". Every call draws a fresh UUID nonce, so two header
// sets never share a signature even for identical arguments.
func BuildHeaders(apiKey, secretKey, language, requestURL string, payload any) (map[string]string, error) {
	decodedURL, err := url.QueryUnescape(requestURL)
	if err != nil {
		return nil, fmt.Errorf("craftgate: decoding request url: %w", err)
	}

	body := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("craftgate: marshalling payload: %w", err)
		}
		body = string(data)
	}

	random := uuid.NewString()

	return map[string]string{
		HeaderAPIKey:        apiKey,
		HeaderRandomKey:     random,
		HeaderAuthVersion:   AuthVersion,
		HeaderClientVersion: ClientVersion,
		HeaderSignature:     Sign(apiKey, secretKey, decodedURL, body, random),
		HeaderLanguage:      language,
	}, nil
}
