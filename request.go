package craftgate

import (
	"github.com/orhantugrul/craftgate-go/internal/signing"
)

// URL returns the full request URL for path: opts.BaseURL + path, with
// no query string. Neither part is validated or normalized; the caller
// supplies both already well-formed.
func URL(path string, opts Options) string {
	return URLWithParams(path, nil, opts)
}

// URLWithParams returns the full request URL for path with the query
// string derived from p appended. A nil p yields the bare base+path URL.
func URLWithParams(path string, p Parameterizable, opts Options) string {
	if p == nil {
		return opts.BaseURL + path
	}
	return opts.BaseURL + path + Query(p)
}

// Headers returns the authentication header set for a request without a
// body. See HeadersWithPayload.
func Headers(requestURL string, creds Credentials, opts Options) (map[string]string, error) {
	return HeadersWithPayload(requestURL, nil, creds, opts)
}

// HeadersWithPayload returns the authentication header set for a request
// carrying payload as its JSON body. requestURL is the percent-encoded
// URL as produced by URL or URLWithParams. A fresh random nonce is
// generated on every call, so no two header sets share a signature.
//
// The returned map holds the exact lowercase header names the gateway
// verifies; the transport layer should carry them to the wire unchanged.
func HeadersWithPayload(requestURL string, payload any, creds Credentials, opts Options) (map[string]string, error) {
	return signing.BuildHeaders(creds.APIKey, creds.SecretKey, opts.Language, requestURL, payload)
}
