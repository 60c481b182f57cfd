package craftgate

import (
	"testing"
)

// literalParams is a fixed, ordered parameter list for query tests.
type literalParams []Parameter

func (p literalParams) ToParameters() []Parameter { return p }

func testOptions() Options {
	return Options{
		BaseURL:  "https://sandbox-api.craftgate.io",
		Language: "en",
	}
}

func testCredentials() Credentials {
	return Credentials{
		APIKey:    "test-api-key",
		SecretKey: "test-secret-key",
	}
}

// --- Query Tests ---

func TestQuery_Empty(t *testing.T) {
	if got := Query(literalParams{}); got != "?" {
		t.Errorf("empty parameter list\n  got:  %q\n  want: %q", got, "?")
	}
}

func TestQuery_OrderAndEncoding(t *testing.T) {
	p := literalParams{
		{"page", "0"},
		{"orderId", "order 1"},
		{"buyer", "türkçe"},
	}

	got := Query(p)
	want := "?page=0&orderId=order+1&buyer=t%C3%BCrk%C3%A7e"
	if got != want {
		t.Errorf("query mismatch\n  got:  %s\n  want: %s", got, want)
	}
}

func TestQuery_KeysNotEncoded(t *testing.T) {
	p := literalParams{{"a:b", "c:d"}}
	got := Query(p)
	want := "?a:b=c%3Ad"
	if got != want {
		t.Errorf("only values should be encoded\n  got:  %s\n  want: %s", got, want)
	}
}

// --- URL Tests ---

func TestURL(t *testing.T) {
	opts := testOptions()
	got := URL(EndpointInstallments, opts)
	want := "https://sandbox-api.craftgate.io/installment/v1/installments"
	if got != want {
		t.Errorf("url mismatch\n  got:  %s\n  want: %s", got, want)
	}
}

func TestURLWithParams_Nil(t *testing.T) {
	opts := testOptions()
	if got, want := URLWithParams(EndpointMembers, nil, opts), URL(EndpointMembers, opts); got != want {
		t.Errorf("nil params should produce the bare url\n  got:  %s\n  want: %s", got, want)
	}
}

func TestURLWithParams(t *testing.T) {
	opts := testOptions()
	p := literalParams{{"page", "0"}, {"size", "10"}}

	got := URLWithParams(EndpointSearchPayments, p, opts)
	want := opts.BaseURL + EndpointSearchPayments + Query(p)
	if got != want {
		t.Errorf("url mismatch\n  got:  %s\n  want: %s", got, want)
	}
}

// --- Header Tests ---

func TestHeaders_StaticFields(t *testing.T) {
	creds := testCredentials()
	opts := testOptions()
	url := URL(EndpointCardPayments, opts)

	h, err := Headers(url, creds, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := h["x-api-key"]; got != creds.APIKey {
		t.Errorf("x-api-key mismatch\n  got:  %s\n  want: %s", got, creds.APIKey)
	}
	if got := h["x-auth-version"]; got != "v1" {
		t.Errorf("x-auth-version mismatch\n  got:  %s\n  want: %s", got, "v1")
	}
	if got := h["lang"]; got != opts.Language {
		t.Errorf("lang mismatch\n  got:  %s\n  want: %s", got, opts.Language)
	}
	if h["x-signature"] == "" || h["x-rnd-key"] == "" {
		t.Errorf("missing signature or nonce header: %v", h)
	}
}

func TestHeaders_MatchesNilPayload(t *testing.T) {
	creds := testCredentials()
	opts := testOptions()
	url := URL(EndpointCardPayments, opts)

	h1, err := Headers(url, creds, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HeadersWithPayload(url, nil, creds, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Everything except the per-call nonce and signature must agree.
	for _, name := range []string{"x-api-key", "x-auth-version", "x-client-version", "lang"} {
		if h1[name] != h2[name] {
			t.Errorf("header %s differs between overloads: %q vs %q", name, h1[name], h2[name])
		}
	}
	if h1["x-rnd-key"] == h2["x-rnd-key"] {
		t.Error("nonce reused across calls")
	}
	if h1["x-signature"] == h2["x-signature"] {
		t.Error("signature reused across calls")
	}
}

func TestHeaders_MalformedURL(t *testing.T) {
	_, err := Headers("https://api.example.com/pay?bad=%zz", testCredentials(), testOptions())
	if err == nil {
		t.Fatal("expected error for malformed percent-encoding, got nil")
	}
}
