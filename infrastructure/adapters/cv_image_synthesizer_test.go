package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"generate-webstory-service/config"
	"generate-webstory-service/domain"
)

func TestSanitizePrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain prompt unchanged",
			input: "A city skyline at dusk",
			want:  "A city skyline at dusk",
		},
		{
			name:  "strips visual prompt label",
			input: "**Visual prompt:** A city skyline at dusk",
			want:  "A city skyline at dusk",
		},
		{
			name:  "strips bare visual prompt label",
			input: "Visual prompt: A city skyline at dusk",
			want:  "A city skyline at dusk",
		},
		{
			name:  "strips markdown emphasis",
			input: "A **bold** city with *glowing* towers",
			want:  "A bold city with glowing towers",
		},
		{
			name:  "strips surrounding double quotes",
			input: `"A city skyline at dusk"`,
			want:  "A city skyline at dusk",
		},
		{
			name:  "strips surrounding single quotes",
			input: "'A city skyline at dusk'",
			want:  "A city skyline at dusk",
		},
		{
			name:  "trims whitespace",
			input: "   A city skyline at dusk   ",
			want:  "A city skyline at dusk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizePrompt(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizePrompt_Idempotent(t *testing.T) {
	inputs := []string{
		"**Visual prompt:** \"A *stormy* sea\"",
		"'quoted once'",
		"plain text",
	}
	for _, input := range inputs {
		once := sanitizePrompt(input)
		twice := sanitizePrompt(once)
		if once != twice {
			t.Errorf("sanitization not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTruncatePrompt(t *testing.T) {
	long := strings.Repeat("a", 250)
	if got := truncatePrompt(long, maxPromptLength); len(got) != maxPromptLength {
		t.Errorf("expected exactly %d characters, got %d", maxPromptLength, len(got))
	}

	exact := strings.Repeat("b", maxPromptLength)
	if got := truncatePrompt(exact, maxPromptLength); got != exact {
		t.Error("prompt at the limit must pass through unchanged")
	}

	short := "short prompt"
	if got := truncatePrompt(short, maxPromptLength); got != short {
		t.Errorf("short prompt changed: %q", got)
	}
}

func newCvTestConfig(endpoint string) *config.CvConfig {
	return &config.CvConfig{
		ApiKey:    "test-api-key",
		ApiSecret: "test-api-secret",
		Endpoint:  endpoint,
		ReqKey:    "test-req-key",
	}
}

func TestCvImageSynthesizer_Synthesize(t *testing.T) {
	logger := NewZerologWrapper()
	signer := NewRequestSigner("test-api-secret")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("api_key") != "test-api-key" {
			t.Errorf("unexpected api_key %q", query.Get("api_key"))
		}

		nonce, err := strconv.ParseInt(query.Get("nonce"), 10, 32)
		if err != nil {
			t.Errorf("invalid nonce %q", query.Get("nonce"))
		}
		timestamp, err := strconv.ParseInt(query.Get("timestamp"), 10, 64)
		if err != nil {
			t.Errorf("invalid timestamp %q", query.Get("timestamp"))
		}
		if query.Get("sign") != signer.Sign(int32(nonce), timestamp) {
			t.Error("signature does not verify against the query nonce and timestamp")
		}

		var body cvApiRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body.ReqKey != "test-req-key" {
			t.Errorf("unexpected req_key %q", body.ReqKey)
		}
		if !body.ReturnURL || body.Scale != 7.0 {
			t.Errorf("unexpected body flags: return_url=%v scale=%v", body.ReturnURL, body.Scale)
		}
		if body.Prompt != "A stormy sea" {
			t.Errorf("expected sanitized prompt, got %q", body.Prompt)
		}
		if !body.LogoInfo.AddLogo || body.LogoInfo.LogoTextContent != logoTextContent {
			t.Errorf("unexpected logo info: %+v", body.LogoInfo)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":10000,"data":{"image_urls":["https://img.example/1.png","https://img.example/2.png"]}}`))
	}))
	defer server.Close()

	synthesizer := NewCvImageSynthesizer(NewContentFetcher(logger), newCvTestConfig(server.URL), signer, logger)

	imageURL, err := synthesizer.Synthesize(context.Background(), `**Visual prompt:** "A *stormy* sea"`, domain.TitleSlideKind)
	if err != nil {
		t.Fatal("synthesize failed:", err)
	}
	if imageURL != "https://img.example/1.png" {
		t.Fatalf("expected the first candidate URL, got %q", imageURL)
	}
}

func TestCvImageSynthesizer_UpstreamRejection(t *testing.T) {
	logger := NewZerologWrapper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":50411,"message":"content blocked","data":{"image_urls":[]}}`))
	}))
	defer server.Close()

	synthesizer := NewCvImageSynthesizer(NewContentFetcher(logger), newCvTestConfig(server.URL),
		NewRequestSigner("test-api-secret"), logger)

	_, err := synthesizer.Synthesize(context.Background(), "A stormy sea", domain.BodySlideKind)

	var rejection *UpstreamRejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected UpstreamRejectionError, got %v", err)
	}
	if rejection.Code != 50411 || rejection.Message != "content blocked" {
		t.Fatalf("rejection did not carry the upstream message: %+v", rejection)
	}
}

func TestCvImageSynthesizer_NonOKStatusCarriesBody(t *testing.T) {
	logger := NewZerologWrapper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("signature mismatch"))
	}))
	defer server.Close()

	synthesizer := NewCvImageSynthesizer(NewContentFetcher(logger), newCvTestConfig(server.URL),
		NewRequestSigner("test-api-secret"), logger)

	_, err := synthesizer.Synthesize(context.Background(), "A stormy sea", domain.BodySlideKind)

	var statusErr *UpstreamStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected UpstreamStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden || statusErr.Body != "signature mismatch" {
		t.Fatalf("status error did not carry the response verbatim: %+v", statusErr)
	}
}

func TestCvImageSynthesizer_EmptyImageListIsRejection(t *testing.T) {
	logger := NewZerologWrapper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":10000,"data":{"image_urls":[]}}`))
	}))
	defer server.Close()

	synthesizer := NewCvImageSynthesizer(NewContentFetcher(logger), newCvTestConfig(server.URL),
		NewRequestSigner("test-api-secret"), logger)

	_, err := synthesizer.Synthesize(context.Background(), "A stormy sea", domain.BodySlideKind)

	var rejection *UpstreamRejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected UpstreamRejectionError for empty image list, got %v", err)
	}
}
