package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"generate-webstory-service/config"
	"generate-webstory-service/domain"
)

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Summary
	}{
		{
			name: "title and bullets",
			content: "**Title:** \"Market Rallies\"\n" +
				"- Stocks up 2%\n" +
				"- Tech leads gains\n",
			want: domain.Summary{
				Title:   "Market Rallies",
				Bullets: []string{"Stocks up 2%", "Tech leads gains"},
			},
		},
		{
			name: "title-less response shape",
			content: "- First point\n" +
				"- Second point\n",
			want: domain.Summary{
				Bullets: []string{"First point", "Second point"},
			},
		},
		{
			name:    "bullets with emphasis markers",
			content: "Title: Plain Title\n- **Bold point** continues\n",
			want: domain.Summary{
				Title:   "Plain Title",
				Bullets: []string{"Bold point continues"},
			},
		},
		{
			name:    "no bullets yields empty list",
			content: "Title: Lonely Title\nSome prose that is ignored.\n",
			want: domain.Summary{
				Title: "Lonely Title",
			},
		},
		{
			name: "unrelated lines ignored and order preserved",
			content: "Here is your summary.\n" +
				"**Title:** Ordered News\n" +
				"Some filler.\n" +
				"- alpha\n" +
				"- beta\n" +
				"- gamma\n" +
				"Closing remark.\n",
			want: domain.Summary{
				Title:   "Ordered News",
				Bullets: []string{"alpha", "beta", "gamma"},
			},
		},
		{
			name:    "empty response",
			content: "",
			want:    domain.Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSummary(tt.content)
			if got.Title != tt.want.Title {
				t.Errorf("title: got %q, want %q", got.Title, tt.want.Title)
			}
			if !reflect.DeepEqual(got.Bullets, tt.want.Bullets) {
				t.Errorf("bullets: got %v, want %v", got.Bullets, tt.want.Bullets)
			}
		})
	}
}

func newArkTestConfig(endpoint string) *config.ArkConfig {
	return &config.ArkConfig{
		ApiUrl:  endpoint,
		ApiKey:  "test-ark-key",
		ModelId: "test-model",
	}
}

func TestArkSummarizer_Summarize(t *testing.T) {
	logger := NewZerologWrapper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-ark-key" {
			t.Errorf("unexpected authorization header %q", r.Header.Get("Authorization"))
		}

		var req arkChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("unexpected model %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected message layout: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"**Title:** Big News\n- point one\n- point two"}}]}`))
	}))
	defer server.Close()

	summarizer := NewArkSummarizer(NewContentFetcher(logger), newArkTestConfig(server.URL), logger)

	summary, err := summarizer.Summarize(context.Background(), "some long article text")
	if err != nil {
		t.Fatal("summarize failed:", err)
	}
	if summary.Title != "Big News" {
		t.Errorf("unexpected title %q", summary.Title)
	}
	if !reflect.DeepEqual(summary.Bullets, []string{"point one", "point two"}) {
		t.Errorf("unexpected bullets %v", summary.Bullets)
	}
}

func TestArkSummarizer_MissingChoicesIsParseError(t *testing.T) {
	logger := NewZerologWrapper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	summarizer := NewArkSummarizer(NewContentFetcher(logger), newArkTestConfig(server.URL), logger)

	_, err := summarizer.Summarize(context.Background(), "article")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
