package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/config"
	"generate-webstory-service/domain"
)

const (
	cvSuccessCode   = 10000
	maxPromptLength = 200
	logoTextContent = "@BytePlus 2025"
)

type cvApiRequest struct {
	ReqKey    string     `json:"req_key"`
	Prompt    string     `json:"prompt"`
	ReturnURL bool       `json:"return_url"`
	Scale     float64    `json:"scale"`
	LogoInfo  cvLogoInfo `json:"logo_info"`
}

type cvLogoInfo struct {
	AddLogo         bool    `json:"add_logo"`
	Position        int     `json:"position"`
	Language        int     `json:"language"`
	Opacity         float64 `json:"opacity"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	LogoTextContent string  `json:"logo_text_content"`
}

type cvApiResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		ImageURLs []string `json:"image_urls"`
	} `json:"data"`
}

type cvImageSynthesizer struct {
	ContentFetcher
	logger   outbound.LoggerPort
	cvConfig *config.CvConfig
	signer   RequestSigner
}

func NewCvImageSynthesizer(fetcher ContentFetcher, cvConfig *config.CvConfig,
	signer RequestSigner, logger outbound.LoggerPort) outbound.ImageSynthesizerPort {
	return &cvImageSynthesizer{
		ContentFetcher: fetcher,
		logger:         logger,
		cvConfig:       cvConfig,
		signer:         signer,
	}
}

// Synthesize sanitizes and truncates the prompt, posts a freshly signed
// request and returns the first candidate image URL. No retries on any
// failure path.
func (c *cvImageSynthesizer) Synthesize(ctx context.Context, prompt string, kind domain.SlideKind) (string, error) {
	signed := c.signer.NewSignedRequest()

	cleaned := truncatePrompt(sanitizePrompt(prompt), maxPromptLength)

	req, err := c.buildRequest(ctx, cleaned, signed)
	if err != nil {
		c.logger.Error(err, "failed to build the synthesis request")
		return "", err
	}

	c.logger.DebugWithFields("requesting image synthesis", map[string]interface{}{
		"kind":   kind,
		"prompt": cleaned,
	})

	rawRes, err := c.FetchContent(req)
	if err != nil {
		return "", err
	}

	var cvRes cvApiResponse
	if err := json.Unmarshal(rawRes, &cvRes); err != nil {
		return "", &ParseError{Reason: "malformed synthesis body", Err: err}
	}

	if cvRes.Code != cvSuccessCode || len(cvRes.Data.ImageURLs) == 0 {
		rejection := &UpstreamRejectionError{Code: cvRes.Code, Message: cvRes.Message}
		c.logger.Error(rejection, "image synthesis rejected")
		return "", rejection
	}

	// Several candidates may be returned; only the first is used.
	return cvRes.Data.ImageURLs[0], nil
}

func (c *cvImageSynthesizer) buildRequest(ctx context.Context, prompt string, signed SignedRequest) (*http.Request, error) {
	reqBody := cvApiRequest{
		ReqKey:    c.cvConfig.ReqKey,
		Prompt:    prompt,
		ReturnURL: true,
		Scale:     7.0,
		LogoInfo: cvLogoInfo{
			AddLogo:         true,
			Position:        0,
			Language:        0,
			Opacity:         0.3,
			Width:           720,
			Height:          1280,
			LogoTextContent: logoTextContent,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", c.cvConfig.ApiKey)
	params.Set("timestamp", strconv.FormatInt(signed.Timestamp, 10))
	params.Set("nonce", strconv.FormatInt(int64(signed.Nonce), 10))
	params.Set("sign", signed.Signature)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cvConfig.Endpoint+"?"+params.Encode(), bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// sanitizePrompt strips the enhancer's occasional "Visual prompt:" label,
// markdown emphasis markers and surrounding quotes. Idempotent.
func sanitizePrompt(text string) string {
	cleaned := text
	if _, after, found := strings.Cut(cleaned, "**Visual prompt:**"); found {
		cleaned = after
	}
	cleaned = strings.ReplaceAll(cleaned, "**", "")
	cleaned = strings.ReplaceAll(cleaned, "*", "")
	cleaned = strings.TrimSpace(cleaned)
	if after, found := strings.CutPrefix(cleaned, "Visual prompt:"); found {
		cleaned = after
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, `"`)
	cleaned = strings.Trim(cleaned, `'`)

	return strings.TrimSpace(cleaned)
}

// truncatePrompt hard-cuts at the character limit, mid-word if needed.
func truncatePrompt(prompt string, limit int) string {
	runes := []rune(prompt)
	if len(runes) <= limit {
		return prompt
	}
	return string(runes[:limit])
}
