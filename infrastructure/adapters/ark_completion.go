package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"generate-webstory-service/config"
)

type arkChatRequest struct {
	Model    string           `json:"model"`
	Messages []arkChatMessage `json:"messages"`
}

type arkChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type arkChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// completeChat performs one non-streaming chat completion against the ARK
// endpoint and returns the first choice's content.
func completeChat(ctx context.Context, fetcher ContentFetcher, arkConfig *config.ArkConfig,
	systemInstruction string, userContent string) (string, error) {
	reqBody := arkChatRequest{
		Model: arkConfig.ModelId,
		Messages: []arkChatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userContent},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, arkConfig.ApiUrl, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+arkConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	rawRes, err := fetcher.FetchContent(req)
	if err != nil {
		return "", err
	}

	var chatRes arkChatResponse
	if err := json.Unmarshal(rawRes, &chatRes); err != nil {
		return "", &ParseError{Reason: "malformed completion body", Err: err}
	}
	if len(chatRes.Choices) == 0 {
		return "", &ParseError{Reason: "completion response contains no choices"}
	}

	return chatRes.Choices[0].Message.Content, nil
}
