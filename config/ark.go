package config

import (
	"fmt"
	"os"
)

type ArkConfig struct {
	ApiUrl  string
	ApiKey  string
	ModelId string
}

func GetArkConfig() (*ArkConfig, error) {
	apiUrl := os.Getenv("ARK_API_ENDPOINT")
	if apiUrl == "" {
		return nil, fmt.Errorf("ARK_API_ENDPOINT must be set")
	}
	apiKey := os.Getenv("ARK_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ARK_API_KEY must be set")
	}
	modelId := os.Getenv("ARK_MODEL_ID")
	if modelId == "" {
		return nil, fmt.Errorf("ARK_MODEL_ID must be set")
	}

	return &ArkConfig{
		ApiUrl:  apiUrl,
		ApiKey:  apiKey,
		ModelId: modelId,
	}, nil
}
