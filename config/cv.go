package config

import (
	"fmt"
	"os"
)

type CvConfig struct {
	ApiKey    string
	ApiSecret string
	Endpoint  string
	ReqKey    string
}

func GetCvConfig() (*CvConfig, error) {
	apiKey := os.Getenv("CV_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CV_API_KEY must be set")
	}
	apiSecret := os.Getenv("CV_API_SECRET")
	if apiSecret == "" {
		return nil, fmt.Errorf("CV_API_SECRET must be set")
	}
	endpoint := os.Getenv("CV_API_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("CV_API_ENDPOINT must be set")
	}
	reqKey := os.Getenv("CV_REQ_KEY")
	if reqKey == "" {
		return nil, fmt.Errorf("CV_REQ_KEY must be set")
	}

	return &CvConfig{
		ApiKey:    apiKey,
		ApiSecret: apiSecret,
		Endpoint:  endpoint,
		ReqKey:    reqKey,
	}, nil
}
