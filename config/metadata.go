package config

import (
	"fmt"
	"os"
	"strconv"
)

type MetadataConfig struct {
	TableName  string
	TtlMinutes int
}

func GetMetadataConfig() (*MetadataConfig, error) {
	tableName := os.Getenv("METADATA_TABLE_NAME")
	if tableName == "" {
		return nil, fmt.Errorf("METADATA_TABLE_NAME must be set")
	}

	ttlMinutes := os.Getenv("METADATA_TTL_MINUTES")
	if ttlMinutes == "" {
		return nil, fmt.Errorf("METADATA_TTL_MINUTES must be set")
	}
	ttlVal, err := strconv.Atoi(ttlMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata ttl minutes")
	}

	return &MetadataConfig{
		TableName:  tableName,
		TtlMinutes: ttlVal,
	}, nil
}
