package utils

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Scanner   ScannerConfig   `yaml:"scanner"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Output    OutputConfig    `yaml:"output"`
}

type ScannerConfig struct {
	Timeout           string `yaml:"timeout"`
	MaxRetries        int    `yaml:"max_retries"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
	Delay             string `yaml:"delay"`
	SkipSSL           bool   `yaml:"skip_ssl"`
	UserAgent         string `yaml:"user_agent"`
}

type ExtractorConfig struct {
	MinCommentToken  int `yaml:"min_comment_token"`
	MaxHarvestedURLs int `yaml:"max_harvested_urls"`
}

type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
