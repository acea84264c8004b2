package config

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/cypher4859/codeyou-devops-aws-challenge6-cicd-advanced/greeting"
)

type Config struct {
	DefaultName string `yaml:"default_name"` // Greeted when no name argument is given (default: "World")
	LogFile     string `yaml:"log_file"`
}

// Default configuration values
func DefaultConfig() *Config {
	return &Config{
		DefaultName: greeting.DefaultName,
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables in the format ${VAR}
	data = expandEnvVars(data)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultName == "" {
		cfg.DefaultName = greeting.DefaultName
	}

	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values
func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := string(envVarPattern.FindSubmatch(match)[1])
		return []byte(os.Getenv(varName))
	})
}
