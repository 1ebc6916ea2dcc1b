package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars  `json:"env"`
	Prompts *Prompts `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseUrl string `env:"DATABASE_URL"`

	// ClassifierProvider selects the vision backend: "openai" or "anthropic".
	ClassifierProvider string `env:"CLASSIFIER_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey       string `env:"OPENAI_API_KEY" optional:"true"`
	AnthropicAPIKey    string `env:"ANTHROPIC_API_KEY" optional:"true"`

	// S3 archival of submitted search images is enabled when S3Bucket is set.
	AWSRegion          string `env:"AWS_REGION" optional:"true"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" optional:"true"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" optional:"true"`
	S3Bucket           string `env:"S3_BUCKET" optional:"true"`

	// SeedFile is a JSON catalog loaded into an empty restaurants table.
	SeedFile string `env:"SEED_FILE" optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}

	// The selected classifier backend needs its API key.
	switch c.EnvVars.ClassifierProvider {
	case "openai":
		if c.EnvVars.OpenAIAPIKey == "" {
			return fmt.Errorf("$OPENAI_API_KEY must be set when CLASSIFIER_PROVIDER=openai")
		}
	case "anthropic":
		if c.EnvVars.AnthropicAPIKey == "" {
			return fmt.Errorf("$ANTHROPIC_API_KEY must be set when CLASSIFIER_PROVIDER=anthropic")
		}
	default:
		return fmt.Errorf("unknown CLASSIFIER_PROVIDER: %q", c.EnvVars.ClassifierProvider)
	}

	return nil
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
