package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PromptPair holds a system and user prompt for one model task.
type PromptPair struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Prompts is the top-level prompt configuration loaded from YAML.
type Prompts struct {
	Classify PromptPair `yaml:"classify"`
}

// LoadPrompts reads and parses a YAML prompt configuration file.
func LoadPrompts(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	var prompts Prompts
	if err := yaml.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompts YAML: %w", err)
	}

	return &prompts, nil
}

// DefaultPrompts returns the built-in classification prompts. Used as a
// fallback when no prompts file is present.
func DefaultPrompts() *Prompts {
	return &Prompts{
		Classify: PromptPair{
			System: "You are a food image classifier. You answer with a single cuisine name and nothing else.",
			User:   "Analyze the image and classify the cuisine. Return only the cuisine name (e.g., 'Italian', 'Chinese', 'Indian', 'Mexican').",
		},
	}
}
