package adapter

import (
	"fmt"

	m "github.com/mouse-blink/gatehound/internal/model"
	"gopkg.in/yaml.v3"
)

// PatternSet is a user-supplied extension of one framework's guard
// vocabulary: extra auth markers and extra public overrides.
type PatternSet struct {
	Auth   []string `yaml:"auth"`
	Public []string `yaml:"public"`
}

// PatternConfig is the decoded --patterns file, keyed by framework id.
type PatternConfig struct {
	Frameworks map[string]PatternSet `yaml:"frameworks"`
}

// LoadPatternConfig reads and decodes a pattern extension file.
func LoadPatternConfig(fs SourceFSAdapter, path m.Path) (*PatternConfig, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns file: %w", err)
	}

	var cfg PatternConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode patterns file %s: %w", path, err)
	}

	return &cfg, nil
}
