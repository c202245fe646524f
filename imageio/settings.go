package imageio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings names the source file and carries arbitrary downstream
// processing options. This layer passes the options through unmodified
// to the constructed driver.
type Settings struct {
	Source  string            `yaml:"source"`
	Options map[string]string `yaml:"options,omitempty"`
}

// LoadSettings reads a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if s.Source == "" {
		return Settings{}, fmt.Errorf("settings file %s does not name a source", path)
	}
	return s, nil
}

// Option returns a named option, or def when it is not set.
func (s Settings) Option(name, def string) string {
	if v, ok := s.Options[name]; ok {
		return v
	}
	return def
}
