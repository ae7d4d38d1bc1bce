package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultShareTemplate renders the plain-text summary produced by
// `jadwal export --text`.
const DefaultShareTemplate = `{{schedule_name}}
{{#courses}}
- {{code}} {{name}} (section {{section}}{{#instructor}}, {{instructor}}{{/instructor}})
{{/courses}}
{{course_count}} courses, {{total_hours}} credit hours. Exported {{exported_at}}.`

type Config struct {
	Palette       []string // Custom course color cycle (optional)
	ShareTemplate string
}

type tomlConfig struct {
	Palette []string `toml:"palette"`
}

// Load reads config from ~/.config/jadwal/
func Load() (*Config, error) {
	cfg := &Config{
		ShareTemplate: DefaultShareTemplate,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	configDir := filepath.Join(home, ".config", "jadwal")
	tomlPath := filepath.Join(configDir, "config.toml")
	templatePath := filepath.Join(configDir, "share_template.txt")

	// Load TOML config if it exists
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			cfg.Palette = tc.Palette
		}
	}

	// If custom share template exists, use it
	if data, err := os.ReadFile(templatePath); err == nil {
		cfg.ShareTemplate = string(data)
	}

	return cfg, nil
}
