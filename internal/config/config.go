package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Viewer describes an external program invoked on a selected file.
type Viewer struct {
	Command string   `yaml:"command"` // Executable name or path
	Args    []string `yaml:"args"`    // Extra arguments placed before the file path
}

// Config represents the application configuration structure.
// It defines the note and project directories, the external viewers,
// the interactive selector, and scan behavior.
type Config struct {
	Directories struct {
		Notes      string `yaml:"notes"`      // Root directory for notes and documents
		Projects   string `yaml:"projects"`   // Root directory for project folders
		University string `yaml:"university"` // Subdirectory of the notes root used by the --uni shortcut
	} `yaml:"directories"`
	Viewers struct {
		Editor Viewer `yaml:"editor"` // Markdown editor, launched blocking
		PDF    Viewer `yaml:"pdf"`    // PDF viewer, launched detached
		Epub   Viewer `yaml:"epub"`   // E-book viewer, launched blocking
	} `yaml:"viewers"`
	Selector Viewer `yaml:"selector"` // Interactive fuzzy finder
	Scan     struct {
		Extensions []string `yaml:"extensions"` // File extensions considered during a scan
		Exclude    []string `yaml:"exclude"`    // Glob patterns for directory names to skip
	} `yaml:"scan"`
}

// LoadConfig loads configuration from the default location
// (~/.config/notable/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "notable", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Directories.Notes != "" {
		cfg.Directories.Notes = tempCfg.Directories.Notes
	}
	if tempCfg.Directories.Projects != "" {
		cfg.Directories.Projects = tempCfg.Directories.Projects
	}
	if tempCfg.Directories.University != "" {
		cfg.Directories.University = tempCfg.Directories.University
	}
	if tempCfg.Viewers.Editor.Command != "" {
		cfg.Viewers.Editor = tempCfg.Viewers.Editor
	}
	if tempCfg.Viewers.PDF.Command != "" {
		cfg.Viewers.PDF = tempCfg.Viewers.PDF
	}
	if tempCfg.Viewers.Epub.Command != "" {
		cfg.Viewers.Epub = tempCfg.Viewers.Epub
	}
	if tempCfg.Selector.Command != "" {
		cfg.Selector = tempCfg.Selector
	}
	if len(tempCfg.Scan.Extensions) > 0 {
		cfg.Scan.Extensions = tempCfg.Scan.Extensions
	}
	if len(tempCfg.Scan.Exclude) > 0 {
		cfg.Scan.Exclude = tempCfg.Scan.Exclude
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// New returns a configuration populated with defaults.
func New() *Config {
	return defaultConfig()
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Directories.Notes = "~/GoogleDrive"
	cfg.Directories.Projects = "~/GoogleDrive/Projects"
	cfg.Directories.University = "Università"

	// The editor honors the EDITOR environment variable
	cfg.Viewers.Editor = Viewer{Command: editorFromEnv()}
	cfg.Viewers.PDF = Viewer{Command: "zathura"}
	cfg.Viewers.Epub = Viewer{Command: "ebook-viewer"}
	cfg.Selector = Viewer{Command: "fzf"}

	cfg.Scan.Extensions = []string{".md", ".pdf", ".epub"}
	cfg.Scan.Exclude = []string{".*", "node_modules"}

	return cfg
}

// editorFromEnv resolves the preferred editor from the environment,
// falling back to vi when EDITOR is unset.
func editorFromEnv() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is nil")
	}

	if c.Directories.Notes == "" {
		return fmt.Errorf("notes directory must not be empty")
	}
	if c.Directories.Projects == "" {
		return fmt.Errorf("projects directory must not be empty")
	}

	for name, v := range map[string]Viewer{
		"editor":   c.Viewers.Editor,
		"pdf":      c.Viewers.PDF,
		"epub":     c.Viewers.Epub,
		"selector": c.Selector,
	} {
		if strings.TrimSpace(v.Command) == "" {
			return fmt.Errorf("viewer %q has no command configured", name)
		}
	}

	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan extension %q must start with a dot", ext)
		}
	}

	for _, pattern := range c.Scan.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// NotesDir returns the notes root with the home directory expanded.
func (c *Config) NotesDir() string {
	return ExpandPath(c.Directories.Notes)
}

// ProjectsDir returns the projects root with the home directory expanded.
func (c *Config) ProjectsDir() string {
	return ExpandPath(c.Directories.Projects)
}

// UniversityDir returns the university subdirectory under the notes root.
func (c *Config) UniversityDir() string {
	return filepath.Join(c.NotesDir(), c.Directories.University)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
