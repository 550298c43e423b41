package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for lelyo.
type Config struct {
	OperatorID  string            `toml:"operator_id"`
	BaseDir     string            `toml:"base_dir"`
	LogDir      string            `toml:"log_dir"`
	Gateway     GatewayConfig     `toml:"gateway"`
	Journal     JournalConfig     `toml:"journal"`
	Credentials CredentialsConfig `toml:"credentials"`
}

// GatewayConfig selects how the remote authority is reached.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type GatewayConfig struct {
	Type string `toml:"type"` // "http" (default) or "memory"

	// HTTP-specific fields (only used when Type == "http")
	BaseURL string `toml:"base_url,omitempty"`
}

// JournalConfig selects where the operation journal is stored.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type JournalConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// CredentialsConfig holds the paths of the API token store.
type CredentialsConfig struct {
	Type         string `toml:"type"` // "age" (default) or "file"
	IdentityPath string `toml:"identity_path"`
	TokenPath    string `toml:"token_path"`
}

// NewConfig creates a new Config with the provided values and default paths.
func NewConfig(operatorID, baseDir string) *Config {
	return &Config{
		OperatorID: operatorID,
		BaseDir:    baseDir,
		LogDir:     filepath.Join(baseDir, "log"),
		Gateway: GatewayConfig{
			Type:    "http",
			BaseURL: "http://localhost:8000",
		},
		Journal: JournalConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Credentials: CredentialsConfig{
			Type:         "age",
			IdentityPath: filepath.Join(baseDir, "keys", "lelyo.key"),
			TokenPath:    filepath.Join(baseDir, "keys", "token.age"),
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
