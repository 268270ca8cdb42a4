package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
	"github.com/PolarWolf314/cryptr/internal/secrets"
)

const (
	appDirName     = "cryptr"
	configFileName = "config.toml"
	auditFileName  = "audit.jsonl"

	DefaultWorkers         = 4
	DefaultEncryptedSuffix = ".enc"
)

type Config struct {
	Keys  KeysConfig  `toml:"keys"`
	Wrap  WrapConfig  `toml:"wrap"`
	Files FilesConfig `toml:"files"`
	Audit AuditConfig `toml:"audit"`
}

type KeysConfig struct {
	SymmetricBits int `toml:"symmetric_bits"`
}

type WrapConfig struct {
	Padding string `toml:"padding"`
}

type FilesConfig struct {
	Workers         int    `toml:"workers"`
	EncryptedSuffix string `toml:"encrypted_suffix"`
}

type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Active is the configuration in effect for the running command.
// The root command replaces it after parsing --config.
var Active = Default()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keys:  KeysConfig{SymmetricBits: secrets.DefaultKeyBits},
		Wrap:  WrapConfig{Padding: string(secrets.PaddingPKCS1v15)},
		Files: FilesConfig{Workers: DefaultWorkers, EncryptedSuffix: DefaultEncryptedSuffix},
	}
}

// DefaultDir returns the per-user directory holding the config and audit log.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, appDirName), nil
}

// DefaultPath returns the default location of the config file.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error. The result is validated.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes config to path.
func Save(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks every value against what the envelope operations support.
func (c *Config) Validate() error {
	if !secrets.ValidKeyBits(c.Keys.SymmetricBits) {
		return fmt.Errorf("%w: keys.symmetric_bits must be 128, 192 or 256, got %d",
			kerrors.ErrInvalidConfig, c.Keys.SymmetricBits)
	}
	if _, err := secrets.ParsePadding(c.Wrap.Padding); err != nil {
		return fmt.Errorf("%w: wrap.padding: %v", kerrors.ErrInvalidConfig, err)
	}
	if c.Files.Workers < 1 {
		return fmt.Errorf("%w: files.workers must be at least 1, got %d", kerrors.ErrInvalidConfig, c.Files.Workers)
	}
	if c.Files.EncryptedSuffix == "" || strings.ContainsAny(c.Files.EncryptedSuffix, `/\`) {
		return fmt.Errorf("%w: files.encrypted_suffix must be a non-empty file name suffix, got %q",
			kerrors.ErrInvalidConfig, c.Files.EncryptedSuffix)
	}
	return nil
}

// Padding returns the configured RSA padding.
func (c *Config) Padding() secrets.Padding {
	p, err := secrets.ParsePadding(c.Wrap.Padding)
	if err != nil {
		return secrets.PaddingPKCS1v15
	}
	return p
}

// AuditLogPath returns where audit entries are written, or "" when auditing
// is disabled or no location can be determined.
func (c *Config) AuditLogPath() string {
	if !c.Audit.Enabled {
		return ""
	}
	if c.Audit.Path != "" {
		return c.Audit.Path
	}
	dir, err := DefaultDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, auditFileName)
}
