package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const EnvPrefix = "REVIEWER"

// Setting keys shared by viper environment lookups and CLI flags.
const (
	KeyConfig        = "config"
	KeyHistory       = "history"
	KeyWorkDir       = "workdir"
	KeyPrepareWindow = "prepare_window"
	KeyTimeout       = "timeout"
	KeyStrategy      = "strategy"
)

type Manager struct {
	configStore ConfigStore
	Settings    Settings
}

func NewManager(cs ConfigStore) *Manager {
	return &Manager{configStore: cs, Settings: cs.ReadDefaults()}
}

// WithEnvironment overrides the defaults with anything set on v, which is
// expected to carry REVIEWER_* environment variables and bound CLI flags.
func (c *Manager) WithEnvironment(v *viper.Viper) *Manager {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if v.IsSet(KeyConfig) {
		c.Settings.ConfigFile = v.GetString(KeyConfig)
	}
	if v.IsSet(KeyHistory) {
		c.Settings.HistoryFile = v.GetString(KeyHistory)
	}
	if v.IsSet(KeyWorkDir) {
		c.Settings.WorkDir = v.GetString(KeyWorkDir)
	}
	if v.IsSet(KeyPrepareWindow) {
		c.Settings.PrepareWindow = v.GetDuration(KeyPrepareWindow)
	}
	if v.IsSet(KeyTimeout) {
		c.Settings.Timeout = v.GetDuration(KeyTimeout)
	}
	if v.IsSet(KeyStrategy) {
		c.Settings.Strategy = v.GetString(KeyStrategy)
	}

	return c
}

// ConfigPath resolves the config file relative to the working directory.
func (c *Manager) ConfigPath() string {
	if filepath.IsAbs(c.Settings.ConfigFile) || c.Settings.WorkDir == "" {
		return c.Settings.ConfigFile
	}
	return filepath.Join(c.Settings.WorkDir, c.Settings.ConfigFile)
}

// LoadTools reads and validates the tool configuration. Any error returned
// here is fatal for the run.
func (c *Manager) LoadTools() (Tools, error) {
	cfg, err := c.configStore.Read(c.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("read tool configuration: %w", err)
	}

	if err := cfg.Tools.Validate(); err != nil {
		return nil, err
	}

	return cfg.Tools, nil
}
