package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile    = ".reviewer.yml"
	defaultPrepareWindow = 6 * time.Hour
	defaultStrategy      = ""
)

//go:generate mockgen -destination=storemocks_test.go -package=config_test github.com/kardolus/reviewer/config ConfigStore
type ConfigStore interface {
	Read(path string) (Config, error)
	ReadDefaults() Settings
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	workDir string
}

func New() *FileIO {
	wd, _ := os.Getwd()
	return &FileIO{workDir: wd}
}

func (f *FileIO) WithWorkDir(workDir string) *FileIO {
	f.workDir = workDir
	return f
}

func (f *FileIO) Read(path string) (Config, error) {
	return parseFile(path)
}

// ReadDefaults leaves HistoryFile empty; the caller derives it from the
// project directory.
func (f *FileIO) ReadDefaults() Settings {
	return Settings{
		ConfigFile:    defaultConfigFile,
		WorkDir:       f.workDir,
		PrepareWindow: defaultPrepareWindow,
		Strategy:      defaultStrategy,
	}
}

func parseFile(fileName string) (Config, error) {
	var tools Tools

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(buf, &tools); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", fileName, err)
	}

	return Config{Tools: tools}, nil
}
