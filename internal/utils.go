package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
)

const (
	ConfigHomeEnv      = "REVIEWER_CONFIG_HOME"
	DataHomeEnv        = "REVIEWER_DATA_HOME"
	DefaultConfigDir   = ".reviewer"
	DefaultDataDir     = "history"
	ProjectKeyLength   = 12
	HistoryFilePostfix = ".yml"
)

func GetConfigHome() (string, error) {
	var result string

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	result = filepath.Join(homeDir, DefaultConfigDir)

	if tmp := os.Getenv(ConfigHomeEnv); tmp != "" {
		result = tmp
	}

	return result, nil
}

func GetDataHome() (string, error) {
	var result string

	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	result = filepath.Join(configHome, DefaultDataDir)

	if tmp := os.Getenv(DataHomeEnv); tmp != "" {
		result = tmp
	}

	return result, nil
}

// GetHistoryPath returns the history file for a project directory. Projects
// are keyed by a hash of their absolute path so tool keys never collide
// across checkouts.
func GetHistoryPath(projectDir string) (string, error) {
	dataHome, err := GetDataHome()
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(dataHome, ProjectKey(abs)+HistoryFilePostfix), nil
}

func ProjectKey(dir string) string {
	sum := sha256.Sum256([]byte(dir))
	return hex.EncodeToString(sum[:])[:ProjectKeyLength]
}
