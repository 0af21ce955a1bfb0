// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "YOGI_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string
	legacyFileName string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
	legacyFilePath string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup. Setting YOGI_ENV keeps
// the files of a named environment (e.g. "dev") apart from the default ones.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			appDir:         "yogi",
			configFileName: "config.yml",
			dbFileName:     "yogi.db",
			logFileName:    "yogi.log",
			legacyFileName: "exercises.json",
		}

		p.applyEnvironmentOverrides(os.Getenv(envName))

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// LegacyFilePath is the JSON file served by the legacy exercises endpoint
// when no other file is configured.
func LegacyFilePath() string {
	return Must().legacyFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("yogi_%s.db", env)
	p.logFileName = fmt.Sprintf("yogi_%s.log", env)
	p.legacyFileName = fmt.Sprintf("exercises_%s.json", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	// xdg.DataFile creates the parent directories of the given path
	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.appDir, p.dbFileName))
	if err != nil {
		return err
	}

	dataDir := filepath.Dir(p.dbFilePath)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)
	p.legacyFilePath = filepath.Join(dataDir, p.legacyFileName)

	return nil
}
