package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/boilerai/boilerplan/internal/scheduler"
	"github.com/joho/godotenv"
)

// Config holds everything the binary needs at startup.
type Config struct {
	DBPath      string
	CatalogPath string // empty means the embedded catalog
	LogCalls    bool
	Policy      scheduler.Policy
}

// DefaultConfig stores data under ~/.boilerplan and uses the default
// planning policy.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath: filepath.Join(home, ".boilerplan", "boilerplan.db"),
		Policy: scheduler.DefaultPolicy(),
	}, nil
}

// Load reads the given env files (".env" when none are named) and then the
// environment. Missing env files are skipped, but a file that exists and
// cannot be parsed is an error. Variables already set in the environment
// win over file values, and unparsable values keep the default.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("BOILERPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	cfg.CatalogPath = os.Getenv("BOILERPLAN_CATALOG")
	if v := os.Getenv("BOILERPLAN_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyIntEnv(&cfg.Policy.CSCap, "BOILERPLAN_CS_CAP", 1)
	applyIntEnv(&cfg.Policy.CSCapFirstYear, "BOILERPLAN_CS_CAP_FIRST_YEAR", 1)
	applyIntEnv(&cfg.Policy.CSCapSummer, "BOILERPLAN_CS_CAP_SUMMER", 1)
	applyIntEnv(&cfg.Policy.FloorRegular, "BOILERPLAN_FLOOR_REGULAR", 0)
	applyIntEnv(&cfg.Policy.FloorSummer, "BOILERPLAN_FLOOR_SUMMER", 0)
	applyIntEnv(&cfg.Policy.CSHeavyCredits, "BOILERPLAN_CS_HEAVY_CREDITS", 1)

	return cfg, nil
}

func applyIntEnv(dst *int, envName string, min int) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		return
	}
	*dst = n
}
