package componentfile

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	// EnvFile names the environment variable that overrides the default component file.
	EnvFile = "ALIASMAP_FILE"

	defaultDir      = ".aliasmap"
	defaultFilename = "components.yaml"
)

/*
ResolvePath picks the component file to use.

An explicit path (usually the --file flag) wins, then the ALIASMAP_FILE
environment variable, then ~/.aliasmap/components.yaml.
*/
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if fromEnv := os.Getenv(EnvFile); fromEnv != "" {
		return fromEnv, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, defaultDir, defaultFilename), nil
}

// toUserFriendlyPath replaces the home directory prefix with "~".
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	rest := strings.TrimPrefix(absPath, homeDir)
	if !strings.HasPrefix(rest, string(os.PathSeparator)) {
		// e.g. /home/userx when home is /home/user
		return absPath
	}
	return filepath.Join("~", strings.TrimPrefix(rest, string(os.PathSeparator)))
}
