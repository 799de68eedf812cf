// ABOUTME: Host identity detection for the showcase client
// ABOUTME: Discovers the opaque init-data token and display name from env or XDG file

package identity

import (
	"os"
	"path/filepath"
	"strings"
)

// Env vars supplied by the mini-app host wrapper. The init-data value is an
// opaque session credential and is forwarded verbatim, never parsed.
const (
	InitDataEnv    = "SHOWCASE_INIT_DATA"
	DisplayNameEnv = "SHOWCASE_USER"
)

// Identity is the per-session host identity. It is built once at startup and
// immutable afterwards. An empty InitData means the client was opened outside
// the host ("browser mode"); privileged calls will then carry no credential
// and the backend decides what to refuse.
type Identity struct {
	InitData    string
	DisplayName string
}

// InHost reports whether a host-issued credential is present.
func (id Identity) InHost() bool {
	return id.InitData != ""
}

// UserLine returns the one-line identity summary shown above the view pane.
func (id Identity) UserLine() string {
	if !id.InHost() {
		return "Opened outside the app host (lead submission requires the host context)"
	}
	if id.DisplayName != "" {
		return "You: " + id.DisplayName
	}
	return "Signed in via app host"
}

// Detect builds the session Identity. The init-data token comes from the
// SHOWCASE_INIT_DATA env var, falling back to initDataFile (or the default
// XDG location when initDataFile is empty). Detection never fails: any
// missing source just yields browser mode.
func Detect(initDataFile string) Identity {
	return Identity{
		InitData:    detectInitData(initDataFile),
		DisplayName: strings.TrimSpace(os.Getenv(DisplayNameEnv)),
	}
}

func detectInitData(initDataFile string) string {
	if v := strings.TrimSpace(os.Getenv(InitDataEnv)); v != "" {
		return v
	}

	path := initDataFile
	if path == "" {
		path = defaultInitDataPath()
	}
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// defaultInitDataPath returns $XDG_CONFIG_HOME/showcase/initdata, falling
// back to ~/.config/showcase/initdata.
func defaultInitDataPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "showcase", "initdata")
}
