package domain

import "path/filepath"

// File and directory names.
const (
	AppDirName          = "rational-breaks"
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".breaks.toml"
	LogFileName         = "breaks.log"

	// StorageKey names the persisted history, both as the JSON file stem and
	// as the git ref leaf.
	StorageKey = "rational-breaks-history"
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// DataDir returns the data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// JSONStorePath returns the path of the JSON state file.
func JSONStorePath(dataDir string) string {
	return filepath.Join(dataDir, StorageKey+".json")
}

// LogPath returns the path of the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// HistoryRef returns the git ref that holds the state blob.
func HistoryRef(namespace string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return "refs/" + namespace + "/" + StorageKey
}
