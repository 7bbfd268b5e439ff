package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand      = "open"
	XDGOpenCommand   = "xdg-open"
	GtkLaunchCommand = "gtk-launch"
	GioCommand       = "gio"
	CmdCommand       = "cmd"
	StartCommand     = "start"
	ExplorerCommand  = "explorer"
)

// Command parameters
const (
	MacOSRevealFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
	GioLaunchVerb      = "launch"
)

// Application bundle conventions
const (
	MacOSBundleExt   = ".app"
	DesktopEntryExt  = ".desktop"
	AppDirName       = "launchgrid"
	LayoutFileName   = "launchpad_layout.json"
	LockFileName     = "launchgrid.lock"
	ConfigFileName   = "config.toml"
	LogFileName      = "launchgrid.log"
	SystemAppsDarwin = "/Applications"
	SystemAppsLinux  = "/usr/share/applications"
)

// lookPath is swapped in tests to control which launch helpers exist
var lookPath = exec.LookPath

// LaunchCommand returns the argv that starts the application at path on goos
func LaunchCommand(goos, path string) ([]string, error) {
	switch goos {
	case OSDarwin:
		return []string{OpenCommand, path}, nil
	case OSWindows:
		return []string{CmdCommand, WindowsCmdFlag, StartCommand, "", path}, nil
	case OSLinux:
		if !strings.HasSuffix(path, DesktopEntryExt) {
			return []string{XDGOpenCommand, path}, nil
		}
		// gtk-launch takes the desktop file ID, gio takes the path
		if _, err := lookPath(GtkLaunchCommand); err == nil {
			return []string{GtkLaunchCommand, strings.TrimSuffix(filepath.Base(path), DesktopEntryExt)}, nil
		}
		if _, err := lookPath(GioCommand); err == nil {
			return []string{GioCommand, GioLaunchVerb, path}, nil
		}
		return nil, fmt.Errorf("no launcher for desktop entry %s: install %s or %s", path, GtkLaunchCommand, GioCommand)
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Launch starts the application at path without waiting for it to exit
func Launch(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("application does not exist: %w", err)
	}
	argv, err := LaunchCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// RevealInManager shows the application bundle in the system file manager
func RevealInManager(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, MacOSRevealFlag, absPath)
	case OSWindows:
		cmd = exec.Command(ExplorerCommand, WindowsSelectParam, absPath)
	case OSLinux:
		// selection is not standardized on Linux, open the parent directory
		cmd = exec.Command(XDGOpenCommand, filepath.Dir(absPath))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ConfigDir returns the per-user configuration directory for the launcher
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName), nil
}

// DataDir returns the per-user directory holding the saved layout and log.
// It honours XDG_DATA_HOME on Linux.
func DataDir() (string, error) {
	if runtime.GOOS == OSLinux {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", AppDirName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName), nil
}

// DefaultRoots returns the system-wide and per-user application directories
func DefaultRoots(goos, home string) []string {
	switch goos {
	case OSDarwin:
		return []string{SystemAppsDarwin, filepath.Join(home, "Applications")}
	case OSWindows:
		roots := make([]string, 0, 2)
		if programData := os.Getenv("ProgramData"); programData != "" {
			roots = append(roots, filepath.Join(programData, "Microsoft", "Windows", "Start Menu", "Programs"))
		}
		return append(roots, filepath.Join(home, "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs"))
	default:
		return []string{SystemAppsLinux, filepath.Join(home, ".local", "share", "applications")}
	}
}

// DefaultBundlePattern returns the glob matching application bundles on goos
func DefaultBundlePattern(goos string) string {
	switch goos {
	case OSDarwin:
		return "*" + MacOSBundleExt
	case OSWindows:
		return "*.lnk"
	default:
		return "*" + DesktopEntryExt
	}
}

// DefaultMaxDepth returns how deep discovery walks below each root
func DefaultMaxDepth(goos string) int {
	if goos == OSWindows {
		// Start Menu groups shortcuts in vendor folders
		return 2
	}
	return 1
}

// WriteFileAtomic replaces path with data so that readers never observe a
// partial file: write to a sibling temporary file, sync, rename into place
// and sync the parent directory.
func WriteFileAtomic(path string, data []byte) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming %s into place: %w", path, err)
	}

	if dir, err := os.Open(filepath.Dir(path)); err == nil {
		dir.Sync()
		dir.Close()
	}
	return nil
}
