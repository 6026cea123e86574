package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
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
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Browsers tried on Linux when xdg-open is unavailable
var (
	LinuxBrowsers = []string{"sensible-browser", "firefox", "chromium", "google-chrome"}
)

// runCommand is replaced in tests so no external program is started
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// lookPath is replaced in tests
var lookPath = exec.LookPath

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path, so readers never see a half-written file
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// ExecutableDir returns the directory containing the running binary, falling
// back to the working directory
func ExecutableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// FindDataFile looks for name in the working directory first and then beside
// the executable. It returns the first existing path.
func FindDataFile(name string) (string, error) {
	if filepath.IsAbs(name) {
		if FileExists(name) {
			return name, nil
		}
		return "", fmt.Errorf("data file not found: %s", name)
	}

	var candidates []string
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, name))
	}
	candidates = append(candidates, filepath.Join(ExecutableDir(), name))

	for _, c := range candidates {
		if FileExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("data file not found: %s", name)
}

// OpenURL opens u in the system browser
func OpenURL(u *url.URL) error {
	if u == nil {
		return errors.New("url is nil")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web url: %s", u.String())
	}

	switch runtime.GOOS {
	case OSDarwin:
		return runCommand(OpenCommand, u.String())
	case OSWindows:
		return runCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", u.String())
	case OSLinux:
		return openURLLinux(u.String())
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURLLinux tries xdg-open and then common browsers
func openURLLinux(link string) error {
	if err := runCommand(XDGOpenCommand, link); err == nil {
		return nil
	}

	for _, browser := range LinuxBrowsers {
		if _, err := lookPath(browser); err == nil {
			return runCommand(browser, link)
		}
	}

	return fmt.Errorf("no suitable browser found")
}
