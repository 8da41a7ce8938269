package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// AppDirName is the directory name used under the platform config root.
const AppDirName = "mdserve"

// PathResolver resolves user supplied paths against the places a binary is
// usually run from.
type PathResolver struct {
	executableDir string
	homeDir       string
	workDir       string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, "locate executable")
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, errors.Wrap(err, "resolve executable symlinks")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	workDir, _ := os.Getwd()

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		workDir:       workDir,
	}

	log.Debugf("PathResolver initialized: execDir=%s, workDir=%s", pr.executableDir, pr.workDir)
	return pr, nil
}

// ConfigDirFor returns the platform config directory for mdserve.
func ConfigDirFor(goos, homeDir string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(homeDir, ".config", AppDirName)
	case "linux":
		if configHome := getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, "."+AppDirName)
	}
}

// ResolveDocumentPath finds a markdown file given on the command line. A
// leading ~/ is expanded. Relative paths are tried as given, then against
// the working directory, then against the executable's directory.
func (pr *PathResolver) ResolveDocumentPath(path string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(pr.homeDir, rest)
	}
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = append(candidates,
			filepath.Join(pr.workDir, path),
			filepath.Join(pr.executableDir, path),
		)
	}

	for _, c := range candidates {
		if stat, err := os.Stat(c); err == nil && !stat.IsDir() {
			log.Debugf("Resolved document path: %s", c)
			return c, nil
		}
		log.Debugf("Document candidate not found: %s", c)
	}
	return "", errors.Wrapf(os.ErrNotExist, "document %s", path)
}
