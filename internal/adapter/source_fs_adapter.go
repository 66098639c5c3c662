// Package adapter contains filesystem and persistence adapters for the
// Gatehound CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/gatehound/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when scanning user projects. It hides direct `os` access so
// the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ListFiles collects scannable source files under root. A "/..."
	// suffix on root requests recursive traversal; without it only the
	// root directory itself is listed. Files matching any exclude
	// pattern are dropped.
	ListFiles(root m.Path, exclude []*regexp.Regexp) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check
	// existence before committing to a scan.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// sourceExts are the file extensions any registered framework adapter
// could possibly claim. Everything else is skipped during traversal.
var sourceExts = map[string]bool{
	".py": true, ".php": true, ".rb": true, ".java": true, ".go": true,
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".mjs": true, ".cjs": true,
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git": true, "vendor": true, "node_modules": true,
	"__pycache__": true, ".venv": true, "dist": true, "build": true,
}

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance
// ready to be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListFiles walks root and returns every scannable source file in
// traversal order.
func (a *LocalSourceFSAdapter) ListFiles(root m.Path, exclude []*regexp.Regexp) ([]m.Path, error) {
	rootStr, recursive, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(m.Path(rootStr))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if scannableFile(rootStr, exclude) {
			return []m.Path{m.Path(rootStr)}, nil
		}

		return nil, nil
	}

	var files []m.Path

	err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path == rootStr {
				return nil
			}

			if !recursive || skipDirs[filepath.Base(path)] {
				return filepath.SkipDir
			}

			return nil
		}

		if scannableFile(path, exclude) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func scannableFile(path string, exclude []*regexp.Regexp) bool {
	if !sourceExts[filepath.Ext(path)] {
		return false
	}

	for _, re := range exclude {
		if re.MatchString(path) {
			return false
		}
	}

	return true
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
