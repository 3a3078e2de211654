package utils

import (
	"path/filepath"
	"strings"
)

// StdioPath names standard input or output on the command line.
const StdioPath = "-"

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// DefaultOutputPath replaces the extension of input with ".py". Programs
// read from standard input compile to "a.py".
func DefaultOutputPath(input string) string {
	if input == StdioPath || input == "" {
		return "a.py"
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".py"
}
