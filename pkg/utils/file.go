package utils

import (
	"bufio"
	"os"
	"strings"
)

// WriteFile writes content to a file
func WriteFile(path string, data []byte) error {
	// Security: Use 0600 permissions to restrict access to the file owner
	return os.WriteFile(path, data, 0600)
}

// LoadLines reads a file into a slice of non-empty, trimmed lines.
// Lines starting with '#' are treated as comments and skipped.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
