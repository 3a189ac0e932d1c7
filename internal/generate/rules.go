package generate

import (
	"fmt"
	"os"
	"strings"
)

// LoadRules reads the newline-delimited rules file that gets embedded
// verbatim into generation and verification prompts. An empty path means no
// rules; the prompts then carry an empty rules block.
func LoadRules(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read rules file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
