package grocery

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLines reads a line-delimited grocery list file, one item per line,
// trimming each line.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grocery list %s: %w", path, err)
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		items = append(items, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grocery list %s: %w", path, err)
	}
	return items, nil
}
