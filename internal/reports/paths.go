package reports

import (
	"fmt"
	"path/filepath"
)

const cyclesDir = "cycles"

// CyclePath builds the path to the cycle report for a given date.
func CyclePath(basePath, date string) string {
	return filepath.Join(basePath, cyclesDir, fmt.Sprintf("%s.json", date))
}
