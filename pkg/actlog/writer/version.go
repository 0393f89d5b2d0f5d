package writer

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var outputNamePattern = regexp.MustCompile(`^activity_log_([0-9]+)\.xlsx$`)

// NextFilename scans dir for existing activity_log_<n>.xlsx files and
// returns the next versioned name, n = highest existing + 1 (1 when
// none exist). Files not matching the pattern are ignored.
func NextFilename(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	highest := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := outputNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("activity_log_%d.xlsx", highest+1), nil
}
