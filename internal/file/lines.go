package file

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/pkgtools/depmatch/internal/log"
)

// ReadLines reads a line-oriented list file, returning one entry per
// non-blank line. Leading/trailing whitespace is trimmed and lines starting
// with "#" are skipped.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer log.CloseAndLogError(f, path)

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	return lines, nil
}
