// Package output writes generated wordlists and analysis reports as
// newline-terminated UTF-8 lines.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteLines writes each line to w followed by a single newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile writes the lines to path, creating parent directories as
// needed. An existing file is replaced.
func WriteFile(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := WriteLines(f, lines); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
