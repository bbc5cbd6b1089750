package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path.
// A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := Tail(file, maxLines)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Tail keeps the last maxLines lines of r in a ring buffer.
func Tail(r io.Reader, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	lines := make([]string, maxLines)
	for i := range lines {
		lines[i] = ring[(idx+i)%maxLines]
	}
	return lines, nil
}

// AtLeast keeps lines written by slog's text handler at or above min.
// Lines without a level=... attribute are dropped.
func AtLeast(lines []string, min slog.Level) []string {
	var out []string
	for _, line := range lines {
		level, ok := Level(line)
		if ok && level >= min {
			out = append(out, line)
		}
	}
	return out
}

// Level extracts the level=... attribute of a slog text line.
func Level(line string) (slog.Level, bool) {
	for _, field := range strings.Fields(line) {
		value, found := strings.CutPrefix(field, "level=")
		if !found {
			continue
		}
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return 0, false
		}
		return level, true
	}
	return 0, false
}
