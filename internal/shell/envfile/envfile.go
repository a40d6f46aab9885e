// Package envfile implements the idempotent KEY=value upsert primitive
// over dotenv-style files. Every line other than the updated key is
// preserved byte-for-byte, comments and blanks included.
package envfile

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one KEY=value pair to upsert.
type Entry struct {
	Key   string
	Value string
}

// Upsert sets key=value in the file at path: the first existing
// assignment of the key is replaced in place, otherwise the assignment is
// appended. A missing file is created. Re-running with the same pair is a
// no-op on the file content.
func Upsert(path, key, value string) error {
	return UpsertAll(path, []Entry{{Key: key, Value: value}})
}

// UpsertAll applies several upserts in one read-modify-write pass,
// preserving the given order for appended keys.
func UpsertAll(path string, entries []Entry) error {
	raw, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	content := string(raw)
	for _, e := range entries {
		content = upsertLine(content, e.Key, e.Value)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write env file %s: %w", path, err)
	}
	return nil
}

// upsertLine is the pure find-or-append over raw dotenv content.
func upsertLine(content, key, value string) string {
	assignment := key + "=" + value

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, key+"=") {
			lines[i] = assignment
			return strings.Join(lines, "\n")
		}
	}

	if content == "" {
		return assignment + "\n"
	}
	if !strings.HasSuffix(content, "\n") {
		return content + "\n" + assignment + "\n"
	}
	return content + assignment + "\n"
}
