// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package distro

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseOSRelease reads an os-release(5) file: newline-separated
// KEY=value assignments, "#" comment lines, and blank lines. Values may
// be unquoted, single-quoted, or double-quoted. Inside double quotes
// the backslash escapes \" \\ \` and \$ are honored.
//
// Lines that are not a valid assignment are skipped rather than
// rejected, matching how systemd and most consumers treat the file.
// The only error returned is a read error from r.
func ParseOSRelease(r io.Reader) (map[string]string, error) {
	fields := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if !validKey(key) {
			continue
		}

		value, ok := unquoteValue(strings.TrimSpace(raw))
		if !ok {
			continue
		}
		fields[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading os-release: %w", err)
	}
	return fields, nil
}

// validKey accepts shell variable names: letters, digits, and
// underscores, not starting with a digit.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, character := range key {
		switch {
		case character == '_':
		case character >= 'A' && character <= 'Z':
		case character >= 'a' && character <= 'z':
		case character >= '0' && character <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// unquoteValue strips one level of shell quoting. Returns false for an
// unterminated quote.
func unquoteValue(raw string) (string, bool) {
	if raw == "" {
		return "", true
	}

	switch raw[0] {
	case '\'':
		if len(raw) < 2 || raw[len(raw)-1] != '\'' {
			return "", false
		}
		return raw[1 : len(raw)-1], true

	case '"':
		if len(raw) < 2 || raw[len(raw)-1] != '"' {
			return "", false
		}
		inner := raw[1 : len(raw)-1]
		var builder strings.Builder
		builder.Grow(len(inner))
		for i := 0; i < len(inner); i++ {
			character := inner[i]
			if character == '\\' && i+1 < len(inner) {
				switch next := inner[i+1]; next {
				case '"', '\\', '`', '$':
					builder.WriteByte(next)
					i++
					continue
				}
			}
			builder.WriteByte(character)
		}
		return builder.String(), true
	}

	// Unquoted values end at the first whitespace; anything after it
	// is not part of a valid assignment.
	if index := strings.IndexAny(raw, " \t"); index >= 0 {
		raw = raw[:index]
	}
	return raw, true
}

// releaseFromFields builds a Release from parsed os-release fields.
func releaseFromFields(fields map[string]string, source string) Release {
	release := Release{
		ID:         normalizeID(fields["ID"]),
		IDLike:     splitIDLike(fields["ID_LIKE"]),
		Name:       fields["NAME"],
		PrettyName: fields["PRETTY_NAME"],
		VersionID:  fields["VERSION_ID"],
		Codename:   fields["VERSION_CODENAME"],
		Source:     source,
	}
	if release.ID == "" {
		// os-release(5) specifies "linux" when ID is absent.
		release.ID = "linux"
	}
	release.Family = Classify(release.ID, release.IDLike)
	return release
}

// splitIDLike splits the space-separated ID_LIKE list.
func splitIDLike(value string) []string {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return nil
	}
	for i := range parts {
		parts[i] = normalizeID(parts[i])
	}
	return parts
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
