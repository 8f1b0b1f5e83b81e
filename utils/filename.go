package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Image extensions accepted by the file-management endpoints.
var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Catalog listing accepts a slightly wider set (svg renders fine in the UI
// but is not an upload target).
var catalogImageRegex = regexp.MustCompile(`(?i)\.(png|jpe?g|webp|svg|gif)$`)

var (
	safeNameRegex       = regexp.MustCompile(`(?i)^[\w \-.]+\.[a-z0-9]+$`)
	safeRenameNameRegex = regexp.MustCompile(`(?i)^[\w \-.()]+\.[a-z0-9]+$`)
)

// SafeImageFilename reports whether name is safe to use as a charm file on
// disk: no path separators, an allow-listed image extension, and a
// restrictive character allow-list. This guards the charms directory against
// traversal; keep it in sync with the rename variant below.
func SafeImageFilename(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	return safeNameRegex.MatchString(name)
}

// SafeRenameFilename is SafeImageFilename but additionally permits
// parentheses, which the letter/number charms use as index suffixes.
func SafeRenameFilename(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	return safeRenameNameRegex.MatchString(name)
}

// IsCatalogImage reports whether a directory entry should appear in the
// charm catalog.
func IsCatalogImage(name string) bool {
	return catalogImageRegex.MatchString(name)
}

// IsSoldOut reports whether a charm filename marks the item as sold out.
// Sold-out determination is purely filename-based by convention.
func IsSoldOut(filename string) bool {
	return strings.Contains(strings.ToLower(filename), "sold")
}

var (
	separatorRegex     = regexp.MustCompile(`[_\-]+`)
	multiSpaceRegex    = regexp.MustCompile(`\s+`)
	trailingIndexRegex = regexp.MustCompile(`\s*\(\d+\)\s*$`)
	parenIndexRegex    = regexp.MustCompile(`\((\d+)\)`)
	firstLetterRegex   = regexp.MustCompile(`(?i)[a-z]`)
)

// DisplayName derives the human-readable charm name from its filename:
// extension stripped, separators replaced with spaces, a trailing
// parenthesized index removed, whitespace collapsed and trimmed.
func DisplayName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = separatorRegex.ReplaceAllString(name, " ")
	name = trailingIndexRegex.ReplaceAllString(name, "")
	name = multiSpaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

const letterOrder = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SortLetter derives the single letter a filename sorts by in the A-Z and
// All views: the letter mapped from a parenthesized numeric suffix
// (1 -> A, 2 -> B, out-of-range -> Z), otherwise the first alphabetic
// character, uppercased. Filenames with neither sort as Z.
func SortLetter(filename string) string {
	if m := parenIndexRegex.FindStringSubmatch(filename); m != nil {
		n := 0
		for _, ch := range m[1] {
			n = n*10 + int(ch-'0')
		}
		if n >= 1 && n <= len(letterOrder) {
			return string(letterOrder[n-1])
		}
		return "Z"
	}
	if m := firstLetterRegex.FindString(filename); m != "" {
		return strings.ToUpper(m)
	}
	return "Z"
}
