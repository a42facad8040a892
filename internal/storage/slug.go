package storage

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts a name into a URL-safe, lowercase, ASCII identifier:
// NFKD normalization strips accents (á→a, ñ→n), spaces and underscores
// become hyphens, anything outside [a-z0-9-] is dropped, runs of hyphens
// collapse. The result is capped at maxLen and falls back to "imagen" when
// nothing survives.
func Slugify(nombre string, maxLen int) string {
	s := strings.ToLower(nombre)
	s = norm.NFKD.String(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from NFKD decomposition
		case r == ' ' || r == '\t' || r == '_' || r == '-':
			b.WriteByte('-')
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if maxLen > 0 && len(slug) > maxLen {
		slug = strings.Trim(slug[:maxLen], "-")
	}
	if slug == "" {
		slug = "imagen"
	}
	return slug
}

// NombreUnico builds "prefijo/slug-YYYYMMDD-HHMMSS.ext". The slug is capped
// at 30 characters to leave room for the timestamp.
func NombreUnico(nombreArchivo, prefijo string, ahora time.Time) string {
	ext := strings.ToLower(filepath.Ext(nombreArchivo))
	base := strings.TrimSuffix(filepath.Base(nombreArchivo), filepath.Ext(nombreArchivo))
	slug := Slugify(base, 30)
	return strings.Trim(prefijo, "/") + "/" + slug + "-" + ahora.Format("20060102-150405") + ext
}

// NombreSanitizado builds "prefijo/slug.ext" with no uniqueness component:
// two files whose names share a slug map to the same object and the second
// upload silently overwrites the first.
func NombreSanitizado(nombreArchivo, prefijo string) string {
	ext := strings.ToLower(filepath.Ext(nombreArchivo))
	base := strings.TrimSuffix(filepath.Base(nombreArchivo), filepath.Ext(nombreArchivo))
	slug := Slugify(base, 50)
	return strings.Trim(prefijo, "/") + "/" + slug + ext
}
