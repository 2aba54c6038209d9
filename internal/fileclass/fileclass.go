// Package fileclass holds the single recognized-extension table the
// Indexer and Watcher both consult, so the two never drift apart on what
// counts as an indexable file.
package fileclass

import (
	"path/filepath"
	"strings"
)

// textIndexable extensions contribute their file content to Body.
var textIndexable = buildSet(
	"txt", "md", "json", "rs", "py", "js", "ts", "tsx", "jsx", "html", "css",
	"xml", "yaml", "yml", "toml", "ini", "conf", "log", "csv", "sh", "bat",
	"ps1", "c", "cpp", "h", "hpp", "java", "go", "rb", "php", "vue", "svelte",
	"sql", "r", "scala", "kt", "swift", "dart", "lua", "pl", "pm",
)

// filenameOnly extensions are recognized (indexed) but never read; Body
// falls back to DisplayName so filename tokens remain searchable.
var filenameOnly = buildSet(
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt", "ods", "odp",
	"epub", "mobi", "azw", "azw3", "fb2", "djvu", "jpg", "jpeg", "png", "gif",
	"bmp", "svg", "webp", "ico", "tiff", "mp3", "wav", "flac", "ogg", "mp4",
	"mkv", "avi", "mov", "wmv", "zip", "rar", "7z", "tar", "gz", "bz2", "exe",
	"msi", "dmg", "app", "apk", "iso", "torrent",
)

func buildSet(exts ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[e] = struct{}{}
	}
	return set
}

// Ext returns the lowercased extension of name without its leading dot,
// the same normalization every classification call below relies on.
func Ext(name string) string {
	e := filepath.Ext(name)
	return strings.ToLower(strings.TrimPrefix(e, "."))
}

// Recognized reports whether ext (already normalized via Ext, or a raw
// extension with or without a leading dot) belongs to either class.
func Recognized(ext string) bool {
	ext = normalize(ext)
	if _, ok := textIndexable[ext]; ok {
		return true
	}
	_, ok := filenameOnly[ext]
	return ok
}

// TextIndexable reports whether ext's file content should be read into Body.
func TextIndexable(ext string) bool {
	_, ok := textIndexable[normalize(ext)]
	return ok
}

// Classify returns (recognized, textIndexable) for ext in one call, the
// shape both the Indexer's content policy and the Watcher's event filter
// want.
func Classify(ext string) (recognized bool, textIndexable bool) {
	ext = normalize(ext)
	if TextIndexable(ext) {
		return true, true
	}
	if _, ok := filenameOnly[ext]; ok {
		return true, false
	}
	return false, false
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
