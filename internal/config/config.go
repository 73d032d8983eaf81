// Package config defines TidyBot's configuration model and the store that
// loads and persists it.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed categories checked first during classification, in this order.
// User-added categories follow in name order, the fallback category last.
var priorityOrder = []string{"Archives", "Documents", "Graphics", "Programs"}

// Config represents the application configuration structure.
type Config struct {
	Initialized   bool                `json:"initialized"`     // True once category folders have been created
	DownloadsPath string              `json:"downloads_path"`  // Directory to organize; may use ~ shorthand on disk
	Categories    map[string][]string `json:"file_categories"` // Category name -> extensions (leading dot, lowercase)
}

// Default returns a fresh copy of the default configuration.
func Default() *Config {
	return &Config{
		Initialized:   false,
		DownloadsPath: "~/Downloads",
		Categories: map[string][]string{
			"Archives": {
				".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso", ".dmg", ".pkg",
			},
			"Documents": {
				".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx",
				".ppt", ".pptx", ".csv", ".md", ".epub", ".mobi",
			},
			"Graphics": {
				".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".tiff",
				".psd", ".raw", ".ico", ".heic",
				".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm", ".m4v",
				".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a", ".aiff", ".mid", ".midi",
			},
			"Others": {},
			"Programs": {
				".exe", ".msi", ".deb", ".rpm", ".appimage", ".bat", ".sh", ".cmd", ".apk", ".dmg", ".pkg",
			},
		},
	}
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(c.DownloadsPath) == "" {
		return fmt.Errorf("downloads_path must be set")
	}

	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one file category is required")
	}

	fallbacks := 0
	for name, exts := range c.Categories {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("category name cannot be empty")
		}
		if len(exts) == 0 {
			fallbacks++
			continue
		}
		for _, ext := range exts {
			if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("category %s: invalid extension %q", name, ext)
			}
		}
	}
	if fallbacks != 1 {
		return fmt.Errorf("exactly one fallback category (empty extension list) is required, found %d", fallbacks)
	}

	return nil
}

// Normalize lowercases every extension, trims whitespace, and adds missing
// leading dots. Empty entries are dropped.
func (c *Config) Normalize() {
	for name, exts := range c.Categories {
		normalized := make([]string, 0, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			normalized = append(normalized, ext)
		}
		c.Categories[name] = normalized
	}
}

// CategoryNames returns the category names in classification priority order:
// the fixed categories first, then user-added categories sorted by name, and
// the fallback category last.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	seen := make(map[string]bool, len(c.Categories))

	for _, name := range priorityOrder {
		if exts, ok := c.Categories[name]; ok && len(exts) > 0 {
			names = append(names, name)
			seen[name] = true
		}
	}

	var rest, fallbacks []string
	for name, exts := range c.Categories {
		if seen[name] {
			continue
		}
		if len(exts) == 0 {
			fallbacks = append(fallbacks, name)
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)
	sort.Strings(fallbacks)

	names = append(names, rest...)
	return append(names, fallbacks...)
}

// FallbackCategory returns the category with the empty extension list, or ""
// if the configuration has none.
func (c *Config) FallbackCategory() string {
	var fallbacks []string
	for name, exts := range c.Categories {
		if len(exts) == 0 {
			fallbacks = append(fallbacks, name)
		}
	}
	if len(fallbacks) == 0 {
		return ""
	}
	sort.Strings(fallbacks)
	return fallbacks[0]
}
