package organize

import (
	"strings"

	"github.com/ProHeartly/tidyBot/internal/config"
)

// extensionOf returns the lowercased extension of a file name including the
// leading dot. Names without a dot, dotfiles like ".bashrc", and names ending
// in a dot have no extension.
func extensionOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i:])
}

// splitName splits a file name into stem and extension using the same rule as
// extensionOf: "archive.tar.gz" -> ("archive.tar", ".gz"). The extension
// keeps its original case.
func splitName(name string) (string, string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// Classifier assigns files to categories by extension.
type Classifier struct {
	order    []string
	lookup   map[string]map[string]struct{}
	fallback string
}

// NewClassifier snapshots the category table of cfg into per-category lookup
// sets plus the priority-ordered name list.
func NewClassifier(cfg *config.Config) *Classifier {
	c := &Classifier{
		order:    cfg.CategoryNames(),
		lookup:   make(map[string]map[string]struct{}, len(cfg.Categories)),
		fallback: cfg.FallbackCategory(),
	}
	for name, exts := range cfg.Categories {
		set := make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			set[strings.ToLower(ext)] = struct{}{}
		}
		c.lookup[name] = set
	}
	return c
}

// Classify returns the category for a file name. Categories are checked in
// priority order, so an extension listed in several categories goes to the
// first one. Anything unmatched lands in the fallback category.
func (c *Classifier) Classify(name string) string {
	ext := extensionOf(name)
	if ext != "" {
		for _, category := range c.order {
			if _, ok := c.lookup[category][ext]; ok {
				return category
			}
		}
	}
	return c.fallback
}
