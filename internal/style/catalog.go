// ABOUTME: Style catalog resolving indexes and names to animation handles
// ABOUTME: Built-in styles plus optional user YAML files; misses degrade to nil

package style

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/halotui/halo/internal/log"
)

const defaultFrameIntervalMS = 150

// definition is the stored form of a style, as written in style files.
type definition struct {
	Name       string   `yaml:"name"`
	IntervalMS int      `yaml:"interval_ms"`
	Frames     []string `yaml:"frames"`
}

func (d definition) interval() time.Duration {
	ms := d.IntervalMS
	if ms <= 0 {
		ms = defaultFrameIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (d definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("style has no name")
	}
	if len(d.Frames) == 0 {
		return fmt.Errorf("style %q has no frames", d.Name)
	}
	return nil
}

// Catalog holds the ordered style set. Indexes are stable for the catalog's
// lifetime: built-ins first, then user styles in file-name order.
type Catalog struct {
	styles []definition
}

// NewCatalog creates a catalog containing the built-in styles.
func NewCatalog() *Catalog {
	return &Catalog{styles: builtins()}
}

// LoadDir appends styles from *.yaml files in dir. Unreadable or invalid
// files are skipped with a warning; a missing directory is not an error.
// A user style whose name collides with an existing one replaces it in
// place, keeping its index.
func (c *Catalog) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading style dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		def, err := loadFile(path)
		if err != nil {
			log.Warn("skipping style file %s: %v", path, err)
			continue
		}
		c.add(def)
	}
	return nil
}

func loadFile(path string) (definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return definition{}, err
	}
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return definition{}, fmt.Errorf("parsing: %w", err)
	}
	if err := def.validate(); err != nil {
		return definition{}, err
	}
	return def, nil
}

func (c *Catalog) add(def definition) {
	for i, existing := range c.styles {
		if existing.Name == def.Name {
			c.styles[i] = def
			return
		}
	}
	c.styles = append(c.styles, def)
}

// Count returns the number of styles in the catalog.
func (c *Catalog) Count() int { return len(c.styles) }

// Names returns style names in index order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.styles))
	for i, d := range c.styles {
		names[i] = d.Name
	}
	return names
}

// Resolve returns a fresh animation handle for the style at index, or nil
// when the index is out of range. Each call returns an independent handle;
// playback state is never shared between resolutions.
func (c *Catalog) Resolve(index int) *Animation {
	if index < 0 || index >= len(c.styles) {
		return nil
	}
	return newAnimation(c.styles[index])
}

// IndexOf returns the index of the named style.
func (c *Catalog) IndexOf(name string) (int, bool) {
	for i, d := range c.styles {
		if d.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ResolveName resolves a style by exact name. On a miss the error carries
// the nearest fuzzy match as a suggestion when one exists.
func (c *Catalog) ResolveName(name string) (*Animation, error) {
	if idx, ok := c.IndexOf(name); ok {
		return c.Resolve(idx), nil
	}
	if matches := fuzzy.Find(name, c.Names()); len(matches) > 0 {
		return nil, fmt.Errorf("unknown style %q (did you mean %q?)", name, matches[0].Str)
	}
	return nil, fmt.Errorf("unknown style %q", name)
}
