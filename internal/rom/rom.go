package rom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrNoRoms = errors.New("no roms found")

// file extensions accepted when scanning a directory, roms without
// an extension are accepted too
var extensions = map[string]bool{
	".ch8": true,
	".c8":  true,
	"":     true,
}

// Load reads a rom image. There is no header, the bytes are the program.
func Load(path string) ([]uint8, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}
	return rom, nil
}

// Catalog is the set of roms that can be switched between
type Catalog struct {
	paths   []string
	current int
}

// Open builds a catalog from a single rom file or from every rom in a directory
func Open(path string) (*Catalog, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening roms: %w", err)
	}
	if !fi.IsDir() {
		return &Catalog{paths: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("opening roms: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRoms, path)
	}
	sort.Strings(paths)
	return &Catalog{paths: paths}, nil
}

func (c *Catalog) Len() int {
	return len(c.paths)
}

func (c *Catalog) Path() string {
	return c.paths[c.current]
}

// Name is the upper cased file name of the current rom without its extension
func (c *Catalog) Name() string {
	base := filepath.Base(c.Path())
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Current loads the selected rom
func (c *Catalog) Current() ([]uint8, error) {
	return Load(c.Path())
}

// Next selects the following rom, wrapping around, and loads it
func (c *Catalog) Next() ([]uint8, error) {
	c.current = (c.current + 1) % len(c.paths)
	return c.Current()
}
