package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoSuchLevel reports a level id outside the directory listing.
var ErrNoSuchLevel = errors.New("no such level")

// ListPaths returns every .json file directly under dir, sorted by path.
// The index of a path in this listing is the level's id everywhere else.
func ListPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("level: cannot list %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll reads every level under dir in listing order.
func LoadAll(dir string) ([]*Level, error) {
	paths, err := ListPaths(dir)
	if err != nil {
		return nil, err
	}
	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		lvl, err := Load(p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// LoadHeaders reads just the header of every level under dir. The title
// screen builds its list from these without decoding full levels.
func LoadHeaders(dir string) ([]Header, error) {
	paths, err := ListPaths(dir)
	if err != nil {
		return nil, err
	}
	headers := make([]Header, 0, len(paths))
	for _, p := range paths {
		h, err := ReadHeader(p)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// LoadByIndex loads the id-th level of the sorted listing.
func LoadByIndex(dir string, id int) (*Level, error) {
	paths, err := ListPaths(dir)
	if err != nil {
		return nil, err
	}
	if id < 0 || id >= len(paths) {
		return nil, fmt.Errorf("level: %w %d", ErrNoSuchLevel, id)
	}
	return Load(paths[id])
}

// NextFreePath returns the first dir/N.json (N = 0, 1, 2...) that does
// not exist yet. The editor saves new levels there.
func NextFreePath(dir string) (string, error) {
	for n := 0; ; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.json", n))
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("level: cannot probe %s: %w", path, err)
		}
	}
}
