package samples

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("sample not found")

// Sample is one program in the catalog. Name is the file name without the
// extension.
type Sample struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Catalog lists source files in a single directory.
type Catalog struct {
	Dir       string
	Extension string
}

func New(dir, ext string) *Catalog {
	return &Catalog{Dir: dir, Extension: ext}
}

// List returns the samples sorted by name. A missing directory is an empty
// catalog.
func (c *Catalog) List() ([]Sample, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Sample{}, nil
		}
		return nil, errors.Wrapf(err, "listing samples in %s", c.Dir)
	}

	out := []Sample{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != c.Extension {
			continue
		}
		out = append(out, Sample{
			Name: strings.TrimSuffix(e.Name(), c.Extension),
			Path: filepath.Join(c.Dir, e.Name()),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Find resolves query to a sample: an exact name wins, otherwise the best
// case-insensitive fuzzy match.
func (c *Catalog) Find(query string) (Sample, error) {
	all, err := c.List()
	if err != nil {
		return Sample{}, err
	}

	names := make([]string, len(all))
	byName := make(map[string]Sample, len(all))
	for i, s := range all {
		names[i] = s.Name
		byName[s.Name] = s
	}
	if s, ok := byName[strings.TrimSuffix(query, c.Extension)]; ok {
		return s, nil
	}

	ranks := fuzzy.RankFindFold(query, names)
	if len(ranks) == 0 {
		return Sample{}, errors.Wrapf(ErrNotFound, "%q", query)
	}
	sort.Stable(ranks)
	return byName[ranks[0].Target], nil
}

// Read returns the source of the sample named by query.
func (c *Catalog) Read(query string) (Sample, string, error) {
	s, err := c.Find(query)
	if err != nil {
		return Sample{}, "", err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return Sample{}, "", errors.Wrapf(err, "reading sample %s", s.Path)
	}
	return s, string(b), nil
}
