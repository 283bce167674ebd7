//go:generate mockgen -source=store.go -destination=store_mock.go -package=watchlist
package watchlist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"go.yaml.in/yaml/v3"

	"coinscope/internal/app/errors"
	"coinscope/internal/config"
)

// AlertRule is the persisted alert setting of one subject
type AlertRule struct {
	Change int  `yaml:"change,omitempty"`
	Trend  bool `yaml:"trend,omitempty"`
}

// Active reports whether the rule enables any alert
func (r AlertRule) Active() bool {
	return r.Change > 0 || r.Trend
}

// Document is the on-disk watchlist
type Document struct {
	Favorites []string             `yaml:"favorites"`
	Alerts    map[string]AlertRule `yaml:"alerts,omitempty"`
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{
		Favorites: []string{},
		Alerts:    make(map[string]AlertRule),
	}
}

// IsFavorite reports whether uid is on the watchlist
func (d *Document) IsFavorite(uid string) bool {
	return slices.Contains(d.Favorites, uid)
}

// SetFavorite adds or removes uid, keeping favorites sorted
func (d *Document) SetFavorite(uid string, value bool) {
	if d.IsFavorite(uid) == value {
		return
	}

	if value {
		d.Favorites = append(d.Favorites, uid)
		sort.Strings(d.Favorites)

		return
	}

	d.Favorites = slices.DeleteFunc(d.Favorites, func(s string) bool { return s == uid })
}

// Alert returns the alert rule of uid, zero when none is set
func (d *Document) Alert(uid string) AlertRule {
	return d.Alerts[uid]
}

// SetAlert stores the rule of uid, an inactive rule removes the entry
func (d *Document) SetAlert(uid string, rule AlertRule) {
	if d.Alerts == nil {
		d.Alerts = make(map[string]AlertRule)
	}

	if !rule.Active() {
		delete(d.Alerts, uid)
		return
	}

	d.Alerts[uid] = rule
}

// Clone returns a deep copy
func (d *Document) Clone() *Document {
	out := &Document{
		Favorites: slices.Clone(d.Favorites),
		Alerts:    make(map[string]AlertRule, len(d.Alerts)),
	}

	for uid, rule := range d.Alerts {
		out.Alerts[uid] = rule
	}

	return out
}

// Store persists the watchlist document
type Store interface {
	Path() string
	Load() (*Document, error)
	Save(doc *Document) error
}

type store struct {
	path string
}

// NewStore creates a YAML store at the configured path
func NewStore(cfg *config.Config) Store {
	return &store{path: cfg.Watchlist.Path}
}

func (s *store) Path() string {
	return s.path
}

// Load reads the document, a missing file yields an empty document
func (s *store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}

		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadWatchlist, err)
	}

	doc := NewDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseWatchlist, err)
	}

	if doc.Favorites == nil {
		doc.Favorites = []string{}
	}

	if doc.Alerts == nil {
		doc.Alerts = make(map[string]AlertRule)
	}

	sort.Strings(doc.Favorites)

	return doc, nil
}

// Save writes the document atomically through a temp file in the same directory
func (s *store) Save(doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteWatchlist, err)
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".watchlist-*.yaml")
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteWatchlist, err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteWatchlist, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteWatchlist, err)
	}

	if err := os.Chmod(tmpName, config.WatchlistFileMode); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteWatchlist, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteWatchlist, err)
	}

	return nil
}
