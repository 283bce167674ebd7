package watchlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinscope/internal/app/errors"
	"coinscope/internal/config"
)

func testStore(t *testing.T) (Store, string) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Watchlist.Path = filepath.Join(t.TempDir(), config.WatchlistFile)

	return NewStore(cfg), cfg.Watchlist.Path
}

func Test_Store_Load(t *testing.T) {
	tests := []struct {
		name          string
		content       *string
		expectedError error
		expectedFavs  []string
		expectedAlert AlertRule
	}{
		{
			name:         "Missing file",
			content:      nil,
			expectedFavs: []string{},
		},
		{
			name:         "Empty file",
			content:      ptr("  \n"),
			expectedFavs: []string{},
		},
		{
			name:          "Valid file",
			content:       ptr("favorites:\n  - ethereum\n  - bitcoin\nalerts:\n  bitcoin:\n    change: 5\n    trend: true\n"),
			expectedFavs:  []string{"bitcoin", "ethereum"},
			expectedAlert: AlertRule{Change: 5, Trend: true},
		},
		{
			name:          "Malformed file",
			content:       ptr("favorites: [bitcoin\n"),
			expectedError: errors.ErrFailedToParseWatchlist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := testStore(t)

			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			doc, err := s.Load()

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedFavs, doc.Favorites)
			assert.Equal(t, tt.expectedAlert, doc.Alert("bitcoin"))
		})
	}
}

func Test_Store_SaveAndLoad(t *testing.T) {
	s, path := testStore(t)

	doc := NewDocument()
	doc.SetFavorite("dogecoin", true)
	doc.SetFavorite("bitcoin", true)
	doc.SetAlert("bitcoin", AlertRule{Change: 2})

	require.NoError(t, s.Save(doc))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(config.WatchlistFileMode), info.Mode().Perm())

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin", "dogecoin"}, loaded.Favorites)
	assert.Equal(t, AlertRule{Change: 2}, loaded.Alert("bitcoin"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func Test_Store_Save_MissingDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Watchlist.Path = filepath.Join(t.TempDir(), "missing", config.WatchlistFile)

	err := NewStore(cfg).Save(NewDocument())

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrFailedToWriteWatchlist)
}

func Test_Document_SetFavorite(t *testing.T) {
	doc := NewDocument()

	doc.SetFavorite("bitcoin", true)
	doc.SetFavorite("bitcoin", true)
	assert.Equal(t, []string{"bitcoin"}, doc.Favorites)
	assert.True(t, doc.IsFavorite("bitcoin"))

	doc.SetFavorite("bitcoin", false)
	doc.SetFavorite("bitcoin", false)
	assert.Empty(t, doc.Favorites)
	assert.False(t, doc.IsFavorite("bitcoin"))
}

func Test_Document_SetAlert(t *testing.T) {
	doc := &Document{}

	doc.SetAlert("bitcoin", AlertRule{Trend: true})
	assert.True(t, doc.Alert("bitcoin").Active())

	doc.SetAlert("bitcoin", AlertRule{})
	assert.NotContains(t, doc.Alerts, "bitcoin")
	assert.False(t, doc.Alert("bitcoin").Active())
}

func Test_Document_Clone(t *testing.T) {
	doc := NewDocument()
	doc.SetFavorite("bitcoin", true)
	doc.SetAlert("bitcoin", AlertRule{Change: 5})

	clone := doc.Clone()
	clone.SetFavorite("ethereum", true)
	clone.SetAlert("bitcoin", AlertRule{})

	assert.Equal(t, []string{"bitcoin"}, doc.Favorites)
	assert.Equal(t, AlertRule{Change: 5}, doc.Alert("bitcoin"))
}

func ptr(s string) *string {
	return &s
}
