package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinscope/internal/app/errors"
)

func descriptors() []Descriptor {
	return []Descriptor{
		{ID: Overview, Label: "Overview", Factory: func() Page { return nil }},
		{ID: Markets, Label: "Markets", Factory: func() Page { return nil }},
	}
}

func Test_NewRegistry(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
		wantErr     error
		wantLen     int
	}{
		{name: "two tabs", descriptors: descriptors(), wantLen: 2},
		{name: "single tab", descriptors: descriptors()[:1], wantLen: 1},
		{name: "empty", descriptors: nil, wantErr: errors.ErrEmptyRegistry},
		{
			name:        "duplicate id",
			descriptors: []Descriptor{{ID: Overview}, {ID: Markets}, {ID: Overview}},
			wantErr:     errors.ErrDuplicateTab,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.descriptors...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, r.Len())
		})
	}
}

func Test_Registry_Tabs(t *testing.T) {
	r, err := NewRegistry(descriptors()...)
	require.NoError(t, err)

	tabs := r.Tabs()
	require.Len(t, tabs, 2)
	assert.Equal(t, Overview, tabs[0].ID)
	assert.Equal(t, Markets, tabs[1].ID)

	tabs[0].ID = "mutated"
	assert.Equal(t, Overview, r.Tabs()[0].ID, "Tabs must return a copy")
}

func Test_Registry_IndexOf(t *testing.T) {
	r, err := NewRegistry(descriptors()...)
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       ID
		expected int
		wantErr  error
	}{
		{name: "first", id: Overview, expected: 0},
		{name: "second", id: Markets, expected: 1},
		{name: "unknown", id: "news", expected: -1, wantErr: errors.ErrUnknownTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := r.IndexOf(tt.id)

			assert.Equal(t, tt.expected, index)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Registry_Lookup(t *testing.T) {
	r, err := NewRegistry(descriptors()...)
	require.NoError(t, err)

	d, err := r.Lookup(Markets)
	require.NoError(t, err)
	assert.Equal(t, "Markets", d.Label)

	_, err = r.Lookup("news")
	assert.ErrorIs(t, err, errors.ErrUnknownTab)
}

func Test_Registry_At(t *testing.T) {
	r, err := NewRegistry(descriptors()...)
	require.NoError(t, err)

	d, ok := r.At(1)
	assert.True(t, ok)
	assert.Equal(t, Markets, d.ID)

	_, ok = r.At(-1)
	assert.False(t, ok)

	_, ok = r.At(2)
	assert.False(t, ok)
}

func Test_ID_String(t *testing.T) {
	assert.Equal(t, "overview", Overview.String())
	assert.Equal(t, "markets", Markets.String())
}
