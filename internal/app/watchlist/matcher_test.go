package watchlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMatcher(t *testing.T) {
	tests := []struct {
		name     string
		eligible []string
		ignores  []string
		wantErr  bool
	}{
		{name: "Wildcard", eligible: []string{"*"}},
		{name: "Alternatives", eligible: []string{"{bitcoin,ethereum}"}, ignores: []string{"*-test"}},
		{name: "Invalid pattern", eligible: []string{"[bitcoin"}, wantErr: true},
		{name: "Invalid ignore", eligible: []string{"*"}, ignores: []string{"{a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.eligible, tt.ignores)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func Test_Matcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		eligible []string
		ignores  []string
		uid      string
		expected bool
	}{
		{name: "Wildcard matches", eligible: []string{"*"}, uid: "bitcoin", expected: true},
		{name: "No patterns match nothing", eligible: nil, uid: "bitcoin", expected: false},
		{name: "Ignore wins", eligible: []string{"*"}, ignores: []string{"doge*"}, uid: "dogecoin", expected: false},
		{name: "Ignore leaves others", eligible: []string{"*"}, ignores: []string{"doge*"}, uid: "bitcoin", expected: true},
		{name: "Alternatives", eligible: []string{"{bitcoin,ethereum}"}, uid: "ethereum", expected: true},
		{name: "Case and spaces are normalized", eligible: []string{"Bitcoin"}, uid: " BITCOIN ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.eligible, tt.ignores)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, m.Match(tt.uid))
		})
	}
}
