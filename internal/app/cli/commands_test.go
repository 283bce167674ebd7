package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinscope/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		expectedType    CommandType
		expectedSubject string
		expectedTab     string
		expectedConfig  string
	}{
		{
			name:           "no args - help",
			args:           []string{},
			expectedType:   CommandHelp,
			expectedConfig: config.ConfigFile,
		},
		{
			name:            "view command",
			args:            []string{"view", "bitcoin"},
			expectedType:    CommandView,
			expectedSubject: "bitcoin",
			expectedConfig:  config.ConfigFile,
		},
		{
			name:            "view alias with tab",
			args:            []string{"v", "ethereum", "--tab", "markets"},
			expectedType:    CommandView,
			expectedSubject: "ethereum",
			expectedTab:     "markets",
			expectedConfig:  config.ConfigFile,
		},
		{
			name:            "view with short tab flag",
			args:            []string{"view", "bitcoin", "-t", "overview"},
			expectedType:    CommandView,
			expectedSubject: "bitcoin",
			expectedTab:     "overview",
			expectedConfig:  config.ConfigFile,
		},
		{
			name:            "show command",
			args:            []string{"show", "dogecoin"},
			expectedType:    CommandShow,
			expectedSubject: "dogecoin",
			expectedConfig:  config.ConfigFile,
		},
		{
			name:           "list command",
			args:           []string{"list"},
			expectedType:   CommandList,
			expectedConfig: config.ConfigFile,
		},
		{
			name:           "list alias",
			args:           []string{"ls"},
			expectedType:   CommandList,
			expectedConfig: config.ConfigFile,
		},
		{
			name:           "version command",
			args:           []string{"version"},
			expectedType:   CommandVersion,
			expectedConfig: config.ConfigFile,
		},
		{
			name:           "--version flag",
			args:           []string{"--version"},
			expectedType:   CommandVersion,
			expectedConfig: config.ConfigFile,
		},
		{
			name:           "--help flag",
			args:           []string{"--help"},
			expectedType:   CommandHelp,
			expectedConfig: config.ConfigFile,
		},
		{
			name:           "custom config",
			args:           []string{"--config", "other.yaml", "list"},
			expectedType:   CommandList,
			expectedConfig: "other.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedType, result.Type)
			assert.Equal(t, tt.expectedSubject, result.Subject)
			assert.Equal(t, tt.expectedTab, result.Tab)
			assert.Equal(t, tt.expectedConfig, result.Config)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "view without coin", args: []string{"view"}},
		{name: "show with two coins", args: []string{"show", "bitcoin", "ethereum"}},
		{name: "list with args", args: []string{"list", "bitcoin"}},
		{name: "unknown flag", args: []string{"--unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
