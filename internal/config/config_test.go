package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationBuildLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   Application
		expected logrus.Level
		err      bool
	}{
		{
			name:     "default is warn",
			config:   Application{},
			expected: logrus.WarnLevel,
		},
		{
			name:     "quiet wins",
			config:   Application{Quiet: true, CliOptions: CliOnlyOptions{Verbosity: 2}},
			expected: logrus.PanicLevel,
		},
		{
			name:     "single -v is info",
			config:   Application{CliOptions: CliOnlyOptions{Verbosity: 1}},
			expected: logrus.InfoLevel,
		},
		{
			name:     "repeated -v is debug",
			config:   Application{CliOptions: CliOnlyOptions{Verbosity: 3}},
			expected: logrus.DebugLevel,
		},
		{
			name:     "explicit level",
			config:   Application{Log: Logging{Level: "error"}},
			expected: logrus.ErrorLevel,
		},
		{
			name:   "explicit level conflicts with -v",
			config: Application{Log: Logging{Level: "error"}, CliOptions: CliOnlyOptions{Verbosity: 1}},
			err:    true,
		},
		{
			name:   "bad level value",
			config: Application{Log: Logging{Level: "not-a-level"}},
			err:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := test.config
			err := cfg.Build()
			if test.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, cfg.Log.LevelOpt)
		})
	}
}
