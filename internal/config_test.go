package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "lox.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_LoadConfig(t *testing.T) {
	testCases := []struct {
		name      string
		contents  string
		expect    Config
		expectErr bool
	}{
		{
			name:     "empty file keeps defaults",
			contents: "",
			expect:   DefaultConfig(),
		},
		{
			name: "all keys",
			contents: `
max_tokens = 10
max_depth = 0
strict_numbers = true
log_level = "debug"
color = false
`,
			expect: Config{
				MaxTokens:     10,
				MaxDepth:      0,
				StrictNumbers: true,
				LogLevel:      "debug",
				Color:         false,
			},
		},
		{
			name:     "partial file",
			contents: "strict_numbers = true\n",
			expect: Config{
				MaxTokens:     defaultMaxTokens,
				MaxDepth:      defaultMaxDepth,
				StrictNumbers: true,
				LogLevel:      "warning",
				Color:         true,
			},
		},
		{
			name:      "negative limit",
			contents:  "max_depth = -1\n",
			expectErr: true,
		},
		{
			name:      "unknown log level",
			contents:  `log_level = "loud"`,
			expectErr: true,
		},
		{
			name:      "not toml",
			contents:  "max_tokens = = 3",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := LoadConfig(writeConfig(t, tc.contents))
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_LoadConfig_missingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Config_Validate(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.Validate())

	cfg.MaxTokens = -5
	assert.ErrorIs(cfg.Validate(), errNegativeLimit)

	cfg = DefaultConfig()
	cfg.LogLevel = ""
	assert.NoError(cfg.Validate())
}

func Test_Config_logger(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	assert.Equal(logrus.DebugLevel, cfg.logger().GetLevel())

	cfg.LogLevel = ""
	assert.Equal(logrus.WarnLevel, cfg.logger().GetLevel())

	custom := logrus.New()
	cfg.Logger = custom
	assert.Same(custom, cfg.logger())
}
