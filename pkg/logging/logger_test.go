package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLogEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STAMP_JSON_LOG", "")
	t.Setenv("STAMP_LOG_LEVEL", "")
	t.Setenv("STAMP_LOG_PATH", "")
}

// decodeJSONLine parses the last log line; debug-level loggers also emit
// their own "Log level" entry on construction.
func decodeJSONLine(t *testing.T, out []byte) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestToolLoggerJSONViaEnv(t *testing.T) {
	clearLogEnv(t)
	t.Setenv("STAMP_JSON_LOG", "1")

	var out bytes.Buffer
	logger := newToolLogger("test-tool", "info", &out)
	logger.Info("hello", "key", "value")

	entry := decodeJSONLine(t, out.Bytes())
	assert.Equal(t, "hello", entry["@message"])
	assert.Equal(t, "info", entry["@level"])
	assert.Equal(t, "value", entry["key"])
}

func TestToolLoggerJSONViaLevelPrefix(t *testing.T) {
	clearLogEnv(t)

	var out bytes.Buffer
	logger := newToolLogger("test-tool", "json:debug", &out)
	logger.Debug("details")

	entry := decodeJSONLine(t, out.Bytes())
	assert.Equal(t, "details", entry["@message"])
	assert.Equal(t, "debug", entry["@level"])
}

func TestToolLoggerBareJSONLevelDefaultsToInfo(t *testing.T) {
	clearLogEnv(t)

	var out bytes.Buffer
	logger := newToolLogger("test-tool", "json", &out)
	logger.Debug("hidden")
	assert.Empty(t, out.Bytes(), "bare json level means info, debug is filtered")

	logger.Info("shown")
	entry := decodeJSONLine(t, out.Bytes())
	assert.Equal(t, "shown", entry["@message"])
}

func TestToolLoggerTextOutputIsPrefixed(t *testing.T) {
	clearLogEnv(t)

	var out bytes.Buffer
	logger := newToolLogger("test-tool", "info", &out)
	logger.Info("hello")

	assert.Contains(t, out.String(), "🖍️ ")
	assert.Contains(t, out.String(), "[INFO]")
	assert.Contains(t, out.String(), "hello")
}

func TestNewLoggerHonorsJSONEnv(t *testing.T) {
	clearLogEnv(t)
	t.Setenv("STAMP_JSON_LOG", "1")

	var out bytes.Buffer
	logger := NewLogger("api", "info", &out)
	logger.Info("structured")

	entry := decodeJSONLine(t, out.Bytes())
	assert.Equal(t, "structured", entry["@message"])
	assert.Equal(t, "api", entry["@module"])
}

func TestToolLoggerWritesToLogPath(t *testing.T) {
	clearLogEnv(t)
	logPath := filepath.Join(t.TempDir(), "tool.log")
	t.Setenv("STAMP_LOG_PATH", logPath)

	logger := NewToolLogger("test-tool", "info")
	logger.Info("to file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestResolveLevelPrecedence(t *testing.T) {
	const toolEnv = "STAMP_TEST_TOOL_LOG_LEVEL"

	testCases := []struct {
		name        string
		cliLevel    string
		toolLevel   string
		globalLevel string
		wantLevel   string
		wantSource  string
	}{
		{"cli wins over everything", "trace", "debug", "warn", "trace", "CLI --log-level"},
		{"tool env wins over global", "", "debug", "warn", "debug", toolEnv},
		{"global env as fallback", "", "", "warn", "warn", "STAMP_LOG_LEVEL"},
		{"default when nothing set", "", "", "", "info", "default"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(toolEnv, tc.toolLevel)
			t.Setenv("STAMP_LOG_LEVEL", tc.globalLevel)

			level, source := resolveLevel("test-tool", tc.cliLevel)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantSource, source)
		})
	}
}
