package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	return newLogger(name, level, jsonFromEnv(), output)
}

// NewToolLogger creates the logger for a CLI tool, resolving the effective
// log level from the CLI flag, a tool-specific environment variable, the
// global STAMP_LOG_LEVEL, then a default of "info". JSON output is enabled
// by STAMP_JSON_LOG=1 or a level of the form "json"/"json:debug". Logs go
// to stderr unless STAMP_LOG_PATH names a writable file.
func NewToolLogger(tool, cliLevel string) hclog.Logger {
	return newToolLogger(tool, cliLevel, nil)
}

// newToolLogger is NewToolLogger with an injectable output. A nil output
// selects stderr or STAMP_LOG_PATH.
func newToolLogger(tool, cliLevel string, output io.Writer) hclog.Logger {
	level, source := resolveLevel(tool, cliLevel)

	// Parse JSON format from log level
	jsonFormat := jsonFromEnv()
	actualLevel := level
	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		parts := strings.Split(level, ":")
		if len(parts) > 1 {
			actualLevel = parts[1]
		} else {
			actualLevel = "info"
		}
	}

	// Support log file output
	var logPath string
	var logPathErr error
	if output == nil {
		output = os.Stderr
		if logPath = os.Getenv("STAMP_LOG_PATH"); logPath != "" {
			if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
				logPathErr = err
			} else {
				output = file
			}
		}
	}

	logger := newLogger(tool, actualLevel, jsonFormat, output)
	if logPathErr != nil {
		logger.Warn("⚠️ Failed to open log file, using stderr", "path", logPath, "error", logPathErr)
	}
	logger.Debug("Log level", "level", actualLevel, "source", source)
	return logger
}

func newLogger(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Add 🖍️ prefix to non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🖍️ ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format without timezone
		TimeFn: func() time.Time {
			return time.Now().UTC() // Force UTC time
		},
	})
}

func jsonFromEnv() bool {
	return os.Getenv("STAMP_JSON_LOG") == "1"
}

// resolveLevel returns the chosen log level and where it came from.
func resolveLevel(tool, cliLevel string) (level, source string) {
	toolEnv := "STAMP_" + strings.ToUpper(strings.ReplaceAll(tool, "-", "_")) + "_LOG_LEVEL"

	if cliLevel != "" {
		return cliLevel, "CLI --log-level"
	}
	if envLevel := os.Getenv(toolEnv); envLevel != "" {
		return envLevel, toolEnv
	}
	if envLevel := os.Getenv("STAMP_LOG_LEVEL"); envLevel != "" {
		return envLevel, "STAMP_LOG_LEVEL"
	}
	return "info", "default"
}
