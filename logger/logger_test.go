package logger_test

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	callerRegexp   = regexp.MustCompile(`logger/logger_test\.go:\d+`)
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tcs := []struct {
		name     string
		level    logger.LogLevel
		log      func(l logger.Logger)
		expected string
	}{
		{"Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("msg", nil) }, "[DEBUG]"},
		{"Info", logger.LogLevelDebug, func(l logger.Logger) { l.Info("msg", nil) }, "[INFO]"},
		{"Warn", logger.LogLevelDebug, func(l logger.Logger) { l.Warn("msg", nil) }, "[WARN]"},
		{"Error", logger.LogLevelDebug, func(l logger.Logger) { l.Error("msg", nil) }, "[ERROR]"},
		{"Fatal", logger.LogLevelDebug, func(l logger.Logger) { l.Fatal("msg", nil) }, "[FATAL]"},
		{"Filtered", logger.LogLevelError, func(l logger.Logger) { l.Warn("msg", nil) }, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.NewCairnLogger(logger.WithLevel(tc.level), logger.WithLogger(newStdLogger(b)))

			// Act
			tc.log(l)

			// Assert
			if tc.expected == "" {
				require.Empty(t, b.String())
				return
			}

			require.Equal(t, tc.expected, logLevelRegexp.FindString(b.String()))
			require.Regexp(t, callerRegexp, b.String())
			require.Contains(t, b.String(), "'msg'")
		})
	}
}

func TestLoggerCaller(t *testing.T) {
	color.NoColor = true

	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewTestLogger(b)

	// Act
	l.Info("msg", &logger.LogContext{Caller: "somewhere/else.go:1"})

	// Assert
	require.Equal(t, "[INFO] somewhere/else.go:1 'msg' log_context: {}\n", b.String())
}

func TestNewLogLevel(t *testing.T) {
	require.Equal(t, logger.LogLevelDebug, logger.NewLogLevel("DEBUG"))
	require.Equal(t, logger.LogLevelWarn, logger.NewLogLevel("WARN"))
	require.Equal(t, logger.LogLevelUnk, logger.NewLogLevel("loud"))
	require.Equal(t, "[UNK]", logger.LogLevelUnk.String())
}

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"path": "/docs"}, Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"path":"/docs"},"error":"test"}`, string(b))

	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com/docs", nil)
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"request":{"method":"GET","url":"https://example.com/docs"}}`, string(b))
}

func newStdLogger(b *bytes.Buffer) *log.Logger { return log.New(b, "", 0) }
