package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name+".log"))
	require.NoError(t, err)
	return string(data)
}

func TestNew_WritesConsoleAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	l, err := New(Options{Dir: dir, Name: "evaluate", Level: "INFO", Console: &console})
	require.NoError(t, err)
	defer l.Close()

	l.Info().Msg("Starting selected image display")
	l.Debug().Msg("hidden")

	content := readLog(t, dir, "evaluate")
	require.Contains(t, content, "| INFO  | evaluate | Starting selected image display")
	require.NotContains(t, content, "hidden")
	require.Equal(t, content, console.String())
}

func TestNew_TruncatesAndDoesNotDuplicate(t *testing.T) {
	dir := t.TempDir()

	first, err := New(Options{Dir: dir, Name: "run", Console: &bytes.Buffer{}})
	require.NoError(t, err)
	first.Info().Msg("first run")

	second, err := New(Options{Dir: dir, Name: "run", Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer second.Close()
	second.Info().Msg("second run")

	content := readLog(t, dir, "run")
	require.NotContains(t, content, "first run")
	require.Equal(t, 1, strings.Count(content, "second run"))

	require.NoError(t, first.Close())
}

func TestNew_ErrorLevelFields(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	l, err := New(Options{Dir: dir, Name: "evaluate", Level: "warn", Console: &console})
	require.NoError(t, err)
	defer l.Close()

	l.Info().Msg("skipped")
	l.Error().Str("image", "a.png").Msg("Failed to display a.png")

	out := console.String()
	require.NotContains(t, out, "skipped")
	require.Contains(t, out, "| ERROR | evaluate | Failed to display a.png")
	require.Contains(t, out, "image=a.png")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"INFO":     zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"WARNING":  zerolog.WarnLevel,
		"warn":     zerolog.WarnLevel,
		"ERROR":    zerolog.ErrorLevel,
		"CRITICAL": zerolog.FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(Options{Dir: t.TempDir(), Name: "bad", Level: "verbose", Console: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestNew_PythonWarningLevel(t *testing.T) {
	var console bytes.Buffer
	l, err := New(Options{Dir: t.TempDir(), Name: "pywarn", Level: "WARNING", Console: &console})
	require.NoError(t, err)
	defer l.Close()

	l.Info().Msg("quiet")
	l.Warn().Msg("loud")

	require.NotContains(t, console.String(), "quiet")
	require.Contains(t, console.String(), "| WARN  | pywarn | loud")
}
