package workspace

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/aoc-admin/internal/config"
	"github.com/oshokin/aoc-admin/internal/domain/aoc"
)

// TestSummary masks the token and prints every location.
func TestSummary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	env := &Environment{
		Root:         "/aoc/2023/solutions",
		Home:         "/aoc",
		Source:       config.MapSource{aoc.TokenKey: "0123cdef", aoc.YearKey: "2023"},
		Settings:     config.Default(),
		SettingsFile: "/aoc/2023/solutions/aoc-admin.yaml",
		EnvFiles:     []string{"/session.env"},
	}

	summary := env.Summary(now)
	require.Equal(t, "/aoc/assets", summary.AssetsDir)
	require.Equal(t, "/aoc/2023/solutions/templates", summary.TemplatesDir)
	require.Equal(t, uint16(2023), summary.Year)
	require.Equal(t, "****cdef", summary.Token)

	var buf bytes.Buffer

	n, err := summary.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	require.Contains(t, out, "/aoc/2023/solutions\n")
	require.Contains(t, out, "/session.env\n")
	require.Contains(t, out, "2023\n")
	require.Contains(t, out, "****cdef\n")
	require.NotContains(t, out, "0123cdef")
}

// TestSummary_Empty prints placeholders for a missing token and env files.
func TestSummary_Empty(t *testing.T) {
	t.Parallel()

	env := &Environment{Root: "/ws", Home: "/", Source: config.MapSource{}}

	var buf bytes.Buffer

	_, err := env.Summary(time.Now()).WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "session token: -\n")
	require.Contains(t, buf.String(), "env files:     -\n")
}
