package workspace

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// Summary is the printable view of an Environment.
type Summary struct {
	Root         string
	Home         string
	AssetsDir    string
	TemplatesDir string
	SettingsFile string
	EnvFiles     []string
	Year         uint16
	Token        string
}

// Summary returns the resolved locations and puzzle defaults with the token masked.
func (e *Environment) Summary(now time.Time) Summary {
	spec := e.Spec(now)

	return Summary{
		Root:         e.Root,
		Home:         e.Home,
		AssetsDir:    e.AssetsDir(),
		TemplatesDir: e.TemplatesDir(),
		SettingsFile: e.SettingsFile,
		EnvFiles:     e.EnvFiles,
		Year:         spec.Year,
		Token:        spec.MaskedToken(),
	}
}

// WriteTo prints one "key: value" line per field.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	envFiles := strings.Join(s.EnvFiles, ", ")
	if envFiles == "" {
		envFiles = "-"
	}

	token := s.Token
	if token == "" {
		token = "-"
	}

	var sb strings.Builder

	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "workspace:\t%s\n", s.Root)
	_, _ = fmt.Fprintf(tw, "home:\t%s\n", s.Home)
	_, _ = fmt.Fprintf(tw, "assets:\t%s\n", s.AssetsDir)
	_, _ = fmt.Fprintf(tw, "templates:\t%s\n", s.TemplatesDir)
	_, _ = fmt.Fprintf(tw, "settings:\t%s\n", s.SettingsFile)
	_, _ = fmt.Fprintf(tw, "env files:\t%s\n", envFiles)
	_, _ = fmt.Fprintf(tw, "year:\t%d\n", s.Year)
	_, _ = fmt.Fprintf(tw, "session token:\t%s\n", token)
	_ = tw.Flush()

	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}
