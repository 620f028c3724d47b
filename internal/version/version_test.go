package version

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures every rendering carries the release tag.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)
	require.Equal(t, Name+"/"+Short(), UserAgent())
}

// TestVersionCommand runs the subcommand with and without --short.
func TestVersionCommand(t *testing.T) {
	t.Parallel()

	run := func(args ...string) string {
		root := &cobra.Command{Use: Name}
		AttachCobraVersionCommand(root)

		var out bytes.Buffer

		root.SetOut(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())

		return out.String()
	}

	require.Equal(t, Full()+"\n", run("version"))
	require.Equal(t, Short()+"\n", run("version", "--short"))
}
