package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "debug = true\n[head]\nlines = 3\n")

	v, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, v.GetBool("debug"))
	assert.Equal(t, 3, v.GetInt("head.lines"))
	assert.Equal(t, "auto", v.GetString("color"))
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("COREUTILS_TAIL_LINES", "7")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, v.IsSet("tail.lines"))
	assert.Equal(t, "7", v.GetString("tail.lines"))
}

func TestApplyConfig(t *testing.T) {
	v, err := LoadConfig(writeConfig(t, "[cut]\ndelim = \",\"\nfields = \"2\"\n[find]\nname = [\"a\", \"b\"]\n"))
	require.NoError(t, err)

	flags := pflag.NewFlagSet("cut", pflag.ContinueOnError)
	delim := flags.StringP("delim", "d", "\t", "")
	fields := flags.StringP("fields", "f", "", "")
	require.NoError(t, flags.Parse([]string{"-f", "1"}))

	require.NoError(t, ApplyConfig(v, "cut", flags))
	assert.Equal(t, ",", *delim)
	assert.Equal(t, "1", *fields, "explicit flag must win over config")
	assert.False(t, flags.Changed("delim"))

	findFlags := pflag.NewFlagSet("find", pflag.ContinueOnError)
	names := findFlags.StringSliceP("name", "n", nil, "")
	require.NoError(t, ApplyConfig(v, "find", findFlags))
	assert.Equal(t, []string{"a", "b"}, *names)
}

func TestApplyConfigBadValue(t *testing.T) {
	v, err := LoadConfig(writeConfig(t, "[head]\nlines = \"many\"\n"))
	require.NoError(t, err)

	flags := pflag.NewFlagSet("head", pflag.ContinueOnError)
	flags.IntP("lines", "n", 10, "")
	assert.ErrorContains(t, ApplyConfig(v, "head", flags), "head.lines")
}

func TestExecute(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	app := NewApp("demo", IO{In: strings.NewReader(""), Out: &out, Err: &errOut})

	var lines int
	cmd := &cobra.Command{
		Use: "demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 0 {
				return &ExitError{Code: 3, Err: errors.New("negative")}
			}
			app.IO.Out.Write([]byte(strings.Repeat("x", lines)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 1, "")
	app.Setup(cmd)

	assert.Equal(t, 0, Execute(context.Background(), app, cmd, []string{"-n", "2"}))
	assert.Equal(t, "xx", out.String())

	assert.Equal(t, 3, Execute(context.Background(), app, cmd, []string{"-n", "-1"}))
	assert.Equal(t, "negative\n", errOut.String())
}

func TestExecuteConfigDefault(t *testing.T) {
	cfg := writeConfig(t, "[demo]\nlines = 4\n")

	var out bytes.Buffer
	app := NewApp("demo", IO{Out: &out, Err: &bytes.Buffer{}})
	var lines int
	cmd := &cobra.Command{
		Use: "demo",
		Run: func(*cobra.Command, []string) {
			out.WriteString(strings.Repeat("y", lines))
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 1, "")
	app.Setup(cmd)

	assert.Equal(t, 0, Execute(context.Background(), app, cmd, []string{"--config", cfg}))
	assert.Equal(t, "yyyy", out.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(&ExitError{Code: 2}))
	assert.Equal(t, 1, ExitCode(Fail(errors.New("boom"))))
	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}

func TestUseColor(t *testing.T) {
	app := NewApp("demo", IO{Out: &bytes.Buffer{}})
	assert.False(t, app.UseColor(), "buffer is not a terminal")

	app.Config.Set("color", "always")
	assert.True(t, app.UseColor())

	app.Config.Set("color", "never")
	assert.False(t, app.UseColor())
}

func TestFileError(t *testing.T) {
	var errOut bytes.Buffer
	app := NewApp("demo", IO{Err: &errOut})
	app.FileError("missing.txt", os.ErrNotExist)
	assert.Equal(t, "missing.txt: file does not exist\n", errOut.String())
}

func TestCause(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, "no such file or directory", Cause(err).Error())

	plain := errors.New("plain")
	assert.Equal(t, plain, Cause(plain))

	assert.Equal(t, 1, ExitCode(FileFail("x", err)))
	assert.EqualError(t, FileFail("x", err), "x: no such file or directory")
}

func TestApplyConfigExclusiveGroup(t *testing.T) {
	v, err := LoadConfig(writeConfig(t, "[cut]\nfields = \"2\"\n"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		args   []string
		fields string
		bytes  string
	}{
		{"other mode given", []string{"-b", "1"}, "", "1"},
		{"nothing given", nil, "2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "cut"}
			fields := cmd.Flags().StringP("fields", "f", "", "")
			byteList := cmd.Flags().StringP("bytes", "b", "", "")
			cmd.MarkFlagsMutuallyExclusive("fields", "bytes")
			require.NoError(t, cmd.Flags().Parse(tt.args))

			require.NoError(t, ApplyConfig(v, "cut", cmd.Flags()))
			if *fields != tt.fields || *byteList != tt.bytes {
				t.Errorf("got fields=%q bytes=%q, want fields=%q bytes=%q", *fields, *byteList, tt.fields, tt.bytes)
			}
		})
	}
}

func TestColorFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var errOut bytes.Buffer
	app := NewApp("demo", IO{Out: &bytes.Buffer{}, Err: &errOut})
	cmd := &cobra.Command{Use: "demo", Run: func(*cobra.Command, []string) {}}
	app.Setup(cmd)

	assert.Equal(t, 0, Execute(context.Background(), app, cmd, []string{"--color", "always"}))
	assert.True(t, app.UseColor())

	assert.Equal(t, 1, Execute(context.Background(), app, cmd, []string{"--color", "sometimes"}))
	assert.Contains(t, errOut.String(), `invalid value "sometimes" for --color`)
}
