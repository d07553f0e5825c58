package comm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coreutils/internal/cli/clitest"
)

const (
	file1 = "a\nb\nc\nd\n"
	file2 = "B\nc\nd\ne\n"
)

func TestCompare(t *testing.T) {
	all := Config{ShowCol1: true, ShowCol2: true, ShowCol3: true, Delimiter: "\t"}

	tests := []struct {
		name string
		cfg  func(Config) Config
		want string
	}{
		{
			name: "all columns",
			cfg:  func(c Config) Config { return c },
			want: "\tB\na\nb\n\t\tc\n\t\td\n\te\n",
		},
		{
			name: "insensitive",
			cfg:  func(c Config) Config { c.Insensitive = true; return c },
			want: "a\n\t\tb\n\t\tc\n\t\td\n\te\n",
		},
		{
			name: "only common",
			cfg:  func(c Config) Config { c.ShowCol1, c.ShowCol2 = false, false; return c },
			want: "c\nd\n",
		},
		{
			name: "without column 1",
			cfg:  func(c Config) Config { c.ShowCol1 = false; return c },
			want: "B\n\tc\n\td\ne\n",
		},
		{
			name: "custom delimiter",
			cfg:  func(c Config) Config { c.ShowCol3, c.Delimiter = false, "|"; return c },
			want: "|B\na\nb\n|e\n",
		},
		{
			name: "nothing shown",
			cfg:  func(c Config) Config { c.ShowCol1, c.ShowCol2, c.ShowCol3 = false, false, false; return c },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, Compare(strings.NewReader(file1), strings.NewReader(file2), &sb, tt.cfg(all)))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestCompareEmpty(t *testing.T) {
	var sb strings.Builder
	cfg := Config{ShowCol1: true, ShowCol2: true, ShowCol3: true, Delimiter: "\t"}
	require.NoError(t, Compare(strings.NewReader(""), strings.NewReader("x\r\ny"), &sb, cfg))
	assert.Equal(t, "\tx\n\ty\n", sb.String())
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "file1.txt")
	require.NoError(t, os.WriteFile(path1, []byte(file1), 0o644))

	res := clitest.Run(t, NewCommand, file2, "-12", path1, "-")
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.Equal(t, "c\nd\n", res.Stdout)

	res = clitest.Run(t, NewCommand, "", "-", "-")
	assert.Equal(t, 1, res.Code)
	assert.Equal(t, "Both input files cannot be STDIN (\"-\")\n", res.Stderr)

	missing := filepath.Join(dir, "missing")
	res = clitest.Run(t, NewCommand, "", path1, missing)
	assert.Equal(t, 1, res.Code)
	assert.Empty(t, res.Stdout)
	assert.Equal(t, missing+": no such file or directory\n", res.Stderr)

	res = clitest.Run(t, NewCommand, "", path1)
	assert.Equal(t, 1, res.Code)
}
