package fortune

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coreutils/internal/cli/clitest"
)

const jokes = `Q. What do you call a head of lettuce in a shirt and tie?
A. Collared greens.
%
Q: Why did the gardener quit his job?
A: His celery wasn't high enough.
%
%
Q: What do you call a deer wearing an eye patch?
A: A bad idea (bad-eye deer).
%
`

const quotes = `You can observe a lot just by watching.
-- Yogi Berra
%
It is difficult to get a man to understand something, when his salary depends upon his not understanding it.
-- Upton Sinclair
`

func newSources(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"inputs/jokes":     jokes,
		"inputs/jokes.dat": "binary index",
		"inputs/quotes":    quotes,
		"inputs/art/empty": "",
	}
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(data), 0o644))
	}
	return fsys
}

func TestFindFiles(t *testing.T) {
	fsys := newSources(t)
	logger := log.New(&strings.Builder{})

	files, err := findFiles(fsys, logger, []string{"inputs/jokes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"inputs/jokes"}, files)

	files, err = findFiles(fsys, logger, []string{"inputs"})
	require.NoError(t, err)
	for i := range files {
		files[i] = filepath.ToSlash(files[i])
	}
	assert.Equal(t, []string{"inputs/art/empty", "inputs/jokes", "inputs/quotes"}, files)

	files, err = findFiles(fsys, logger, []string{"inputs/quotes", "inputs/jokes", "inputs/quotes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"inputs/jokes", "inputs/quotes"}, files)

	_, err = findFiles(fsys, logger, []string{"path/does/not/exist"})
	assert.EqualError(t, err, "path/does/not/exist: file does not exist")
}

func TestReadFortunes(t *testing.T) {
	fsys := newSources(t)

	fortunes, err := readFortunes(fsys, []string{"inputs/jokes"})
	require.NoError(t, err)
	require.Len(t, fortunes, 3)
	assert.Equal(t, "Q. What do you call a head of lettuce in a shirt and tie?\nA. Collared greens.", fortunes[0].Text)
	assert.Equal(t, "Q: What do you call a deer wearing an eye patch?\nA: A bad idea (bad-eye deer).", fortunes[2].Text)
	assert.Equal(t, "inputs/jokes", fortunes[0].Source)

	fortunes, err = readFortunes(fsys, []string{"inputs/jokes", "inputs/quotes"})
	require.NoError(t, err)
	assert.Len(t, fortunes, 5)
}

func TestPickFortune(t *testing.T) {
	fortunes := []Fortune{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}

	seed := uint64(42)
	first, ok := pickFortune(fortunes, &seed)
	require.True(t, ok)
	for range 5 {
		again, _ := pickFortune(fortunes, &seed)
		assert.Equal(t, first, again, "same seed must pick the same fortune")
	}

	text, ok := pickFortune(fortunes, nil)
	require.True(t, ok)
	assert.Contains(t, []string{"a", "b", "c", "d"}, text)

	_, ok = pickFortune(nil, &seed)
	assert.False(t, ok)
}

func TestRunPattern(t *testing.T) {
	app, out, errOut := clitest.NewApp(t, "fortune", "")
	cfg := Config{
		Sources: []string{"inputs"},
		Pattern: regexp.MustCompile(`(?i)what|yogi`),
	}
	require.NoError(t, Run(app, newSources(t), cfg))
	assert.Equal(t,
		"Q. What do you call a head of lettuce in a shirt and tie?\nA. Collared greens.\n%\n"+
			"Q: What do you call a deer wearing an eye patch?\nA: A bad idea (bad-eye deer).\n%\n"+
			"You can observe a lot just by watching.\n-- Yogi Berra\n%\n",
		out.String())
	assert.Equal(t, "(jokes)\n%\n(quotes)\n%\n", errOut.String())
}

func TestRunNoFortunes(t *testing.T) {
	app, out, _ := clitest.NewApp(t, "fortune", "")
	require.NoError(t, Run(app, newSources(t), Config{Sources: []string{"inputs/art"}}))
	assert.Equal(t, "No fortunes found\n", out.String())
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes")
	require.NoError(t, os.WriteFile(path, []byte(quotes), 0o644))

	res := clitest.Run(t, NewCommand, "", "-s", "1", path)
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.Contains(t, []string{
		"You can observe a lot just by watching.\n-- Yogi Berra\n",
		"It is difficult to get a man to understand something, when his salary depends upon his not understanding it.\n-- Upton Sinclair\n",
	}, res.Stdout)

	res = clitest.Run(t, NewCommand, "", "-m", "SINCLAIR", "-i", path)
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.True(t, strings.HasSuffix(res.Stdout, "-- Upton Sinclair\n%\n"), res.Stdout)
	assert.Equal(t, "(quotes)\n%\n", res.Stderr)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-s", "a", "x"}, "\"a\" not a valid integer\n"},
		{[]string{"-s", "-1", "x"}, "\"-1\" not a valid integer\n"},
		{[]string{"-m", "*x", "x"}, "Invalid --pattern \"*x\"\n"},
	}
	for _, tt := range tests {
		res := clitest.Run(t, NewCommand, "", tt.args...)
		assert.Equal(t, 1, res.Code, tt.args)
		assert.Equal(t, tt.want, res.Stderr, tt.args)
	}

	missing := filepath.Join(t.TempDir(), "nope")
	res := clitest.Run(t, NewCommand, "", missing)
	assert.Equal(t, 1, res.Code)
	assert.Equal(t, missing+": no such file or directory\n", res.Stderr)
}
