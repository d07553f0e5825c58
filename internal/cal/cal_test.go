package cal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coreutils/internal/cli/clitest"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func reverse(s string) string {
	return "\x1b[7m" + s + "\x1b[0m"
}

func TestParseYear(t *testing.T) {
	for value, want := range map[string]int{"1": 1, "2026": 2026, "9999": 9999} {
		got, err := ParseYear(value)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseYear("0")
	assert.EqualError(t, err, `year "0" not in the range 1 through 9999`)
	_, err = ParseYear("10000")
	assert.EqualError(t, err, `year "10000" not in the range 1 through 9999`)
	_, err = ParseYear("foo")
	assert.EqualError(t, err, `Invalid integer "foo"`)
}

func TestParseMonth(t *testing.T) {
	tests := map[string]time.Month{
		"1":   time.January,
		"12":  time.December,
		"jan": time.January,
		"JUL": time.July,
		"s":   time.September,
		"Ma":  0, // March и May
		"ju":  0,
		"foo": 0,
		"":    0,
	}
	for value, want := range tests {
		got, err := ParseMonth(value)
		if want == 0 {
			assert.EqualError(t, err, `Invalid month "`+value+`"`, value)
			continue
		}
		require.NoError(t, err, value)
		assert.Equal(t, want, got, value)
	}

	_, err := ParseMonth("0")
	assert.EqualError(t, err, `month "0" not in the range 1 through 12`)
	_, err = ParseMonth("13")
	assert.EqualError(t, err, `month "13" not in the range 1 through 12`)
}

func TestFormatMonth(t *testing.T) {
	want := []string{
		"    October 2026      ",
		"Su Mo Tu We Th Fr Sa  ",
		"             1  2  3  ",
		" 4  5  6  7  8  9 10  ",
		"11 12 13 14 15 16 17  ",
		"18 19 20 21 22 23 24  ",
		"25 26 27 28 29 30 31  ",
		"                      ",
	}
	assert.Equal(t, want, formatMonth(2026, time.October, true, date(2026, 10, 19), nil))

	leap := []string{
		"      February        ",
		"Su Mo Tu We Th Fr Sa  ",
		"                   1  ",
		" 2  3  4  5  6  7  8  ",
		" 9 10 11 12 13 14 15  ",
		"16 17 18 19 20 21 22  ",
		"23 24 25 26 27 28 29  ",
		"                      ",
	}
	assert.Equal(t, leap, formatMonth(2020, time.February, false, date(2026, 10, 19), nil))
}

func TestFormatMonthHighlightsToday(t *testing.T) {
	lines := formatMonth(2026, time.October, true, date(2026, 10, 31), reverse)
	assert.Equal(t, "25 26 27 28 29 30 "+reverse("31")+"  ", lines[6])

	lines = formatMonth(2026, time.October, true, date(2026, 10, 1), reverse)
	assert.Equal(t, "            "+reverse(" 1")+"  2  3  ", lines[2])

	lines = formatMonth(2025, time.October, true, date(2026, 10, 1), reverse)
	assert.NotContains(t, strings.Join(lines, "\n"), "\x1b[")
}

func TestPrintYear(t *testing.T) {
	var sb strings.Builder
	printYear(&sb, 2020, date(2026, 10, 19), nil)
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")

	require.Len(t, lines, 1+4*8+3)
	assert.Equal(t, "                            2020", lines[0])
	assert.Equal(t, "      January               February               March          ", lines[1])
	assert.Equal(t, "          1  2  3  4                     1   1  2  3  4  5  6  7  ", lines[3])
	assert.Equal(t, "", lines[9])
	assert.Equal(t, "                      31                                          ", lines[17])
	assert.Equal(t, "25 26 27 28 29 30 31  29 30                 27 28 29 30 31        ", lines[34])
}

func TestToday(t *testing.T) {
	app, _, errOut := clitest.NewApp(t, "cal", "")
	local := date(2026, 10, 19)
	app.Now = func() time.Time { return local }

	assert.Equal(t, local, today(app, ""))

	orig := queryTime
	t.Cleanup(func() { queryTime = orig })

	queryTime = func(string) (time.Time, error) { return time.Time{}, errors.New("timeout") }
	assert.Equal(t, local, today(app, "pool.ntp.org"))
	assert.Contains(t, errOut.String(), "ntp query failed")

	remote := date(2027, 1, 1)
	queryTime = func(host string) (time.Time, error) {
		assert.Equal(t, "time.example.org", host)
		return remote, nil
	}
	app.Log.SetLevel(log.DebugLevel)
	assert.True(t, remote.Equal(today(app, "time.example.org")))
}

func TestRunMonthWithToday(t *testing.T) {
	app, out, _ := clitest.NewApp(t, "cal", "")
	app.Config.Set("color", "always")

	require.NoError(t, Run(app, Config{Month: time.October, Year: 2026, Today: date(2026, 10, 19)}))
	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "    October 2026      ", lines[0])
	assert.Equal(t, "18 "+reverse("19")+" 20 21 22 23 24  ", lines[5])
}

func TestCommand(t *testing.T) {
	res := clitest.Run(t, NewCommand, "", "-m", "feb", "2020")
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.True(t, strings.HasPrefix(res.Stdout, "   February 2020      \n"), res.Stdout)

	res = clitest.Run(t, NewCommand, "", "2020")
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.True(t, strings.HasPrefix(res.Stdout, "                            2020\n"), res.Stdout)

	res = clitest.Run(t, NewCommand, "", "-y")
	require.Equal(t, 0, res.Code, res.Stderr)
	assert.Len(t, strings.Split(strings.TrimSuffix(res.Stdout, "\n"), "\n"), 36)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"0"}, "year \"0\" not in the range 1 through 9999\n"},
		{[]string{"-m", "13"}, "month \"13\" not in the range 1 through 12\n"},
		{[]string{"-m", "ju"}, "Invalid month \"ju\"\n"},
		{[]string{"-y", "2020"}, "--year cannot be used with YEAR\n"},
	}
	for _, tt := range tests {
		res := clitest.Run(t, NewCommand, "", tt.args...)
		assert.Equal(t, 1, res.Code, tt.args)
		assert.Equal(t, tt.want, res.Stderr, tt.args)
	}

	res := clitest.Run(t, NewCommand, "", "-y", "-m", "1")
	assert.Equal(t, 1, res.Code)
}
