package cut

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Range — полуоткрытый диапазон позиций [Start, End), нумерация с нуля
type Range struct {
	Start int
	End   int
}

// PositionList — диапазоны в порядке из командной строки, повторы сохраняются
type PositionList []Range

var rangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

func illegal(value string) error {
	return fmt.Errorf("illegal list value: %q", value)
}

// parseIndex разбирает номер позиции (только цифры, не меньше 1) и возвращает индекс с нуля
func parseIndex(s string) (int, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, illegal(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return 0, illegal(s)
	}
	return n - 1, nil
}

// ParsePositions преобразует список вида "1,3-5" в PositionList
func ParsePositions(list string) (PositionList, error) {
	var result PositionList
	for _, part := range strings.Split(list, ",") {
		if n, err := parseIndex(part); err == nil {
			result = append(result, Range{Start: n, End: n + 1})
			continue
		}

		m := rangeRe.FindStringSubmatch(part)
		if m == nil {
			return nil, illegal(part)
		}
		start, err := parseIndex(m[1])
		if err != nil {
			return nil, err
		}
		end, err := parseIndex(m[2])
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, fmt.Errorf("First number in range (%d) must be lower than second number (%d)", start+1, end+1)
		}
		result = append(result, Range{Start: start, End: end + 1})
	}
	return result, nil
}
