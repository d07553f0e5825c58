package cal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames — названия месяцев для заголовков и разбора -m
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// parseInt разбирает целое число из аргумента
func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("Invalid integer %q", value)
	}
	return n, nil
}

// ParseYear разбирает год в диапазоне 1-9999
func ParseYear(value string) (int, error) {
	year, err := parseInt(value)
	if err != nil {
		return 0, err
	}
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %q not in the range 1 through 9999", value)
	}
	return year, nil
}

// ParseMonth принимает номер месяца 1-12 или однозначный префикс названия без учёта регистра
func ParseMonth(value string) (time.Month, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %q not in the range 1 through 12", value)
		}
		return time.Month(n), nil
	}

	lower := strings.ToLower(value)
	var found []time.Month
	for i, name := range monthNames {
		if lower != "" && strings.HasPrefix(strings.ToLower(name), lower) {
			found = append(found, time.Month(i+1))
		}
	}
	if len(found) != 1 {
		return 0, fmt.Errorf("Invalid month %q", value)
	}
	return found[0], nil
}
