package ls

import (
	"fmt"
	"math"
)

// sizeSuffixes — множители в порядке убывания
var sizeSuffixes = []struct {
	suffix string
	mult   float64
}{
	{"T", 1 << 40},
	{"G", 1 << 30},
	{"M", 1 << 20},
	{"K", 1 << 10},
}

// formatHumanSize преобразует число байт в строку с суффиксом.
// Значение округляется вверх: до десятых, если меньше 10, иначе до целого
func formatHumanSize(size int64) string {
	v := float64(size)
	for _, s := range sizeSuffixes {
		if v < s.mult {
			continue
		}
		scaled := v / s.mult
		if scaled < 10 {
			return fmt.Sprintf("%.1f%s", math.Ceil(scaled*10)/10, s.suffix)
		}
		return fmt.Sprintf("%.0f%s", math.Ceil(scaled), s.suffix)
	}
	return fmt.Sprintf("%d", size)
}
