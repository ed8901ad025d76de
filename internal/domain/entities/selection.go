package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelection разбирает одиночный выбор из нумерованного списка.
// Возвращает индекс в срезе (с нуля).
func ParseSelection(raw string, count int) (int, error) {
	token := strings.TrimSpace(raw)
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, token)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidSelection, n, count)
	}
	return n - 1, nil
}

// ParseMultiSelection разбирает список индексов через запятую.
// Нечисловые и выходящие за диапазон токены молча отбрасываются, порядок пользователя сохраняется.
func ParseMultiSelection(raw string, count int) []int {
	var indices []int
	for _, token := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || n < 1 || n > count {
			continue
		}
		indices = append(indices, n-1)
	}
	return indices
}

// ParsePageRanges разбирает строку вида "1-3,4-6".
// Проверяется только синтаксис; границы проверяет PageRange.Validate.
func ParsePageRanges(raw string) ([]PageRange, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: no ranges given", ErrInvalidPageRange)
	}

	var ranges []PageRange
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		start, end, ok := strings.Cut(token, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q is missing '-'", ErrInvalidPageRange, token)
		}
		s, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("%w: %q has a non-integer start", ErrInvalidPageRange, token)
		}
		e, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("%w: %q has a non-integer end", ErrInvalidPageRange, token)
		}
		ranges = append(ranges, PageRange{Start: s, End: e})
	}
	return ranges, nil
}
