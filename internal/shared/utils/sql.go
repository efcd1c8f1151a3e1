package utils

import (
	"fmt"
	"strings"
)

// PlaceholderFunc trả về bind placeholder thứ n (1-based) theo driver
type PlaceholderFunc func(n int) string

// DollarPlaceholder: $1, $2, ... (Postgres)
func DollarPlaceholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// QuestionPlaceholder: ?, ?, ... (SQLite)
func QuestionPlaceholder(int) string {
	return "?"
}

// Placeholders nối count placeholders bắt đầu từ start: "$3, $4, $5"
func Placeholders(ph PlaceholderFunc, start, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = ph(start + i)
	}
	return strings.Join(parts, ", ")
}

// StringArgs chuyển []string thành []any để truyền vào Exec/Query
func StringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
