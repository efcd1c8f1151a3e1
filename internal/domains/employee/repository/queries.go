package repository

import (
	"fmt"
	"strings"

	"employee-api/internal/domains/employee"
	"employee-api/internal/shared/utils"
)

// buildIncrementQuery dựng câu UPDATE ... CASE duy nhất cho toàn bảng.
// Phân loại theo ký tự đầu của name (substr, phân biệt hoa thường;
// LIKE của SQLite không phân biệt hoa thường nên không dùng).
//
//	UPDATE employees SET value = CASE
//	    WHEN substr(name, 1, 1) = $1 THEN value + $2
//	    WHEN substr(name, 1, 1) = $3 THEN value + $4
//	    ELSE value + $5
//	END
func buildIncrementQuery(rule employee.IncrementRule, ph utils.PlaceholderFunc) (string, []any) {
	var b strings.Builder
	b.WriteString("UPDATE employees SET value = CASE")

	n := 1
	for range rule.Cases {
		fmt.Fprintf(&b, " WHEN substr(name, 1, 1) = %s THEN value + %s", ph(n), ph(n+1))
		n += 2
	}
	fmt.Fprintf(&b, " ELSE value + %s END", ph(n))

	return b.String(), rule.CaseArgs()
}

// buildPrefixSumQuery dựng aggregate read trên tập prefix báo cáo.
// cast dùng cho Postgres (SUM(bigint) trả về numeric).
func buildPrefixSumQuery(prefixes []string, ph utils.PlaceholderFunc, cast string) (string, []any) {
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(value), 0)%s FROM employees WHERE substr(name, 1, 1) IN (%s)",
		cast, utils.Placeholders(ph, 1, len(prefixes)),
	)
	return query, utils.StringArgs(prefixes)
}
