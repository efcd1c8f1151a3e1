package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"employee-api/internal/domains/employee"
	"employee-api/internal/shared/utils"
)

func TestBuildIncrementQuery(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		query, args := buildIncrementQuery(employee.ValueIncrementRule, utils.DollarPlaceholder)

		assert.Equal(t,
			"UPDATE employees SET value = CASE"+
				" WHEN substr(name, 1, 1) = $1 THEN value + $2"+
				" WHEN substr(name, 1, 1) = $3 THEN value + $4"+
				" ELSE value + $5 END",
			query)
		assert.Equal(t, []any{"E", int64(1), "G", int64(10), int64(100)}, args)
	})

	t.Run("SQLite", func(t *testing.T) {
		query, _ := buildIncrementQuery(employee.ValueIncrementRule, utils.QuestionPlaceholder)
		assert.Equal(t,
			"UPDATE employees SET value = CASE"+
				" WHEN substr(name, 1, 1) = ? THEN value + ?"+
				" WHEN substr(name, 1, 1) = ? THEN value + ?"+
				" ELSE value + ? END",
			query)
	})

	t.Run("No cases", func(t *testing.T) {
		query, args := buildIncrementQuery(employee.IncrementRule{Default: 5}, utils.DollarPlaceholder)
		assert.Equal(t, "UPDATE employees SET value = CASE ELSE value + $1 END", query)
		assert.Equal(t, []any{int64(5)}, args)
	})
}

func TestBuildPrefixSumQuery(t *testing.T) {
	query, args := buildPrefixSumQuery(employee.ReportPrefixes, utils.DollarPlaceholder, "::BIGINT")
	assert.Equal(t,
		"SELECT COALESCE(SUM(value), 0)::BIGINT FROM employees WHERE substr(name, 1, 1) IN ($1, $2, $3)",
		query)
	assert.Equal(t, []any{"A", "B", "C"}, args)

	query, _ = buildPrefixSumQuery([]string{"A"}, utils.QuestionPlaceholder, "")
	assert.Equal(t, "SELECT COALESCE(SUM(value), 0) FROM employees WHERE substr(name, 1, 1) IN (?)", query)
}
