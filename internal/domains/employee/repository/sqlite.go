package repository

import (
	"context"
	"database/sql"
	"errors"

	"employee-api/internal/domains/employee"
	"employee-api/internal/shared/utils"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository dùng *sql.DB mở bằng driver go-sqlite3
func NewSQLiteRepository(db *sql.DB) employee.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, value FROM employees ORDER BY id`)
	if err != nil {
		return nil, employee.NewStoreError("list", err)
	}
	defer rows.Close()

	list := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Value); err != nil {
			return nil, employee.NewStoreError("list", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, employee.NewStoreError("list", err)
	}
	return list, nil
}

func (r *sqliteRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, value FROM employees WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &e.Value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, employee.NewStoreError("find by id", err)
	}
	return &e, nil
}

func (r *sqliteRepository) Create(ctx context.Context, e *employee.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (name, value) VALUES (?, ?)`, e.Name, e.Value,
	)
	if err != nil {
		return employee.NewStoreError("create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return employee.NewStoreError("create", err)
	}
	e.ID = id
	return nil
}

func (r *sqliteRepository) Update(ctx context.Context, e *employee.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET name = ?, value = ? WHERE id = ?`, e.Name, e.Value, e.ID,
	)
	if err != nil {
		return employee.NewStoreError("update", err)
	}
	return notFoundIfNoRows(res, "update")
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return employee.NewStoreError("delete", err)
	}
	return notFoundIfNoRows(res, "delete")
}

func notFoundIfNoRows(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return employee.NewStoreError(op, err)
	}
	if rows == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *sqliteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, employee.NewStoreError("count", err)
	}
	return n, nil
}

func (r *sqliteRepository) CreateBatch(ctx context.Context, employees []employee.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return employee.NewStoreError("create batch", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO employees (name, value) VALUES (?, ?)`)
	if err != nil {
		return employee.NewStoreError("create batch", err)
	}
	defer stmt.Close()

	for _, e := range employees {
		if _, err := stmt.ExecContext(ctx, e.Name, e.Value); err != nil {
			return employee.NewStoreError("create batch", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return employee.NewStoreError("create batch", err)
	}
	return nil
}

func (r *sqliteRepository) ApplyIncrementRule(ctx context.Context, rule employee.IncrementRule) (int64, error) {
	query, args := buildIncrementQuery(rule, utils.QuestionPlaceholder)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, employee.NewStoreError("apply increment rule", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, employee.NewStoreError("apply increment rule", err)
	}
	return rows, nil
}

func (r *sqliteRepository) SumValuesByNamePrefix(ctx context.Context, prefixes []string) (int64, error) {
	if len(prefixes) == 0 {
		return 0, nil
	}

	query, args := buildPrefixSumQuery(prefixes, utils.QuestionPlaceholder, "")

	var sum int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, employee.NewStoreError("sum by name prefix", err)
	}
	return sum, nil
}
