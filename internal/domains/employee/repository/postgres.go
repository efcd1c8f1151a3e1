package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-api/internal/domains/employee"
	"employee-api/internal/shared/utils"
	"employee-api/pkg/database"
)

// postgresRepository là concrete implementation của employee.Repository trên pgx pool.
// Struct private - chỉ expose interface qua constructor.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) employee.Repository {
	return &postgresRepository{pool: pool}
}

// ========================================
// BASIC CRUD OPERATIONS
// ========================================

func (r *postgresRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, value FROM employees ORDER BY id`)
	if err != nil {
		return nil, employee.NewStoreError("list", err)
	}

	// CollectRows tự close rows và trả lỗi iteration
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[employee.Employee])
	if err != nil {
		return nil, employee.NewStoreError("list", err)
	}
	return list, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var e employee.Employee
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, value FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, employee.NewStoreError("find by id", err)
	}
	return &e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *employee.Employee) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO employees (name, value) VALUES ($1, $2) RETURNING id`,
		e.Name, e.Value,
	).Scan(&e.ID)
	if err != nil {
		return employee.NewStoreError("create", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, e *employee.Employee) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE employees SET name = $1, value = $2 WHERE id = $3`,
		e.Name, e.Value, e.ID,
	)
	if err != nil {
		return employee.NewStoreError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return employee.NewStoreError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ========================================
// SEEDING
// ========================================

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, employee.NewStoreError("count", err)
	}
	return n, nil
}

// CreateBatch dùng pgx.Batch trong một transaction: lỗi ở bất kỳ row nào → rollback hết
func (r *postgresRepository) CreateBatch(ctx context.Context, employees []employee.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, e := range employees {
			batch.Queue(`INSERT INTO employees (name, value) VALUES ($1, $2)`, e.Name, e.Value)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return employee.NewStoreError("create batch", err)
	}
	return nil
}

// ========================================
// BULK RULE
// ========================================

func (r *postgresRepository) ApplyIncrementRule(ctx context.Context, rule employee.IncrementRule) (int64, error) {
	query, args := buildIncrementQuery(rule, utils.DollarPlaceholder)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, employee.NewStoreError("apply increment rule", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) SumValuesByNamePrefix(ctx context.Context, prefixes []string) (int64, error) {
	if len(prefixes) == 0 {
		return 0, nil
	}

	query, args := buildPrefixSumQuery(prefixes, utils.DollarPlaceholder, "::BIGINT")

	var sum int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, employee.NewStoreError("sum by name prefix", err)
	}
	return sum, nil
}
