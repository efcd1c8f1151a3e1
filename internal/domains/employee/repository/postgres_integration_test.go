//go:build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"employee-api/internal/config"
	"employee-api/internal/domains/employee"
	"employee-api/internal/infrastructure/database"
)

// Chạy với: DB_HOST=... DB_NAME=<test db> go test -tags integration ./internal/domains/employee/repository/
// Bảng employees bị TRUNCATE trước mỗi test, chỉ trỏ vào database test.
type PostgresRepositorySuite struct {
	suite.Suite
	db   *database.PostgresDB
	repo employee.Repository
	ctx  context.Context
}

func TestPostgresRepositorySuite(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set")
	}
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	cfg, err := config.LoadDatabaseConfig()
	s.Require().NoError(err)
	cfg.MaxRetries = 1

	s.db = database.NewPostgresDB(cfg)
	s.Require().NoError(s.db.Connect(s.ctx))
	s.Require().NoError(s.db.EnsureSchema(s.ctx))
	s.repo = NewPostgresRepository(s.db.Pool)
}

func (s *PostgresRepositorySuite) TearDownSuite() {
	s.db.Close()
}

func (s *PostgresRepositorySuite) SetupTest() {
	_, err := s.db.Pool.Exec(s.ctx, `TRUNCATE employees RESTART IDENTITY`)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.CreateBatch(s.ctx, fixture))
}

func (s *PostgresRepositorySuite) TestListAndCount() {
	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, len(fixture))
	s.Equal(employee.Employee{ID: 1, Name: "Alice", Value: 4000}, list[0])

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(len(fixture)), n)
}

func (s *PostgresRepositorySuite) TestCrudNotFound() {
	e := &employee.Employee{Name: "Nina", Value: 7}
	s.Require().NoError(s.repo.Create(s.ctx, e))
	s.Positive(e.ID)

	s.Require().NoError(s.repo.Update(s.ctx, &employee.Employee{ID: e.ID, Name: "Nina", Value: 8}))
	got, err := s.repo.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(int64(8), got.Value)

	s.Require().NoError(s.repo.Delete(s.ctx, e.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, e.ID), employee.ErrEmployeeNotFound)
	s.ErrorIs(s.repo.Update(s.ctx, e), employee.ErrEmployeeNotFound)
	_, err = s.repo.FindByID(s.ctx, e.ID)
	s.ErrorIs(err, employee.ErrEmployeeNotFound)
}

func (s *PostgresRepositorySuite) TestIncrementAndSum() {
	sum, err := s.repo.SumValuesByNamePrefix(s.ctx, employee.ReportPrefixes)
	s.Require().NoError(err)
	s.Equal(int64(12000), sum)

	rows, err := s.repo.ApplyIncrementRule(s.ctx, employee.ValueIncrementRule)
	s.Require().NoError(err)
	s.Equal(int64(len(fixture)), rows)

	sum, err = s.repo.SumValuesByNamePrefix(s.ctx, employee.ReportPrefixes)
	s.Require().NoError(err)
	s.Equal(int64(12300), sum)

	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	values := map[string]int64{}
	for _, e := range list {
		values[e.Name] = e.Value
	}
	s.Equal(int64(11), values["Eddie"])
	s.Equal(int64(30), values["Gina"])
	s.Equal(int64(130), values["Zara"])
}

func (s *PostgresRepositorySuite) TestCreateBatchIsAllOrNothing() {
	_, err := s.db.Pool.Exec(s.ctx, `TRUNCATE employees`)
	s.Require().NoError(err)

	err = s.repo.CreateBatch(s.ctx, []employee.Employee{
		{Name: "Valid", Value: 1},
		{Name: strings.Repeat("x", 101), Value: 1},
	})
	var serr *employee.StoreError
	s.ErrorAs(err, &serr)

	n, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *PostgresRepositorySuite) TestEmptyStoreSumIsZero() {
	_, err := s.db.Pool.Exec(s.ctx, `TRUNCATE employees`)
	s.Require().NoError(err)

	sum, err := s.repo.SumValuesByNamePrefix(s.ctx, employee.ReportPrefixes)
	s.Require().NoError(err)
	s.Zero(sum)
}
