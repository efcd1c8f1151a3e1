package service

import (
	"context"
	"fmt"

	"employee-api/internal/domains/employee"
	"employee-api/pkg/logger"
)

type employeeService struct {
	repo employee.Repository
}

// NewEmployeeService không giữ state giữa các request
func NewEmployeeService(repo employee.Repository) employee.Service {
	return &employeeService{repo: repo}
}

func (s *employeeService) List(ctx context.Context) ([]*employee.EmployeeResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	result := make([]*employee.EmployeeResponse, len(list))
	for i := range list {
		result[i] = list[i].ToResponse()
	}

	logger.Ctx(ctx).Debug().Int("count", len(result)).Msg("Retrieved employees")
	return result, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*employee.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	return e.ToResponse(), nil
}

func (s *employeeService) Create(ctx context.Context, in employee.Input) (*employee.EmployeeResponse, error) {
	// ========== STEP 1: Validate Input ==========
	// Validation luôn chạy trước mutation
	if err := in.Validate(); err != nil {
		return nil, employee.NewValidationError(err)
	}

	// ========== STEP 2: Persist ==========
	e := &employee.Employee{Name: in.Name, Value: in.Value}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	logger.Ctx(ctx).Info().Str("name", e.Name).Int64("id", e.ID).Msg("Created employee")
	return e.ToResponse(), nil
}

func (s *employeeService) Update(ctx context.Context, id int64, in employee.Input) error {
	if err := in.Validate(); err != nil {
		return employee.NewValidationError(err)
	}

	e := &employee.Employee{ID: id, Name: in.Name, Value: in.Value}
	if err := s.repo.Update(ctx, e); err != nil {
		return fmt.Errorf("update employee %d: %w", id, err)
	}

	logger.Ctx(ctx).Info().Int64("id", id).Msg("Updated employee")
	return nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}

	logger.Ctx(ctx).Info().Int64("id", id).Msg("Deleted employee")
	return nil
}

// IncrementAndSumABC:
//  1. một câu UPDATE ... CASE cho toàn bảng (E +1, G +10, còn lại +100)
//  2. một aggregate SELECT trên tên bắt đầu bằng A/B/C
//  3. tổng >= SumThreshold thì trả về, ngược lại "absent"
//
// Step 1 fail thì không chạy step 2.
func (s *employeeService) IncrementAndSumABC(ctx context.Context) (int64, bool, error) {
	// ========== STEP 1: Mass mutation ==========
	rows, err := s.repo.ApplyIncrementRule(ctx, employee.ValueIncrementRule)
	if err != nil {
		return 0, false, fmt.Errorf("increment employee values: %w", err)
	}

	// ========== STEP 2: Aggregate read ==========
	total, err := s.repo.SumValuesByNamePrefix(ctx, employee.ReportPrefixes)
	if err != nil {
		return 0, false, fmt.Errorf("sum employee values: %w", err)
	}

	// ========== STEP 3: Threshold gate ==========
	l := logger.Ctx(ctx)
	if !employee.MeetsThreshold(total) {
		l.Info().Int64("rows", rows).Int64("total", total).Msg("ABC sum after increment below threshold")
		return 0, false, nil
	}

	l.Info().Int64("rows", rows).Int64("total", total).Msg("ABC sum after increment")
	return total, true, nil
}

func (s *employeeService) SeedIfEmpty(ctx context.Context, seeds []employee.Employee) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	if count > 0 {
		logger.Info("Seed skipped, employees table is not empty", map[string]interface{}{
			"count": count,
		})
		return 0, nil
	}

	for i, e := range seeds {
		in := employee.Input{Name: e.Name, Value: e.Value}
		if err := in.Validate(); err != nil {
			return 0, fmt.Errorf("seed record %d: %w", i, employee.NewValidationError(err))
		}
	}

	if err := s.repo.CreateBatch(ctx, seeds); err != nil {
		return 0, fmt.Errorf("seed employees: %w", err)
	}

	logger.Info("Seeded employees", map[string]interface{}{
		"count": len(seeds),
	})
	return len(seeds), nil
}
