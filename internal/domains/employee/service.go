package employee

import "context"

// Service định nghĩa business logic layer contract
type Service interface {
	List(ctx context.Context) ([]*EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*EmployeeResponse, error)
	Create(ctx context.Context, in Input) (*EmployeeResponse, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error

	// IncrementAndSumABC chạy bulk rule.
	// ok=false nghĩa là "absent": tổng dưới ngưỡng hoặc không có record A/B/C.
	IncrementAndSumABC(ctx context.Context) (sum int64, ok bool, err error)

	// SeedIfEmpty nạp seed list khi bảng rỗng. Returns số records đã insert.
	SeedIfEmpty(ctx context.Context, seeds []Employee) (int, error)
}
