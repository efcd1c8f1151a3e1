package employee

import "context"

// Repository định nghĩa contract cho data access layer.
// Implementations: Postgres (pgx), SQLite, và cached decorator (Redis).
type Repository interface {
	// ========================================
	// BASIC CRUD
	// ========================================

	// List trả về toàn bộ records theo thứ tự id
	List(ctx context.Context) ([]Employee, error)

	// FindByID returns ErrEmployeeNotFound nếu không có record
	FindByID(ctx context.Context, id int64) (*Employee, error)

	// Create insert record mới và set e.ID = id do store cấp
	Create(ctx context.Context, e *Employee) error

	// Update ghi đè name + value. Returns ErrEmployeeNotFound, không bao giờ insert
	Update(ctx context.Context, e *Employee) error

	// Delete returns ErrEmployeeNotFound nếu record không tồn tại
	Delete(ctx context.Context, id int64) error

	// ========================================
	// SEEDING
	// ========================================

	Count(ctx context.Context) (int64, error)

	// CreateBatch insert toàn bộ hoặc không gì cả
	CreateBatch(ctx context.Context, employees []Employee) error

	// ========================================
	// BULK RULE
	// ========================================

	// ApplyIncrementRule chạy MỘT câu UPDATE ... CASE trên toàn bảng.
	// Returns số rows bị ảnh hưởng.
	ApplyIncrementRule(ctx context.Context, rule IncrementRule) (int64, error)

	// SumValuesByNamePrefix: SUM(value) của records có ký tự đầu thuộc prefixes.
	// Tập rỗng trả về 0.
	SumValuesByNamePrefix(ctx context.Context, prefixes []string) (int64, error)
}
