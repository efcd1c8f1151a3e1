package employee

// Employee là record lưu trong bảng employees.
// ID do store cấp khi tạo và không bao giờ đổi.
type Employee struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Value int64  `json:"value" db:"value"`
}

// ToResponse map entity sang wire shape
func (e *Employee) ToResponse() *EmployeeResponse {
	return &EmployeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Value: e.Value,
	}
}
