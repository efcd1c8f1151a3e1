package employee

import (
	"fmt"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 100

	// MaxValue giữ value trong khoảng int32 để bulk rule cộng dồn không tràn BIGINT
	MaxValue int64 = math.MaxInt32
)

// EmployeeRequest là body của POST /employees và PUT /employees/:id.
// Value là pointer để phân biệt "thiếu" với 0.
type EmployeeRequest struct {
	Name  string `json:"name"`
	Value *int64 `json:"value"`
}

func (r EmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules()...),
		validation.Field(&r.Value,
			append([]validation.Rule{validation.NotNil.Error("value is required")}, valueRules()...)...,
		),
	)
}

// ToInput chỉ gọi sau khi Validate() pass
func (r EmployeeRequest) ToInput() Input {
	in := Input{Name: r.Name}
	if r.Value != nil {
		in.Value = *r.Value
	}
	return in
}

// Input là dữ liệu service nhận cho create/update.
// Cả hai field luôn được thay thế cùng nhau.
type Input struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

func (in Input) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, nameRules()...),
		validation.Field(&in.Value, valueRules()...),
	)
}

func nameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("name is required"),
		validation.By(notBlank),
		validation.RuneLength(1, MaxNameLength).Error("name cannot be longer than 100 characters"),
	}
}

func valueRules() []validation.Rule {
	return []validation.Rule{
		validation.Min(int64(0)).Error("value must be a non-negative integer"),
		validation.Max(MaxValue).Error(fmt.Sprintf("value cannot be greater than %d", MaxValue)),
	}
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "name is required")
	}
	return nil
}

// EmployeeResponse là DTO phẳng {id, name, value}
type EmployeeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// SumResponse là body 200 của bulk rule
type SumResponse struct {
	Sum int64 `json:"sum"`
}
