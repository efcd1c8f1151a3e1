package employee

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestEmployeeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       EmployeeRequest
		wantField string
	}{
		{name: "valid", req: EmployeeRequest{Name: "Alice", Value: int64Ptr(10)}},
		{name: "zero value accepted", req: EmployeeRequest{Name: "Alice", Value: int64Ptr(0)}},
		{name: "name of 100 characters accepted", req: EmployeeRequest{Name: strings.Repeat("a", 100), Value: int64Ptr(1)}},
		{name: "100 multibyte characters accepted", req: EmployeeRequest{Name: strings.Repeat("é", 100), Value: int64Ptr(1)}},
		{name: "name of 101 characters rejected", req: EmployeeRequest{Name: strings.Repeat("a", 101), Value: int64Ptr(1)}, wantField: "name"},
		{name: "empty name rejected", req: EmployeeRequest{Name: "", Value: int64Ptr(1)}, wantField: "name"},
		{name: "blank name rejected", req: EmployeeRequest{Name: "   \t", Value: int64Ptr(1)}, wantField: "name"},
		{name: "negative value rejected", req: EmployeeRequest{Name: "Bob", Value: int64Ptr(-1)}, wantField: "value"},
		{name: "max value accepted", req: EmployeeRequest{Name: "Bob", Value: int64Ptr(MaxValue)}},
		{name: "value above max rejected", req: EmployeeRequest{Name: "Bob", Value: int64Ptr(MaxValue + 1)}, wantField: "value"},
		{name: "max int64 rejected", req: EmployeeRequest{Name: "Bob", Value: int64Ptr(math.MaxInt64)}, wantField: "value"},
		{name: "missing value rejected", req: EmployeeRequest{Name: "Bob"}, wantField: "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			verr := NewValidationError(err)

			var typed *ValidationError
			require.ErrorAs(t, verr, &typed)
			assert.Contains(t, typed.Fields, tt.wantField)
			assert.Len(t, typed.Fields, 1)
		})
	}
}

func TestEmployeeRequest_ToInput(t *testing.T) {
	in := EmployeeRequest{Name: "Gina", Value: int64Ptr(20)}.ToInput()
	assert.Equal(t, Input{Name: "Gina", Value: 20}, in)

	in = EmployeeRequest{Name: "Gina"}.ToInput()
	assert.Equal(t, int64(0), in.Value)
}

func TestInput_Validate(t *testing.T) {
	assert.NoError(t, Input{Name: "Eddie", Value: 0}.Validate())

	err := NewValidationError(Input{Name: " ", Value: -5}.Validate())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name is required", verr.Fields["name"])
	assert.Equal(t, "value must be a non-negative integer", verr.Fields["value"])
}

func TestInput_ValidateUpperBound(t *testing.T) {
	assert.NoError(t, Input{Name: "Zed", Value: MaxValue}.Validate())

	err := NewValidationError(Input{Name: "Zed", Value: math.MaxInt64 - 50}.Validate())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "value cannot be greater than 2147483647", verr.Fields["value"])
}
