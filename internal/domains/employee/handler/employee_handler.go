package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee-api/internal/domains/employee"
	"employee-api/internal/shared/middleware"
	"employee-api/internal/shared/response"
	"employee-api/pkg/logger"
)

// EmployeeHandler xử lý HTTP requests cho employee domain.
// Stateless - chỉ chứa dependencies.
type EmployeeHandler struct {
	service employee.Service
}

func NewEmployeeHandler(service employee.Service) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// GetByID handles GET /employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	// STEP 1: PARSE + VALIDATE REQUEST BODY
	var req employee.EmployeeRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	// STEP 2: CALL SERVICE LAYER
	result, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	// STEP 3: 201 Created + Location của resource mới
	c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), result.ID))
	response.JSON(c, http.StatusCreated, result)
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req employee.EmployeeRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// IncrementAndSum handles POST /employees/increment-and-sum
// 200 {"sum": n} khi đạt ngưỡng, 204 khi dưới ngưỡng.
func (h *EmployeeHandler) IncrementAndSum(c *gin.Context) {
	sum, ok, err := h.service.IncrementAndSumABC(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !ok {
		response.NoContent(c)
		return
	}

	response.JSON(c, http.StatusOK, employee.SumResponse{Sum: sum})
}

// ========================================
// HELPERS
// ========================================

// handleError map domain errors thành HTTP status codes
func (h *EmployeeHandler) handleError(c *gin.Context, err error) {
	var verr *employee.ValidationError

	switch {
	// 400 Bad Request
	case errors.As(err, &verr):
		response.ValidationError(c, verr.Fields)

	// 404 Not Found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found")

	// 500 - log full detail, trả message generic
	default:
		_ = c.Error(err)
		logger.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		response.InternalServerError(c)
	}
}

func (h *EmployeeHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, employee.NewFieldError("id", "id must be an integer"))
		return 0, false
	}
	return id, true
}

// bindAndValidate parse JSON body rồi chạy ozzo Validate().
// Trả false khi response 400 đã được ghi.
func (h *EmployeeHandler) bindAndValidate(c *gin.Context, req *employee.EmployeeRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			h.handleError(c, employee.NewFieldError(typeErr.Field,
				fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)))
			return false
		}
		h.handleError(c, employee.NewFieldError("body", "request body must be a valid JSON object"))
		return false
	}

	if err := req.Validate(); err != nil {
		h.handleError(c, employee.NewValidationError(err))
		return false
	}
	return true
}
