package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"employee-api/internal/domains/employee"
)

const (
	exportSheet       = "Employees"
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{"ID", "Name", "Value"}

// Export handles GET /employees/export - trả về file xlsx chứa toàn bộ records
func (h *EmployeeHandler) Export(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	f, err := buildWorkbook(list)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", exportContentType)

	if err := f.Write(c.Writer); err != nil {
		// header đã gửi, chỉ còn cách ghi nhận lỗi
		_ = c.Error(fmt.Errorf("write workbook: %w", err))
	}
}

func buildWorkbook(list []*employee.EmployeeResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", "C1", headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, e := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{e.ID, e.Name, e.Value}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "B", "B", 30); err != nil {
		f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}

	return f, nil
}
