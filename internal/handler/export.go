package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/export"
	"github.com/shoab414/Hotel-Management/internal/repository"
)

type ExportHandler struct {
	Repo *repository.Repository
}

// ExportCustomersCSV streams the customer list as UTF-8 CSV.
func (h *ExportHandler) ExportCustomersCSV(c *gin.Context) {
	customers, err := h.Repo.ListCustomers("")
	if err != nil {
		respondError(c, err)
		return
	}

	rows := make([][]string, 0, len(customers))
	for _, cust := range customers {
		rows = append(rows, []string{
			fmt.Sprintf("%d", cust.ID),
			cust.Name,
			cust.Phone,
			cust.Email,
		})
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	if err := export.WriteCSV(c.Writer, []string{"ID", "Name", "Phone", "Email"}, rows); err != nil {
		respondError(c, err)
	}
}

// ExportSalesXLSX streams a payments workbook, optionally bounded by
// from/to dates (YYYY-MM-DD).
func (h *ExportHandler) ExportSalesXLSX(c *gin.Context) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(billing.DateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(billing.DateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
			return
		}
		to = t.AddDate(0, 0, 1)
	}

	payments, err := h.Repo.ListPayments(from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="sales_report.xlsx"`)
	if err := export.WriteSalesReport(c.Writer, payments); err != nil {
		respondError(c, err)
	}
}
