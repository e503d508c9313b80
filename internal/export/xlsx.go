package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/shoab414/Hotel-Management/internal/models"
)

// WriteSalesReport writes a payments workbook with one header row and one
// row per settlement.
func WriteSalesReport(w io.Writer, payments []models.Payment) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payments"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Order ID", "Reservation ID", "Amount", "GST", "Method", "Paid At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range payments {
		values := []interface{}{
			p.ID,
			refOrEmpty(p.OrderID),
			refOrEmpty(p.ReservationID),
			p.Amount,
			p.GST,
			p.Method,
			p.PaidAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func refOrEmpty(id *uint) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%d", *id)
}
