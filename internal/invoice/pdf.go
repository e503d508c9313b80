// Package invoice renders itemized order invoices to PDF files on disk.
package invoice

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/shoab414/Hotel-Management/internal/billing"
)

// Line is one invoice row.
type Line struct {
	Name  string
	Qty   int
	Price float64
}

// Invoice is everything the PDF shows.
type Invoice struct {
	OrderID  uint
	IssuedAt time.Time
	Lines    []Line
	Subtotal float64
	GST      float64
	GSTRate  float64
	Total    float64
	Method   string
}

// Generator writes invoices into a fixed output directory.
type Generator struct {
	OutputDir string
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{OutputDir: outputDir}
}

// FileName is deterministic per order so regenerating overwrites rather
// than accumulating copies.
func (g *Generator) FileName(orderID uint) string {
	return filepath.Join(g.OutputDir, fmt.Sprintf("invoice_%d.pdf", orderID))
}

// Generate writes the invoice PDF and returns its path.
func (g *Generator) Generate(inv Invoice) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Order #%d - %s", inv.OrderID, inv.IssuedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(10)

	// Item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range inv.Lines {
		pdf.CellFormat(100, 8, l.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", l.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", l.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", float64(l.Qty)*l.Price), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: Rs %.2f", inv.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("GST (%.0f%%): Rs %.2f", inv.GSTRate*100, inv.GST))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: Rs %.2f", billing.Round2(inv.Total)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Payment Method: %s", inv.Method))

	path := g.FileName(inv.OrderID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write invoice pdf: %w", err)
	}
	return path, nil
}
