package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/invoice"
	"github.com/shoab414/Hotel-Management/internal/repository"
)

// BillingHandler covers the billing screen: recent order summaries and
// invoice generation.
type BillingHandler struct {
	Repo     *repository.Repository
	Invoices *invoice.Generator
}

func (h *BillingHandler) ListOrders(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	summaries, err := h.Repo.ListOrderSummaries(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

type InvoiceRequest struct {
	Method string `json:"method" binding:"required"`
}

// GenerateInvoice renders the order's itemized invoice PDF to disk and
// returns its path.
func (h *BillingHandler) GenerateInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Repo.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}

	calc := h.Repo.Calculator()
	inv := invoice.Invoice{
		OrderID:  order.ID,
		IssuedAt: time.Now(),
		GSTRate:  calc.GSTRate,
		Method:   req.Method,
	}
	var subtotal float64
	for _, d := range order.Details {
		inv.Lines = append(inv.Lines, invoice.Line{Name: d.Item.Name, Qty: d.Qty, Price: d.Price})
		subtotal += float64(d.Qty) * d.Price
	}
	inv.Subtotal = subtotal
	inv.GST = calc.GST(subtotal)
	inv.Total = subtotal + inv.GST

	path, err := h.Invoices.Generate(inv)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice generated", "path": path})
}
