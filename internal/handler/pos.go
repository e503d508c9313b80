package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/repository"
)

// POSHandler covers tables, orders and the kitchen flow.
type POSHandler struct {
	Repo *repository.Repository
}

func (h *POSHandler) ListTables(c *gin.Context) {
	tables, err := h.Repo.ListTables()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *POSHandler) CreateTable(c *gin.Context) {
	var req struct {
		Number int `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, err := h.Repo.CreateTable(req.Number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *POSHandler) SetTableStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.SetTableStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table status updated"})
}

func (h *POSHandler) TableOrders(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	orders, err := h.Repo.TableOrders(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type OpenOrderRequest struct {
	TableID    *uint                  `json:"table_id"`
	CustomerID *uint                  `json:"customer_id"`
	Lines      []repository.OrderLine `json:"lines" binding:"required"`
}

func (h *POSHandler) OpenOrder(c *gin.Context) {
	var req OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Repo.OpenOrder(req.TableID, req.CustomerID, req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *POSHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.Repo.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *POSHandler) SendToKitchen(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.SendToKitchen(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order sent to kitchen"})
}

func (h *POSHandler) MarkServed(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.MarkServed(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order served"})
}

func (h *POSHandler) UpdateKitchenStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.UpdateKitchenStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kitchen status updated"})
}

func (h *POSHandler) SettleOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.Repo.SettleOrder(id, req.Method, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	if payment == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Order settled, nothing to charge"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *POSHandler) CancelOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.CancelOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

// CheckoutTable settles everything unpaid on the table and returns the
// itemized bill.
func (h *POSHandler) CheckoutTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bill, err := h.Repo.CheckoutTable(id, req.Method, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}
