package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/repository"
)

type InventoryHandler struct {
	Repo *repository.Repository
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	var (
		items []models.Inventory
		err   error
	)
	if c.Query("low_stock") == "true" {
		items, err = h.Repo.LowStockItems()
	} else {
		items, err = h.Repo.ListInventory()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type InventoryItemRequest struct {
	Name       string  `json:"name" binding:"required"`
	Qty        float64 `json:"qty"`
	Unit       string  `json:"unit" binding:"required"`
	Threshold  float64 `json:"threshold"`
	SupplierID *uint   `json:"supplier_id"`
	Price      float64 `json:"price"`
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := models.Inventory{
		Name:       req.Name,
		Qty:        req.Qty,
		Unit:       req.Unit,
		Threshold:  req.Threshold,
		SupplierID: req.SupplierID,
		Price:      req.Price,
	}
	if err := h.Repo.CreateInventoryItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := models.Inventory{
		ID:         id,
		Name:       req.Name,
		Qty:        req.Qty,
		Unit:       req.Unit,
		Threshold:  req.Threshold,
		SupplierID: req.SupplierID,
		Price:      req.Price,
	}
	if err := h.Repo.UpdateInventoryItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item updated"})
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteInventoryItem(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

type ConsumptionRequest struct {
	InventoryID uint    `json:"inventory_id" binding:"required"`
	Qty         float64 `json:"qty" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Notes       string  `json:"notes"`
}

func (h *InventoryHandler) RecordConsumption(c *gin.Context) {
	var req ConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.Repo.RecordConsumption(req.InventoryID, req.Qty, req.Date, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *InventoryHandler) ListConsumption(c *gin.Context) {
	records, err := h.Repo.ListConsumption(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *InventoryHandler) SummarizeConsumption(c *gin.Context) {
	summary, err := h.Repo.SummarizeConsumption(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *InventoryHandler) DeleteConsumption(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteConsumption(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consumption record deleted"})
}

func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.Repo.ListSuppliers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

type SupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier := models.Supplier{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := h.Repo.CreateSupplier(&supplier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier := models.Supplier{ID: id, Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := h.Repo.UpdateSupplier(&supplier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier updated"})
}

func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteSupplier(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
