package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/repository"
)

type MenuHandler struct {
	Repo *repository.Repository
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	items, err := h.Repo.ListMenuItems(c.Query("category"), c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.Repo.MenuCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Active   *bool   `json:"active"`
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	item := models.MenuItem{Name: req.Name, Category: req.Category, Price: req.Price, Active: active}
	if err := h.Repo.CreateMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	item := models.MenuItem{ID: id, Name: req.Name, Category: req.Category, Price: req.Price, Active: active}
	if err := h.Repo.UpdateMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated"})
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteMenuItem(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func (h *MenuHandler) SetActive(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.SetMenuItemActive(id, *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated"})
}
