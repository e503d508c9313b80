package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/repository"
)

type AnalyticsHandler struct {
	Repo *repository.Repository
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.Repo.Dashboard(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) RevenueSeries(c *gin.Context) {
	points, err := h.Repo.RevenueSeries(time.Now(), 7)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *AnalyticsHandler) OrdersPerDay(c *gin.Context) {
	points, err := h.Repo.OrdersPerDay(time.Now(), 7)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *AnalyticsHandler) RevenueByCategory(c *gin.Context) {
	rows, err := h.Repo.RevenueByCategory()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) PaymentMethodSplit(c *gin.Context) {
	rows, err := h.Repo.PaymentMethodSplit()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
