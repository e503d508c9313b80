package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/repository"
)

// GuestHandler covers customers and the guest overview.
type GuestHandler struct {
	Repo *repository.Repository
}

func (h *GuestHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Repo.ListCustomers(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *GuestHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer := models.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := h.Repo.CreateCustomer(&customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *GuestHandler) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer := models.Customer{ID: id, Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := h.Repo.UpdateCustomer(&customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated"})
}

func (h *GuestHandler) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteCustomer(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

func (h *GuestHandler) ListGuests(c *gin.Context) {
	guests, err := h.Repo.ListGuests()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

type QuickReserveRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	CheckIn string `json:"check_in"`
}

// QuickReserve registers a walk-in guest and books the first free room;
// when the house is full the reservation is waitlisted without a room.
func (h *GuestHandler) QuickReserve(c *gin.Context) {
	var req QuickReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := h.Repo.QuickReserve(req.Name, req.Phone, req.CheckIn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// CheckoutByCustomer finds the guest's latest active reservation and runs
// the billed checkout against it.
func (h *GuestHandler) CheckoutByCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := h.Repo.LatestActiveReservation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.Repo.CheckoutReservation(reservation.ID, req.Method, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
