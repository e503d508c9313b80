package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/repository"
)

// HotelHandler covers rooms and reservations.
type HotelHandler struct {
	Repo *repository.Repository
}

func (h *HotelHandler) ListRooms(c *gin.Context) {
	var (
		rooms []models.Room
		err   error
	)
	if c.Query("available") == "true" {
		rooms, err = h.Repo.AvailableRooms()
	} else {
		rooms, err = h.Repo.ListRooms()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type RoomRequest struct {
	Number   string  `json:"number" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Status   string  `json:"status"`
	Rate     float64 `json:"rate" binding:"required"`
}

func (h *HotelHandler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := models.Room{Number: req.Number, Category: req.Category, Status: req.Status, Rate: req.Rate}
	if err := h.Repo.CreateRoom(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *HotelHandler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := models.Room{ID: id, Category: req.Category, Status: req.Status, Rate: req.Rate}
	if err := h.Repo.UpdateRoom(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room updated"})
}

func (h *HotelHandler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteRoom(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

func (h *HotelHandler) SetRoomStatus(c *gin.Context) {
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
	if err := h.Repo.SetRoomStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room status updated"})
}

func (h *HotelHandler) ListReservations(c *gin.Context) {
	reservations, err := h.Repo.ListReservations(c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

type ReserveRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	RoomID     *uint  `json:"room_id"`
	CheckIn    string `json:"check_in" binding:"required"`
}

func (h *HotelHandler) CreateReservation(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reservation, err := h.Repo.Reserve(req.CustomerID, req.RoomID, req.CheckIn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (h *HotelHandler) CheckIn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.CheckIn(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked in"})
}

// CheckOut is the housekeeping variant: reservation closed, room sent to
// Cleaning, no billing.
func (h *HotelHandler) CheckOut(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.CheckOut(id, time.Now()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked out"})
}

func (h *HotelHandler) CancelReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.CancelReservation(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

type CheckoutRequest struct {
	Method string `json:"method" binding:"required"`
}

// Checkout finalizes the stay with billing: settles unpaid orders, records
// the room charge, frees the room.
func (h *HotelHandler) Checkout(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.Repo.CheckoutReservation(id, req.Method, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
