package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/models"
)

func (r *Repository) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("number").Find(&rooms).Error
	return rooms, err
}

func (r *Repository) AvailableRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("status = ?", models.StatusAvailable).Order("number").Find(&rooms).Error
	return rooms, err
}

func (r *Repository) CreateRoom(room *models.Room) error {
	if room.Number == "" || room.Rate < 0 {
		return fmt.Errorf("%w: room number required, rate must be non-negative", ErrValidation)
	}
	if room.Status == "" {
		room.Status = models.StatusAvailable
	}
	return r.db.Create(room).Error
}

func (r *Repository) UpdateRoom(room *models.Room) error {
	res := r.db.Model(&models.Room{}).Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"category": room.Category,
			"status":   room.Status,
			"rate":     room.Rate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteRoom(id uint) error {
	res := r.db.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRoomStatus sets a room's status directly. Housekeeping uses this to
// flip Cleaning back to Available; concurrent writers race with
// last-write-wins, matching the legacy behavior.
func (r *Repository) SetRoomStatus(id uint, status string) error {
	switch status {
	case models.StatusAvailable, models.StatusOccupied, models.StatusCleaning:
	default:
		return fmt.Errorf("%w: unknown room status %q", ErrValidation, status)
	}
	res := r.db.Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reserve books a room for a customer. roomID may be nil: when no rooms
// are available the reservation goes on the waitlist and all room side
// effects are skipped until one is assigned.
func (r *Repository) Reserve(customerID uint, roomID *uint, checkIn string) (*models.Reservation, error) {
	if _, err := time.Parse(billing.DateLayout, checkIn); err != nil {
		return nil, fmt.Errorf("%w: check-in must be a YYYY-MM-DD date", ErrValidation)
	}
	var customer models.Customer
	if err := r.db.First(&customer, customerID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	if roomID != nil {
		var room models.Room
		if err := r.db.First(&room, *roomID).Error; err != nil {
			return nil, notFoundOr(err)
		}
		var active int64
		r.db.Model(&models.Reservation{}).
			Where("room_id = ? AND status IN ?", *roomID,
				[]string{models.ReservationReserved, models.ReservationCheckedIn}).
			Count(&active)
		if active > 0 {
			return nil, ErrRoomUnavailable
		}
	}
	reservation := models.Reservation{
		CustomerID: customerID,
		RoomID:     roomID,
		CheckIn:    checkIn,
		Status:     models.ReservationReserved,
	}
	if err := r.db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CheckIn moves a reservation from Reserved to CheckedIn and marks the
// room Occupied in the same transaction.
func (r *Repository) CheckIn(reservationID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, reservationID).Error; err != nil {
			return notFoundOr(err)
		}
		if res.Status != models.ReservationReserved {
			return fmt.Errorf("%w: cannot check in a %s reservation", ErrInvalidTransition, res.Status)
		}
		if err := tx.Model(&res).Update("status", models.ReservationCheckedIn).Error; err != nil {
			return err
		}
		if res.RoomID != nil {
			if err := tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).
				Update("status", models.StatusOccupied).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CheckOut moves a reservation from CheckedIn to CheckedOut, stamps the
// checkout date, and hands the room to housekeeping (Cleaning). The
// billed checkout path is CheckoutReservation.
func (r *Repository) CheckOut(reservationID uint, when time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, reservationID).Error; err != nil {
			return notFoundOr(err)
		}
		if res.Status != models.ReservationCheckedIn {
			return fmt.Errorf("%w: cannot check out a %s reservation", ErrInvalidTransition, res.Status)
		}
		checkOut := when.Format(billing.DateLayout)
		if err := tx.Model(&res).Updates(map[string]interface{}{
			"status":    models.ReservationCheckedOut,
			"check_out": checkOut,
		}).Error; err != nil {
			return err
		}
		if res.RoomID != nil {
			if err := tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).
				Update("status", models.StatusCleaning).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CancelReservation is only legal from Reserved.
func (r *Repository) CancelReservation(reservationID uint) error {
	var res models.Reservation
	if err := r.db.First(&res, reservationID).Error; err != nil {
		return notFoundOr(err)
	}
	if res.Status != models.ReservationReserved {
		return fmt.Errorf("%w: cannot cancel a %s reservation", ErrInvalidTransition, res.Status)
	}
	return r.db.Model(&res).Update("status", models.ReservationCancelled).Error
}

func (r *Repository) ListReservations(activeOnly bool) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := r.db.Preload("Customer").Preload("Room").Order("id desc")
	if activeOnly {
		q = q.Where("status IN ?", []string{models.ReservationReserved, models.ReservationCheckedIn})
	}
	err := q.Find(&reservations).Error
	return reservations, err
}

// CheckoutSummary is the result of a billed reservation checkout.
type CheckoutSummary struct {
	ReservationID uint              `json:"reservation_id"`
	CustomerName  string            `json:"customer_name"`
	RoomNumber    string            `json:"room_number,omitempty"`
	CheckIn       string            `json:"check_in"`
	CheckOut      string            `json:"check_out"`
	Statement     billing.Statement `json:"statement"`
	SettledOrders []uint            `json:"settled_orders"`
}

// CheckoutReservation finalizes a stay: settles every unpaid order of the
// guest (one Payment per order, zero-amount orders skipped), records the
// room charge against the reservation, marks the reservation CheckedOut
// and releases the room. The whole transition is one transaction.
func (r *Repository) CheckoutReservation(reservationID uint, method string, when time.Time) (*CheckoutSummary, error) {
	if err := validMethod(method); err != nil {
		return nil, err
	}
	var summary *CheckoutSummary
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Preload("Customer").Preload("Room").First(&res, reservationID).Error; err != nil {
			return notFoundOr(err)
		}
		if res.Status != models.ReservationReserved && res.Status != models.ReservationCheckedIn {
			return fmt.Errorf("%w: reservation already %s", ErrInvalidTransition, res.Status)
		}

		var unpaid []models.Order
		if err := tx.Where("customer_id = ? AND status NOT IN ?", res.CustomerID,
			[]string{models.OrderPaid, models.OrderCancelled}).Find(&unpaid).Error; err != nil {
			return err
		}

		var ordersTotal float64
		var settled []uint
		for _, order := range unpaid {
			amount, err := orderAmount(tx, order.ID)
			if err != nil {
				return err
			}
			ordersTotal += amount
			if amount > 0 {
				orderID := order.ID
				payment := models.Payment{
					OrderID: &orderID,
					Amount:  billing.Round2(amount),
					GST:     r.calc.GST(amount),
					Method:  method,
					PaidAt:  when,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", models.OrderPaid).Error; err != nil {
				return err
			}
			settled = append(settled, order.ID)
		}

		var roomRate float64
		var roomNumber string
		if res.Room != nil {
			roomRate = res.Room.Rate
			roomNumber = res.Room.Number
		}
		stmt := r.calc.Checkout(res.CheckIn, when, roomRate, ordersTotal)
		if stmt.RoomTotal > 0 {
			resID := res.ID
			payment := models.Payment{
				ReservationID: &resID,
				Amount:        stmt.RoomTotal,
				GST:           r.calc.GST(stmt.RoomTotal),
				Method:        method,
				PaidAt:        when,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}

		checkOut := when.Format(billing.DateLayout)
		if err := tx.Model(&res).Updates(map[string]interface{}{
			"status":    models.ReservationCheckedOut,
			"check_out": checkOut,
		}).Error; err != nil {
			return err
		}
		if res.RoomID != nil {
			if err := tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).
				Update("status", models.StatusAvailable).Error; err != nil {
				return err
			}
		}

		summary = &CheckoutSummary{
			ReservationID: res.ID,
			CustomerName:  res.Customer.Name,
			RoomNumber:    roomNumber,
			CheckIn:       res.CheckIn,
			CheckOut:      checkOut,
			Statement:     stmt,
			SettledOrders: settled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func validMethod(method string) error {
	switch method {
	case models.MethodCash, models.MethodCard, models.MethodUPI:
		return nil
	}
	return fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
}
