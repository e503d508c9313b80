package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/models"
)

func (r *Repository) ListCustomers(query string) ([]models.Customer, error) {
	q := r.db.Order("id desc")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	var customers []models.Customer
	err := q.Find(&customers).Error
	return customers, err
}

func (r *Repository) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &customer, nil
}

func (r *Repository) CreateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	return r.db.Create(customer).Error
}

func (r *Repository) UpdateCustomer(customer *models.Customer) error {
	res := r.db.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":  customer.Name,
			"phone": customer.Phone,
			"email": customer.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteCustomer(id uint) error {
	res := r.db.Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Guest is a customer together with their latest active stay, if any.
type Guest struct {
	CustomerID    uint   `json:"customer_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ReservationID *uint  `json:"reservation_id,omitempty"`
	Status        string `json:"status,omitempty"`
	RoomNumber    string `json:"room_number,omitempty"`
	CheckIn       string `json:"check_in,omitempty"`
}

// ListGuests returns every customer, joined with their most recent
// Reserved/CheckedIn reservation and its room.
func (r *Repository) ListGuests() ([]Guest, error) {
	customers, err := r.ListCustomers("")
	if err != nil {
		return nil, err
	}
	guests := make([]Guest, 0, len(customers))
	for _, c := range customers {
		g := Guest{CustomerID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
		var res models.Reservation
		err := r.db.Preload("Room").
			Where("customer_id = ? AND status IN ?", c.ID,
				[]string{models.ReservationReserved, models.ReservationCheckedIn}).
			Order("id desc").First(&res).Error
		if err == nil {
			id := res.ID
			g.ReservationID = &id
			g.Status = res.Status
			g.CheckIn = res.CheckIn
			if res.Room != nil {
				g.RoomNumber = res.Room.Number
			}
		}
		guests = append(guests, g)
	}
	return guests, nil
}

// QuickReserve handles a walk-in: creates the customer and books the first
// room that is Available and has no active reservation, in one transaction.
// With every room taken the reservation is created roomless (waitlisted).
func (r *Repository) QuickReserve(name, phone, checkIn string) (*models.Reservation, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if checkIn == "" {
		checkIn = time.Now().Format(billing.DateLayout)
	}
	if _, err := time.Parse(billing.DateLayout, checkIn); err != nil {
		return nil, fmt.Errorf("%w: check-in must be a YYYY-MM-DD date", ErrValidation)
	}
	var reservation *models.Reservation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		customer := models.Customer{Name: name, Phone: phone}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		var roomID *uint
		var room models.Room
		err := tx.Where("status = ? AND id NOT IN (?)", models.StatusAvailable,
			tx.Model(&models.Reservation{}).Select("room_id").
				Where("room_id IS NOT NULL AND status IN ?",
					[]string{models.ReservationReserved, models.ReservationCheckedIn})).
			Order("number").First(&room).Error
		if err == nil {
			roomID = &room.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		res := models.Reservation{
			CustomerID: customer.ID,
			RoomID:     roomID,
			CheckIn:    checkIn,
			Status:     models.ReservationReserved,
		}
		if err := tx.Create(&res).Error; err != nil {
			return err
		}
		res.Customer = customer
		reservation = &res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// LatestActiveReservation finds the customer's newest Reserved/CheckedIn
// reservation, for checkout-by-guest flows.
func (r *Repository) LatestActiveReservation(customerID uint) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.Preload("Room").Preload("Customer").
		Where("customer_id = ? AND status IN ?", customerID,
			[]string{models.ReservationReserved, models.ReservationCheckedIn}).
		Order("id desc").First(&res).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &res, nil
}
