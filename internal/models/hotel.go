package models

// Room categories.
const (
	CategoryStandard = "Standard"
	CategoryDeluxe   = "Deluxe"
	CategorySuite    = "Suite"
)

// Room and table statuses share the same vocabulary.
const (
	StatusAvailable = "Available"
	StatusOccupied  = "Occupied"
	StatusCleaning  = "Cleaning"
)

// Reservation statuses.
const (
	ReservationReserved   = "Reserved"
	ReservationCheckedIn  = "CheckedIn"
	ReservationCheckedOut = "CheckedOut"
	ReservationCancelled  = "Cancelled"
)

type Customer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:15" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
}

type Room struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Number   string  `gorm:"size:10;unique;not null" json:"number"`
	Category string  `gorm:"size:20;not null" json:"category"`
	Status   string  `gorm:"size:20;not null;default:Available" json:"status"`
	Rate     float64 `gorm:"not null" json:"rate"`
}

// Reservation links a customer to a room for a date range. RoomID is nullable:
// a waitlisted reservation has no room and skips all room side effects.
// CheckIn and CheckOut hold ISO dates (YYYY-MM-DD); CheckOut stays nil until
// the guest actually checks out.
type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	RoomID     *uint     `json:"room_id"`
	Room       *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	CheckIn    string    `gorm:"size:10;not null" json:"check_in"`
	CheckOut   *string   `gorm:"size:10" json:"check_out"`
	Status     string    `gorm:"size:20;not null" json:"status"`
}
