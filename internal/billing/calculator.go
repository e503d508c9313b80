// Package billing holds the checkout arithmetic: nights stayed, room
// charges, order charges and GST. Pure computation, no storage access.
package billing

import (
	"math"
	"time"
)

// DateLayout is the ISO date format reservations are stored with.
const DateLayout = "2006-01-02"

type Calculator struct {
	GSTRate float64
}

func NewCalculator(gstRate float64) Calculator {
	return Calculator{GSTRate: gstRate}
}

// Nights returns the billable night count between checkIn (ISO date) and
// the checkout date: at least 1, and a full day per calendar day between
// the two. An unparseable check-in counts as checking in on checkout day.
func Nights(checkIn string, checkout time.Time) int {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		in = checkout
	}
	out := time.Date(checkout.Year(), checkout.Month(), checkout.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, time.UTC)
	nights := int(out.Sub(start).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// GST computes the tax on amount, rounded to two decimals.
func (c Calculator) GST(amount float64) float64 {
	return Round2(amount * c.GSTRate)
}

// Statement is an itemized checkout computation.
type Statement struct {
	Nights      int     `json:"nights"`
	RoomRate    float64 `json:"room_rate"`
	RoomTotal   float64 `json:"room_total"`
	OrdersTotal float64 `json:"orders_total"`
	Subtotal    float64 `json:"subtotal"`
	GST         float64 `json:"gst"`
	GrandTotal  float64 `json:"grand_total"`
}

// Checkout builds the full statement for a stay: nights x rate plus
// outstanding order charges, taxed at the calculator's rate.
func (c Calculator) Checkout(checkIn string, checkoutDate time.Time, roomRate, ordersTotal float64) Statement {
	nights := Nights(checkIn, checkoutDate)
	roomTotal := Round2(float64(nights) * roomRate)
	subtotal := Round2(roomTotal + ordersTotal)
	gst := c.GST(subtotal)
	return Statement{
		Nights:      nights,
		RoomRate:    roomRate,
		RoomTotal:   roomTotal,
		OrdersTotal: Round2(ordersTotal),
		Subtotal:    subtotal,
		GST:         gst,
		GrandTotal:  Round2(subtotal + gst),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
