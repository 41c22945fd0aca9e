package domain

import "fmt"

// The business day runs from 08:00 to 20:00, measured in minutes since
// opening. Minute 360 (14:00) splits the morning and afternoon shifts.
const (
	DayStart   = 0
	MorningEnd = 360
	DayEnd     = 720

	baseHour = 8
)

// Client is one arriving customer: the minute they join the queue and how
// many products they bring to the till.
type Client struct {
	ID          int `json:"id"`
	ArrivalTime int `json:"arrival_time"` // minutes since opening, in [0, 720)
	Products    int `json:"products"`     // > 0
}

// ArrivalDate renders the arrival minute as a wall-clock HH:MM string.
func (c *Client) ArrivalDate() string {
	hour := baseHour + c.ArrivalTime/60
	minute := c.ArrivalTime % 60
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
