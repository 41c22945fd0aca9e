package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrivalDate(t *testing.T) {
	tests := []struct {
		arrival int
		want    string
	}{
		{0, "08:00"},
		{60, "09:00"},
		{172, "10:52"},
		{360, "14:00"},
		{719, "19:59"},
	}

	for _, tt := range tests {
		c := &Client{ArrivalTime: tt.arrival}
		assert.Equal(t, tt.want, c.ArrivalDate())
	}
}

func TestAvailableFor(t *testing.T) {
	morningOnly := &Cashier{Name: "Ana", AvailableInTheMorning: true}

	assert.True(t, morningOnly.AvailableFor(0))
	assert.True(t, morningOnly.AvailableFor(MorningEnd)) // minute 360 still counts as morning
	assert.False(t, morningOnly.AvailableFor(MorningEnd+1))

	idle := &Cashier{Name: "Bruno"}
	assert.False(t, idle.AvailableFor(10))
	assert.False(t, idle.AvailableFor(500))
}

func TestTimetableKeepsOnlyActiveEntries(t *testing.T) {
	ana := &Cashier{Name: "Ana", AvailableInTheMorning: true, EffectivenessAverage: 1}
	client := &Client{ID: 3, ArrivalTime: 10, Products: 4}

	rows := Timetable([]SolutionEntry{
		{Cashier: ana, Client: client, Start: 10, End: 11, Duration: 1, Active: true},
		{Cashier: ana, Client: client, Start: 10, End: 11, Duration: 1},
	})

	assert.Equal(t, []TimetableEntry{{
		CashierName: "Ana",
		ClientID:    3,
		Start:       10,
		End:         11,
		Duration:    1,
		Products:    4,
	}}, rows)
}
