// Package analytics derives KPIs and chart series from a realized
// schedule. Every function is pure: it reads the active entries of the
// timetable it is given and mutates nothing.
package analytics

import (
	"errors"
	"math"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
)

// ErrNoEntries rejects any aggregation over an empty active-entry set;
// the alternative is a division by zero deep inside a formula.
var ErrNoEntries = errors.New("no schedule entries to aggregate")

// serviceLevelThreshold is the wait, in minutes, under which a client
// counts as served on time.
const serviceLevelThreshold = 3

// ServiceTimeKPI is the average time a client spends in the system, from
// joining the queue to leaving the cashier.
func ServiceTimeKPI(entries []domain.SolutionEntry) (float64, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return 0, ErrNoEntries
	}

	total := 0
	for _, e := range active {
		total += e.End - e.Client.ArrivalTime
	}
	return round1(float64(total) / float64(len(active))), nil
}

// WaitingTimeKPI is the average time a client waits in the queue before
// service starts.
func WaitingTimeKPI(entries []domain.SolutionEntry) (float64, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return 0, ErrNoEntries
	}

	total := 0
	for _, e := range active {
		total += e.Start - e.Client.ArrivalTime
	}
	return round1(float64(total) / float64(len(active))), nil
}

// CashierFreeTimeKPI divides the total serving time by the latest end of
// the day. Despite the name this is an occupancy ratio, not idle time;
// the label is kept as-is for wire compatibility with the historical
// frontend.
func CashierFreeTimeKPI(entries []domain.SolutionEntry) (float64, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return 0, ErrNoEntries
	}

	horizon := 0
	working := 0
	for _, e := range active {
		horizon = max(horizon, e.End)
		working += e.End - e.Start
	}
	if horizon == 0 {
		return 0, nil
	}
	return round1(float64(working) / float64(horizon)), nil
}

// ServiceLevelKPI is the fraction of clients whose service starts within
// the threshold after arrival.
func ServiceLevelKPI(entries []domain.SolutionEntry) (float64, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return 0, ErrNoEntries
	}

	onTime := 0
	for _, e := range active {
		if e.Start-e.Client.ArrivalTime <= serviceLevelThreshold {
			onTime++
		}
	}
	return round1(float64(onTime) / float64(len(active))), nil
}

func activeOnly(entries []domain.SolutionEntry) []domain.SolutionEntry {
	active := make([]domain.SolutionEntry, 0, len(entries))
	for _, e := range entries {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

// scalar KPIs keep one decimal, like the reports they replaced
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
