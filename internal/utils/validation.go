package utils

import (
	"fmt"
	"sort"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
)

// ValidateSolution checks a realized schedule (active entries only)
// against the model's hard constraints. The solver runs it on its own
// output before returning, so a violation here means a solver bug, not
// bad input.
func ValidateSolution(entries []domain.SolutionEntry) error {
	seen := make(map[int]bool)
	perCashier := make(map[string][]domain.SolutionEntry)

	for _, e := range entries {
		if !e.Active {
			return fmt.Errorf("inactive entry for client %d in the realized schedule", e.Client.ID)
		}
		if seen[e.Client.ID] {
			return fmt.Errorf("client %d is served more than once", e.Client.ID)
		}
		seen[e.Client.ID] = true

		if e.Start < e.Client.ArrivalTime {
			return fmt.Errorf("client %d starts at %d before arriving at %d", e.Client.ID, e.Start, e.Client.ArrivalTime)
		}
		if e.End != e.Start+e.Duration {
			return fmt.Errorf("client %d: end %d != start %d + duration %d", e.Client.ID, e.End, e.Start, e.Duration)
		}
		if e.End > domain.DayEnd {
			return fmt.Errorf("client %d: service ends at %d, after closing", e.Client.ID, e.End)
		}
		if !e.Cashier.AvailableFor(e.Client.ArrivalTime) {
			return fmt.Errorf("client %d assigned to cashier %q outside their shift", e.Client.ID, e.Cashier.Name)
		}

		perCashier[e.Cashier.Name] = append(perCashier[e.Cashier.Name], e)
	}

	// no cashier may serve two clients at once
	for name, served := range perCashier {
		sort.Slice(served, func(i, j int) bool {
			return served[i].Start < served[j].Start
		})
		for i := 1; i < len(served); i++ {
			if served[i].Start < served[i-1].End {
				return fmt.Errorf("cashier %q: clients %d and %d overlap in time",
					name, served[i-1].Client.ID, served[i].Client.ID)
			}
		}
	}

	return nil
}

// ValidateCoverage checks that a realized schedule serves exactly the
// given workload: every client appears once and no entry serves a client
// outside it.
func ValidateCoverage(entries []domain.SolutionEntry, clients []domain.Client) error {
	expected := make(map[int]bool, len(clients))
	for _, c := range clients {
		expected[c.ID] = true
	}

	served := make(map[int]bool, len(entries))
	for _, e := range entries {
		if !expected[e.Client.ID] {
			return fmt.Errorf("entry serves unknown client %d", e.Client.ID)
		}
		if served[e.Client.ID] {
			return fmt.Errorf("client %d is served more than once", e.Client.ID)
		}
		served[e.Client.ID] = true
	}

	for _, c := range clients {
		if !served[c.ID] {
			return fmt.Errorf("client %d is not served", c.ID)
		}
	}

	return nil
}
