// Package workload synthesizes a day of arriving clients from two
// Poisson arrival-rate parameters, one per shift.
package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
)

const (
	minProducts = 1
	maxProducts = 50
)

// Generate draws the day's clients: the client count of each shift is
// Poisson(rate), arrival minutes are uniform over the shift and product
// counts uniform over [1, 50]. IDs count up from 0 across both shifts,
// so morning clients precede afternoon clients in id space.
//
// The rng is the only source of randomness; the same seed reproduces the
// same workload.
func Generate(morningRate, afternoonRate float64, rng *rand.Rand) ([]domain.Client, error) {
	if morningRate < 0 || afternoonRate < 0 {
		return nil, fmt.Errorf("arrival rates must be non-negative, got %v and %v", morningRate, afternoonRate)
	}

	nextID := 0
	clients := clientsPerShift(morningRate, domain.DayStart, domain.MorningEnd, &nextID, rng)
	clients = append(clients, clientsPerShift(afternoonRate, domain.MorningEnd, domain.DayEnd, &nextID, rng)...)
	return clients, nil
}

func clientsPerShift(rate float64, shiftStart, shiftEnd int, nextID *int, rng *rand.Rand) []domain.Client {
	count := poisson(rate, rng)
	clients := make([]domain.Client, 0, count)
	for i := 0; i < count; i++ {
		clients = append(clients, domain.Client{
			ID:          *nextID,
			ArrivalTime: shiftStart + rng.Intn(shiftEnd-shiftStart),
			Products:    minProducts + rng.Intn(maxProducts-minProducts+1),
		})
		*nextID++
	}
	return clients
}

// poisson samples a Poisson variate by Knuth's product-of-uniforms
// method. Fine for the arrival rates of a single store; a rate of 0
// always yields 0.
func poisson(rate float64, rng *rand.Rand) int {
	if rate <= 0 {
		return 0
	}

	limit := math.Exp(-rate)
	product := rng.Float64()
	count := 0
	for product > limit {
		count++
		product *= rng.Float64()
	}
	return count
}
