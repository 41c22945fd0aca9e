package scheduler

import "github.com/quickmart-dev/checkout-scheduler/internal/domain"

// expectedDuration is the fixed service time of a (cashier, client) pair,
// truncated to whole minutes.
func expectedDuration(client *domain.Client, cashier *domain.Cashier, avgItemTime float64) int {
	return int(float64(client.Products) * (avgItemTime / cashier.EffectivenessAverage))
}
