package scheduler

import "github.com/quickmart-dev/checkout-scheduler/internal/domain"

// Status is the terminal state of a solver search.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// candidate is one feasible (cashier, client) pairing: the decision tuple
// of the model. duration is fixed at build time; the service window and
// the active flag are assigned by the search, with start and end ranging
// over [arrival_time, 720].
type candidate struct {
	cashier  *domain.Cashier
	client   *domain.Client
	duration int
}

// Parameters of a single solve.
type Parameters struct {
	AvgItemTime     float64 // service minutes per product, before the effectiveness multiplier
	NodeBudget      int     // search nodes explored before settling for the incumbent; <= 0 means unlimited
	IncludeInactive bool    // also return the candidates that did not make the schedule
}

const DefaultAvgItemTime = 0.25 // minutes per product

func DefaultParameters() *Parameters {
	return &Parameters{
		AvgItemTime: DefaultAvgItemTime,
		NodeBudget:  2_000_000,
	}
}
