package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
	"github.com/quickmart-dev/checkout-scheduler/internal/utils"
)

var (
	// ErrNoCashiers and ErrNoClients reject an empty instance before any
	// model is built.
	ErrNoCashiers = errors.New("no cashiers in the roster")
	ErrNoClients  = errors.New("no clients in the workload")

	// ErrSolverFailure means the search terminated without a usable
	// schedule: the instance is infeasible or the search ended in an
	// unknown state. It is never degraded to an empty timetable.
	ErrSolverFailure = errors.New("no feasible schedule found")

	// ErrTimeout means the solve deadline expired. Distinct from
	// ErrSolverFailure so callers can tell "no solution exists" from
	// "did not finish in time".
	ErrTimeout = errors.New("solve deadline exceeded")
)

// Scheduler holds one scheduling instance: the roster, the day's clients
// and the candidate (cashier, client) pairings derived from them. A
// Scheduler is built per request and must not be shared between
// concurrent solves.
type Scheduler struct {
	parameters *Parameters
	cashiers   []*domain.Cashier
	clients    []*domain.Client // (arrival_time, id) order
	byClient   [][]*candidate   // candidates per client, cashier-name order

	status    Status
	objective int
}

// New validates the instance and builds the candidate set. The caller
// keeps ownership of the input slices; the scheduler works on its own
// copies.
func New(parameters *Parameters, cashiers []domain.Cashier, clients []domain.Client) (*Scheduler, error) {
	if parameters == nil {
		parameters = DefaultParameters()
	}
	if parameters.AvgItemTime <= 0 {
		return nil, fmt.Errorf("average item time must be positive, got %v", parameters.AvgItemTime)
	}
	if len(cashiers) == 0 {
		return nil, ErrNoCashiers
	}
	if len(clients) == 0 {
		return nil, ErrNoClients
	}

	s := &Scheduler{
		parameters: parameters,
		cashiers:   make([]*domain.Cashier, 0, len(cashiers)),
		clients:    make([]*domain.Client, 0, len(clients)),
		status:     StatusUnknown,
	}

	seenNames := make(map[string]bool)
	for i := range cashiers {
		cashier := cashiers[i]
		if cashier.EffectivenessAverage <= 0 {
			return nil, fmt.Errorf("cashier %q: effectiveness must be positive, got %v", cashier.Name, cashier.EffectivenessAverage)
		}
		if seenNames[cashier.Name] {
			return nil, fmt.Errorf("duplicate cashier name %q", cashier.Name)
		}
		seenNames[cashier.Name] = true
		s.cashiers = append(s.cashiers, &cashier)
	}

	seenIDs := make(map[int]bool)
	for i := range clients {
		client := clients[i]
		if client.ArrivalTime < domain.DayStart || client.ArrivalTime >= domain.DayEnd {
			return nil, fmt.Errorf("client %d: arrival time %d outside the business day", client.ID, client.ArrivalTime)
		}
		if client.Products <= 0 {
			return nil, fmt.Errorf("client %d: products must be positive, got %d", client.ID, client.Products)
		}
		if seenIDs[client.ID] {
			return nil, fmt.Errorf("duplicate client id %d", client.ID)
		}
		seenIDs[client.ID] = true
		s.clients = append(s.clients, &client)
	}

	// The search indexes clients in arrival order (id breaks ties) and
	// the cashiers of each client in name order. This ordering is also
	// the documented tie-break between equal-cost schedules.
	sort.Slice(s.cashiers, func(i, j int) bool {
		return s.cashiers[i].Name < s.cashiers[j].Name
	})
	sort.Slice(s.clients, func(i, j int) bool {
		if s.clients[i].ArrivalTime != s.clients[j].ArrivalTime {
			return s.clients[i].ArrivalTime < s.clients[j].ArrivalTime
		}
		return s.clients[i].ID < s.clients[j].ID
	})

	// Candidate generation: one pairing per (cashier, client) whose shift
	// the cashier is available for.
	s.byClient = make([][]*candidate, len(s.clients))
	for i, client := range s.clients {
		for _, cashier := range s.cashiers {
			if !cashier.AvailableFor(client.ArrivalTime) {
				continue
			}
			s.byClient[i] = append(s.byClient[i], &candidate{
				cashier:  cashier,
				client:   client,
				duration: expectedDuration(client, cashier, parameters.AvgItemTime),
			})
		}
	}

	return s, nil
}

// Solve runs the search and extracts the realized schedule. It blocks
// until the search finishes or ctx expires; a canceled solve returns
// ErrTimeout, never a partial schedule. Among equal-cost schedules the
// first one reached by the deterministic search order wins.
func (s *Scheduler) Solve(ctx context.Context) ([]domain.SolutionEntry, error) {
	// Exactly-one assignment per client: a client nobody can serve makes
	// the whole instance infeasible.
	for i, group := range s.byClient {
		if len(group) == 0 {
			s.status = StatusInfeasible
			return nil, fmt.Errorf("client %d cannot be served by any cashier: %w", s.clients[i].ID, ErrSolverFailure)
		}
	}

	search := newSearch(s.cashiers, s.clients, s.byClient, s.parameters.NodeBudget)
	if err := search.run(ctx); err != nil {
		s.status = StatusUnknown
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	s.status = search.terminalStatus()
	switch s.status {
	case StatusOptimal, StatusFeasible:
		// proceed to extraction
	case StatusInfeasible:
		return nil, fmt.Errorf("solver status INFEASIBLE: %w", ErrSolverFailure)
	default:
		return nil, fmt.Errorf("solver status %s: %w", s.status, ErrSolverFailure)
	}
	s.objective = search.bestCost

	entries := s.extract(search.bestPick)
	active := make([]domain.SolutionEntry, 0, len(s.clients))
	for _, e := range entries {
		if e.Active {
			active = append(active, e)
		}
	}
	if err := utils.ValidateSolution(active); err != nil {
		return nil, fmt.Errorf("solver produced an invalid schedule: %w", err)
	}

	if s.parameters.IncludeInactive {
		return entries, nil
	}
	return active, nil
}

// Status reports the terminal state of the last Solve.
func (s *Scheduler) Status() Status { return s.status }

// Objective reports the realized objective value
// (makespan + total processing time + total waiting time) of the last
// successful Solve.
func (s *Scheduler) Objective() int { return s.objective }

// extract materializes one SolutionEntry per candidate from the
// incumbent's assignments. Candidates that are not part of the schedule
// keep their default window and Active == false.
func (s *Scheduler) extract(best []assignment) []domain.SolutionEntry {
	var entries []domain.SolutionEntry
	for i := range s.clients {
		for j, cand := range s.byClient[i] {
			entry := domain.SolutionEntry{
				Cashier:  cand.cashier,
				Client:   cand.client,
				Duration: cand.duration,
				Start:    cand.client.ArrivalTime,
				End:      cand.client.ArrivalTime + cand.duration,
			}
			if j == best[i].cand {
				entry.Start = best[i].start
				entry.End = best[i].start + cand.duration
				entry.Active = true
			}
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Start != entries[j].Start {
			return entries[i].Start < entries[j].Start
		}
		if entries[i].Cashier.Name != entries[j].Cashier.Name {
			return entries[i].Cashier.Name < entries[j].Cashier.Name
		}
		return entries[i].Client.ID < entries[j].Client.ID
	})
	return entries
}
