package scheduler

import (
	"context"
	"math"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
)

// assignment is one incumbent decision: which of a client's candidates
// serves it and the minute the service starts.
type assignment struct {
	cand  int
	start int
}

// search is a branch-and-bound over dispatch sequences. Each step serves
// one unserved client on one of its eligible cashiers, starting at
// max(arrival, the cashier's previous end); a service that would run past
// minute 720 is rejected. Sequences are committed in nondecreasing
// (start, cashier, client) order, and every left-shifted schedule of the
// model corresponds to exactly one such sequence, so the search covers
// the full solution space, including serving a short later arrival before
// a long earlier one on the same cashier. Left-shifting a schedule never
// increases its cost, so exhausting the sequences proves optimality. The
// cost of a complete schedule is
// makespan + total processing time + total waiting time.
type search struct {
	clients    []*domain.Client
	byClient   [][]*candidate
	cashierIdx map[string]int

	// per-client lower bounds: the cheapest duration over the client's
	// candidates and the earliest minute its service can end.
	minDur      []int
	earliestEnd []int

	budget    int
	nodes     int
	truncated bool

	scheduled []bool
	lastEnd   []int // per cashier, end of its latest service so far
	cur       []assignment
	remMinDur int

	bestPick []assignment
	bestCost int
	found    bool
}

func newSearch(cashiers []*domain.Cashier, clients []*domain.Client, byClient [][]*candidate, budget int) *search {
	s := &search{
		clients:    clients,
		byClient:   byClient,
		cashierIdx: make(map[string]int, len(cashiers)),
		budget:     budget,
		scheduled:  make([]bool, len(clients)),
		lastEnd:    make([]int, len(cashiers)),
		cur:        make([]assignment, len(clients)),
		bestCost:   math.MaxInt,
	}
	for i, cashier := range cashiers {
		s.cashierIdx[cashier.Name] = i
	}

	s.minDur = make([]int, len(clients))
	s.earliestEnd = make([]int, len(clients))
	for i, client := range clients {
		minDur := math.MaxInt
		for _, cand := range byClient[i] {
			minDur = min(minDur, cand.duration)
		}
		if minDur == math.MaxInt {
			minDur = 0 // unserviceable client, caught before the search runs
		}
		s.minDur[i] = minDur
		s.earliestEnd[i] = client.ArrivalTime + minDur
		s.remMinDur += minDur
	}

	return s
}

// run explores the dispatch tree. It returns an error only when ctx is
// done; the terminal status is read afterwards via terminalStatus.
func (s *search) run(ctx context.Context) error {
	return s.expand(ctx, 0, 0, 0, -1, -1, -1)
}

func (s *search) expand(ctx context.Context, served, cost, maxEnd, prevStart, prevCashier, prevClient int) error {
	if served == len(s.clients) {
		total := cost + maxEnd
		if total < s.bestCost {
			// strictly better only: the first equal-cost schedule reached
			// in search order is kept, which pins the tie-break
			s.bestCost = total
			s.bestPick = append(s.bestPick[:0], s.cur...)
			s.found = true
		}
		return nil
	}

	// admissible bound: every unserved client still pays at least its
	// cheapest duration, and the makespan can only grow
	if s.found {
		horizon := maxEnd
		for i, done := range s.scheduled {
			if !done {
				horizon = max(horizon, s.earliestEnd[i])
			}
		}
		if cost+s.remMinDur+horizon >= s.bestCost {
			return nil
		}
	}

	for i, client := range s.clients {
		if s.scheduled[i] {
			continue
		}
		for j, cand := range s.byClient[i] {
			s.nodes++
			if s.budget > 0 && s.nodes > s.budget {
				s.truncated = true
				return nil
			}
			if s.nodes&0x0fff == 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}

			idx := s.cashierIdx[cand.cashier.Name]
			start := max(client.ArrivalTime, s.lastEnd[idx])
			end := start + cand.duration
			if end > domain.DayEnd {
				continue // past closing
			}
			// canonical order: commit services by nondecreasing
			// (start, cashier, client) so each schedule is reached once
			if start < prevStart ||
				(start == prevStart && (idx < prevCashier || (idx == prevCashier && i < prevClient))) {
				continue
			}

			s.scheduled[i] = true
			s.cur[i] = assignment{cand: j, start: start}
			prevEnd := s.lastEnd[idx]
			s.lastEnd[idx] = end
			s.remMinDur -= s.minDur[i]

			err := s.expand(ctx, served+1, cost+(start-client.ArrivalTime)+cand.duration, max(maxEnd, end), start, idx, i)

			s.remMinDur += s.minDur[i]
			s.lastEnd[idx] = prevEnd
			s.scheduled[i] = false
			if err != nil {
				return err
			}
			if s.truncated {
				return nil
			}
		}
	}

	return nil
}

func (s *search) terminalStatus() Status {
	switch {
	case s.found && !s.truncated:
		return StatusOptimal
	case s.found:
		return StatusFeasible
	case !s.truncated:
		return StatusInfeasible
	default:
		return StatusUnknown
	}
}
