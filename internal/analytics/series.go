package analytics

import (
	"sort"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
)

// Product-count buckets of the clientPerProducts bar chart.
const (
	bucketSmall  = iota // fewer than 15 products
	bucketMedium        // 15 to 29 products
	bucketLarge         // 30 or more
	bucketCount
)

// ProductBucketSeries is one bar-chart row: a shift label and the average
// service duration of each product bucket in that shift.
type ProductBucketSeries struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ClientsPerProductBucket splits the served clients into small/medium/
// large baskets per shift and reports the average service duration of
// each cell. Empty cells report 0.
func ClientsPerProductBucket(entries []domain.SolutionEntry) ([]ProductBucketSeries, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return nil, ErrNoEntries
	}

	var sums, counts [2][bucketCount]int
	for _, e := range active {
		shift := 0
		if !e.InMorning() {
			shift = 1
		}
		b := bucketOf(e.Client.Products)
		sums[shift][b] += e.Duration
		counts[shift][b]++
	}

	series := []ProductBucketSeries{
		{Label: "Morning", Data: make([]float64, bucketCount)},
		{Label: "Afternoon", Data: make([]float64, bucketCount)},
	}
	for shift := 0; shift < 2; shift++ {
		for b := 0; b < bucketCount; b++ {
			if counts[shift][b] == 0 {
				continue
			}
			series[shift].Data[b] = float64(sums[shift][b]) / float64(counts[shift][b])
		}
	}
	return series, nil
}

func bucketOf(products int) int {
	switch {
	case products < 15:
		return bucketSmall
	case products < 30:
		return bucketMedium
	default:
		return bucketLarge
	}
}

// ScatterPoint pairs a client's arrival minute with its realized service
// start.
type ScatterPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ScatterSeries is one labeled point cloud for the queueing-delay chart.
type ScatterSeries struct {
	Label string         `json:"label"`
	Data  []ScatterPoint `json:"data"`
}

// ArrivalVsStartSeries emits one point per served client, no aggregation.
func ArrivalVsStartSeries(entries []domain.SolutionEntry) ([]ScatterSeries, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return nil, ErrNoEntries
	}

	series := ScatterSeries{Label: "Arrival vs Start"}
	for _, e := range active {
		series.Data = append(series.Data, ScatterPoint{X: e.Client.ArrivalTime, Y: e.Start})
	}
	return []ScatterSeries{series}, nil
}

// EfficiencySlice is one sector of the shift-efficiency pie chart; the
// slice values of a report sum to 100.
type EfficiencySlice struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ShiftEfficiency condenses the four scalar KPIs of each shift into a
// single score and normalizes the two scores to percentage shares. The
// result compares the shifts against each other, not against an absolute
// target.
func ShiftEfficiency(entries []domain.SolutionEntry) ([]EfficiencySlice, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return nil, ErrNoEntries
	}

	var morning, afternoon []domain.SolutionEntry
	for _, e := range active {
		if e.InMorning() {
			morning = append(morning, e)
		} else {
			afternoon = append(afternoon, e)
		}
	}

	morningScore := shiftScore(morning)
	afternoonScore := shiftScore(afternoon)

	total := morningScore + afternoonScore
	morningShare := 50.0
	if total > 0 {
		morningShare = round1(100 * morningScore / total)
	}

	return []EfficiencySlice{
		{ID: 0, Value: morningShare, Label: "Morning"},
		{ID: 1, Value: round1(100 - morningShare), Label: "Afternoon"},
	}, nil
}

func shiftScore(entries []domain.SolutionEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	serviceLevel, _ := ServiceLevelKPI(entries)
	waiting, _ := WaitingTimeKPI(entries)
	service, _ := ServiceTimeKPI(entries)
	freeTime, _ := CashierFreeTimeKPI(entries)
	return (serviceLevel + waiting + service + freeTime) / 4
}

// CashierKPIs is the scalar KPI row of one cashier within one shift.
type CashierKPIs struct {
	WorkerID            string  `json:"workerId"`
	ServiceLevel        float64 `json:"serviceLevel"`
	AvgQueueWaitingTime float64 `json:"avgQueueWaitingTime"`
	AvgProcessingTime   float64 `json:"avgProcessingTime"`
	AvgFreeTime         float64 `json:"avgFreeTime"`
}

// CashierPerformance groups the per-cashier KPI rows by shift.
type CashierPerformance struct {
	Morning   []CashierKPIs `json:"morning"`
	Afternoon []CashierKPIs `json:"afternoon"`
}

// PerCashierPerformance computes the four scalar KPIs for each cashier
// within each shift, rows ordered by cashier name.
func PerCashierPerformance(entries []domain.SolutionEntry) (*CashierPerformance, error) {
	active := activeOnly(entries)
	if len(active) == 0 {
		return nil, ErrNoEntries
	}

	perf := &CashierPerformance{
		Morning:   []CashierKPIs{},
		Afternoon: []CashierKPIs{},
	}
	perf.Morning = cashierRows(filterShift(active, true))
	perf.Afternoon = cashierRows(filterShift(active, false))
	return perf, nil
}

func filterShift(entries []domain.SolutionEntry, morning bool) []domain.SolutionEntry {
	var out []domain.SolutionEntry
	for _, e := range entries {
		if e.InMorning() == morning {
			out = append(out, e)
		}
	}
	return out
}

func cashierRows(entries []domain.SolutionEntry) []CashierKPIs {
	byCashier := make(map[string][]domain.SolutionEntry)
	for _, e := range entries {
		byCashier[e.Cashier.Name] = append(byCashier[e.Cashier.Name], e)
	}

	names := make([]string, 0, len(byCashier))
	for name := range byCashier {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]CashierKPIs, 0, len(names))
	for _, name := range names {
		served := byCashier[name]
		serviceLevel, _ := ServiceLevelKPI(served)
		waiting, _ := WaitingTimeKPI(served)
		service, _ := ServiceTimeKPI(served)
		freeTime, _ := CashierFreeTimeKPI(served)
		rows = append(rows, CashierKPIs{
			WorkerID:            name,
			ServiceLevel:        serviceLevel,
			AvgQueueWaitingTime: waiting,
			AvgProcessingTime:   service,
			AvgFreeTime:         freeTime,
		})
	}
	return rows
}
