package analytics

import "github.com/quickmart-dev/checkout-scheduler/internal/domain"

// Report is the KPI bundle handed back to the presentation layer. Field
// names match what the historical frontend expects, including the
// misnamed avgFreeTime (see CashierFreeTimeKPI).
type Report struct {
	ServiceLevel        float64               `json:"serviceLevel"`
	AvgQueueWaitingTime float64               `json:"avgQueueWaitingTime"`
	AvgProcessingTime   float64               `json:"avgProcessingTime"`
	AvgFreeTime         float64               `json:"avgFreeTime"`
	CashierPerformance  *CashierPerformance   `json:"cashierPerformance"`
	ClientPerProducts   []ProductBucketSeries `json:"clientPerProducts"`
	ArrivalVsStart      []ScatterSeries       `json:"arrivalVsStart"`
	EfficiencyData      []EfficiencySlice     `json:"efficiencyData"`
}

// BuildReport assembles the full KPI bundle from a solved schedule.
// AvgProcessingTime carries the total-time-in-system KPI and
// AvgQueueWaitingTime the pre-service wait.
func BuildReport(entries []domain.SolutionEntry) (*Report, error) {
	serviceLevel, err := ServiceLevelKPI(entries)
	if err != nil {
		return nil, err
	}
	waiting, err := WaitingTimeKPI(entries)
	if err != nil {
		return nil, err
	}
	service, err := ServiceTimeKPI(entries)
	if err != nil {
		return nil, err
	}
	freeTime, err := CashierFreeTimeKPI(entries)
	if err != nil {
		return nil, err
	}
	performance, err := PerCashierPerformance(entries)
	if err != nil {
		return nil, err
	}
	buckets, err := ClientsPerProductBucket(entries)
	if err != nil {
		return nil, err
	}
	scatter, err := ArrivalVsStartSeries(entries)
	if err != nil {
		return nil, err
	}
	efficiency, err := ShiftEfficiency(entries)
	if err != nil {
		return nil, err
	}

	return &Report{
		ServiceLevel:        serviceLevel,
		AvgQueueWaitingTime: waiting,
		AvgProcessingTime:   service,
		AvgFreeTime:         freeTime,
		CashierPerformance:  performance,
		ClientPerProducts:   buckets,
		ArrivalVsStart:      scatter,
		EfficiencyData:      efficiency,
	}, nil
}
