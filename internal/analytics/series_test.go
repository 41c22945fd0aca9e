package analytics

import (
	"testing"

	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bruno = &domain.Cashier{Name: "Bruno", AvailableInTheAfternoon: true, EffectivenessAverage: 1}

func TestClientsPerProductBucket(t *testing.T) {
	entries := []domain.SolutionEntry{
		entry(ana, &domain.Client{ID: 0, ArrivalTime: 0, Products: 10}, 0, 2),     // morning, small
		entry(ana, &domain.Client{ID: 1, ArrivalTime: 0, Products: 10}, 2, 6),     // morning, small
		entry(ana, &domain.Client{ID: 2, ArrivalTime: 20, Products: 20}, 20, 25),  // morning, medium
		entry(bruno, &domain.Client{ID: 3, ArrivalTime: 400, Products: 40}, 400, 410), // afternoon, large
	}

	series, err := ClientsPerProductBucket(entries)
	require.NoError(t, err)
	require.Len(t, series, 2)

	morning := series[0]
	afternoon := series[1]
	assert.Equal(t, "Morning", morning.Label)
	assert.Equal(t, "Afternoon", afternoon.Label)

	assert.Equal(t, []float64{3, 5, 0}, morning.Data)    // (2+4)/2, 5/1, empty
	assert.Equal(t, []float64{0, 0, 10}, afternoon.Data) // empty cells report 0
}

func TestArrivalVsStartSeries(t *testing.T) {
	entries := []domain.SolutionEntry{
		entry(ana, &domain.Client{ID: 0, ArrivalTime: 5, Products: 10}, 10, 20),
		entry(ana, &domain.Client{ID: 1, ArrivalTime: 30, Products: 10}, 30, 40),
	}

	series, err := ArrivalVsStartSeries(entries)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "Arrival vs Start", series[0].Label)
	assert.Equal(t, []ScatterPoint{{X: 5, Y: 10}, {X: 30, Y: 40}}, series[0].Data)
}

func TestShiftEfficiencySumsToHundred(t *testing.T) {
	entries := []domain.SolutionEntry{
		entry(ana, &domain.Client{ID: 0, ArrivalTime: 0, Products: 10}, 0, 10),
		entry(ana, &domain.Client{ID: 1, ArrivalTime: 12, Products: 10}, 12, 22),
		entry(bruno, &domain.Client{ID: 2, ArrivalTime: 400, Products: 20}, 400, 420),
	}

	slices, err := ShiftEfficiency(entries)
	require.NoError(t, err)
	require.Len(t, slices, 2)

	assert.Equal(t, "Morning", slices[0].Label)
	assert.Equal(t, "Afternoon", slices[1].Label)
	assert.InDelta(t, 100.0, slices[0].Value+slices[1].Value, 0.11)
	for _, s := range slices {
		assert.GreaterOrEqual(t, s.Value, 0.0)
	}
}

func TestShiftEfficiencySingleShiftTakesAll(t *testing.T) {
	entries := []domain.SolutionEntry{
		entry(ana, &domain.Client{ID: 0, ArrivalTime: 5, Products: 10}, 10, 20),
	}

	slices, err := ShiftEfficiency(entries)
	require.NoError(t, err)
	assert.Equal(t, 100.0, slices[0].Value)
	assert.Equal(t, 0.0, slices[1].Value)
}

func TestPerCashierPerformanceGroupsByShiftAndCashier(t *testing.T) {
	entries := []domain.SolutionEntry{
		entry(ana, &domain.Client{ID: 0, ArrivalTime: 0, Products: 10}, 0, 10),
		entry(ana, &domain.Client{ID: 1, ArrivalTime: 5, Products: 10}, 10, 20),
		entry(bruno, &domain.Client{ID: 2, ArrivalTime: 400, Products: 20}, 400, 420),
	}

	perf, err := PerCashierPerformance(entries)
	require.NoError(t, err)

	require.Len(t, perf.Morning, 1)
	assert.Equal(t, "Ana", perf.Morning[0].WorkerID)
	assert.Equal(t, 2.5, perf.Morning[0].AvgQueueWaitingTime) // waits 0 and 5

	require.Len(t, perf.Afternoon, 1)
	assert.Equal(t, "Bruno", perf.Afternoon[0].WorkerID)
	assert.Equal(t, 0.0, perf.Afternoon[0].AvgQueueWaitingTime)
}

func TestBuildReportAssemblesBundle(t *testing.T) {
	entries := []domain.SolutionEntry{
		entry(ana, &domain.Client{ID: 0, ArrivalTime: 0, Products: 10}, 0, 10),
		entry(bruno, &domain.Client{ID: 1, ArrivalTime: 400, Products: 40}, 400, 410),
	}

	report, err := BuildReport(entries)
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.ServiceLevel)
	assert.Equal(t, 0.0, report.AvgQueueWaitingTime)
	assert.Equal(t, 10.0, report.AvgProcessingTime)
	require.NotNil(t, report.CashierPerformance)
	assert.Len(t, report.ClientPerProducts, 2)
	assert.Len(t, report.ArrivalVsStart, 1)
	assert.Len(t, report.EfficiencyData, 2)
}
