package main

import (
	"testing"

	"github.com/quickmart-dev/checkout-scheduler/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestAverageKPIs(t *testing.T) {
	mean := averageKPIs([]*analytics.Report{
		{ServiceLevel: 1.0, AvgQueueWaitingTime: 2.0, AvgProcessingTime: 10.0, AvgFreeTime: 0.4},
		{ServiceLevel: 0.5, AvgQueueWaitingTime: 4.0, AvgProcessingTime: 14.0, AvgFreeTime: 0.8},
	})

	assert.Equal(t, 0.75, mean.ServiceLevel)
	assert.Equal(t, 3.0, mean.AvgQueueWaitingTime)
	assert.Equal(t, 12.0, mean.AvgProcessingTime)
	assert.InDelta(t, 0.6, mean.AvgFreeTime, 1e-9)
}
