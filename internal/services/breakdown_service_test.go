package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

func TestDealOutcomesLabeling(t *testing.T) {
	repo := &fakeDealRepo{
		outcomeCounts: []repositories.OutcomeRow{
			{Status: "won", Industry: "Retail", Reason: "Price", Count: 3},
			{Status: "lost", Industry: "", Reason: "", Count: 2},
		},
	}
	svc := NewBreakdownService(repo)

	rows, err := svc.DealOutcomes()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.OutcomeBreakdown{Status: "won", Industry: "Retail", Reason: "Price", Count: 3}, rows[0])
	assert.Equal(t, "Unknown", rows[1].Industry)
	assert.Equal(t, "No Reason Given", rows[1].Reason)
}

func TestChannelPerformance(t *testing.T) {
	repo := &fakeDealRepo{
		channelCounts: []repositories.ChannelCountsRow{
			{Type: "direct", Total: 4, Won: 2, WonValue: 300},
			{Type: "agency", Total: 6, Won: 3, WonValue: 900},
		},
	}
	svc := NewBreakdownService(repo)

	perf, err := svc.ChannelPerformance()
	require.NoError(t, err)

	assert.Equal(t, 4, perf.Direct.TotalDeals)
	assert.Equal(t, 2, perf.Direct.WonCount)
	assert.Equal(t, 50.0, perf.Direct.WinRate)
	assert.Equal(t, 300.0, perf.Direct.TotalRevenue)
	assert.Equal(t, 50.0, perf.Agency.WinRate)

	// channel totals partition the won+lost deal set
	assert.Equal(t, 10, perf.Direct.TotalDeals+perf.Agency.TotalDeals)
}

func TestChannelPerformanceMissingChannelIsZero(t *testing.T) {
	repo := &fakeDealRepo{
		channelCounts: []repositories.ChannelCountsRow{
			{Type: "direct", Total: 1, Won: 1, WonValue: 50},
		},
	}
	svc := NewBreakdownService(repo)

	perf, err := svc.ChannelPerformance()
	require.NoError(t, err)

	assert.Equal(t, models.ChannelStats{}, perf.Agency)
}

func TestIndustryPerformance(t *testing.T) {
	repo := &fakeDealRepo{
		industryCounts: []repositories.IndustryCountsRow{
			{Industry: "Retail", Total: 10, Won: 4},
			{Industry: "", Total: 3, Won: 0},
		},
	}
	svc := NewBreakdownService(repo)

	rows, err := svc.IndustryPerformance()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 40.0, rows[0].WinRate)
	assert.Equal(t, "Unknown", rows[1].Industry)
	assert.Equal(t, 0.0, rows[1].WinRate)
}

func TestReasonsEmptyIsEmptySlice(t *testing.T) {
	svc := NewBreakdownService(&fakeDealRepo{})

	rows, err := svc.WinReasons()
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestMonthlySalesTotalsConserved(t *testing.T) {
	sales := []models.MonthlySale{
		{Label: "2023-05", Total: 100.405},
		{Label: "2023-06", Total: 200},
	}
	svc := NewBreakdownService(&fakeDealRepo{monthlySales: sales})

	rows, err := svc.MonthlySales()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var sum float64
	for _, row := range rows {
		sum += row.Total
	}
	assert.InDelta(t, 300.41, sum, 0.005)
}

func TestMonthlyCancellationRate(t *testing.T) {
	repo := &fakeDealRepo{
		monthlyClose: []repositories.MonthlyCloseRow{
			{Label: "2023-06", Closed: 4, Cancelled: 1},
			{Label: "2023-07", Closed: 3, Cancelled: 0},
		},
	}
	svc := NewBreakdownService(repo)

	rows, err := svc.MonthlyCancellationRate()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 25.0, rows[0].CancellationRate)
	assert.Equal(t, 1, rows[0].CancelledCount)
	assert.Equal(t, 0.0, rows[1].CancellationRate)
}
