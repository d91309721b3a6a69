package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// Three-deal scenario: deal1 won 100, deal2 lost 50, deal3 in progress 75.
func TestOverview(t *testing.T) {
	repo := &fakeDealRepo{
		statusCounts: repositories.StatusCounts{InProgress: 1, Won: 1, Lost: 1},
		totalValue:   225,
	}
	svc := NewAnalyticsService(repo)

	kpis, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, 3, kpis.TotalDeals)
	assert.Equal(t, 225.0, kpis.TotalValue)
	assert.Equal(t, 50.0, kpis.WinRate)
	assert.Equal(t, 75.0, kpis.AverageDealSize)
}

func TestOverviewEmpty(t *testing.T) {
	svc := NewAnalyticsService(&fakeDealRepo{})

	kpis, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, 0, kpis.TotalDeals)
	assert.Equal(t, 0.0, kpis.TotalValue)
	assert.Equal(t, 0.0, kpis.WinRate)
	assert.Equal(t, 0.0, kpis.AverageDealSize)
}

func TestOverviewCancelledExcludedFromWinRate(t *testing.T) {
	repo := &fakeDealRepo{
		statusCounts: repositories.StatusCounts{Won: 3, Lost: 1, Cancelled: 4, InProgress: 2},
		totalValue:   1000,
	}
	svc := NewAnalyticsService(repo)

	kpis, err := svc.Overview()
	require.NoError(t, err)

	// cancelled and in-progress deals stay out of the denominator
	assert.Equal(t, 75.0, kpis.WinRate)
	assert.Equal(t, 10, kpis.TotalDeals)
	assert.Equal(t, 100.0, kpis.AverageDealSize)
}

func TestDashboard(t *testing.T) {
	repo := &fakeDealRepo{
		statusCounts: repositories.StatusCounts{InProgress: 1, Won: 1, Lost: 1},
		totalValue:   225,
		monthlySales: []models.MonthlySale{{Label: "2023-07", Total: 100}},
	}
	svc := NewAnalyticsService(repo)

	data, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 225.0, data.TotalRevenue)
	assert.Equal(t, 3, data.TotalDeals)
	require.Len(t, data.MonthlySalesChartData, 1)
	assert.Equal(t, "2023-07", data.MonthlySalesChartData[0].Label)
	assert.Equal(t, 100.0, data.MonthlySalesChartData[0].Total)
}

func TestDashboardNoSalesIsEmptySlice(t *testing.T) {
	svc := NewAnalyticsService(&fakeDealRepo{})

	data, err := svc.Dashboard()
	require.NoError(t, err)

	assert.NotNil(t, data.MonthlySalesChartData)
	assert.Empty(t, data.MonthlySalesChartData)
}

func TestDetailed(t *testing.T) {
	repo := &fakeDealRepo{
		channelCounts: []repositories.ChannelCountsRow{
			{Type: "direct", Total: 4, Won: 3, WonValue: 400},
			{Type: "agency", Total: 2, Won: 1, WonValue: 150},
		},
		avgSeconds:     10 * 24 * 60 * 60,
		avgWonValue:    137.5,
		totalValue:     1000,
		distinctOwners: 4,
		monthlySales: []models.MonthlySale{
			{Label: "2023-06", Total: 150},
			{Label: "2023-07", Total: 400},
		},
	}
	svc := NewAnalyticsService(repo)

	kpis, err := svc.Detailed()
	require.NoError(t, err)

	assert.Equal(t, 75.0, kpis.DirectSales.WinRate)
	assert.Equal(t, 400.0, kpis.DirectSales.TotalRevenue)
	assert.Equal(t, 50.0, kpis.AgencySales.WinRate)
	assert.Equal(t, 10.0, kpis.AverageTimeToClose)
	assert.Equal(t, 250.0, kpis.ARPU)
	assert.Equal(t, 137.5, kpis.AverageCustomerUnitPrice)
	assert.Equal(t, 550.0, kpis.TotalAnnualSales)
}

func TestDetailedNoOwnersZeroARPU(t *testing.T) {
	svc := NewAnalyticsService(&fakeDealRepo{totalValue: 500})

	kpis, err := svc.Detailed()
	require.NoError(t, err)

	assert.Equal(t, 0.0, kpis.ARPU)
}

func TestAnalyticsPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("db gone")
	svc := NewAnalyticsService(&fakeDealRepo{err: boom})

	_, err := svc.Overview()
	assert.ErrorIs(t, err, boom)

	_, err = svc.Dashboard()
	assert.ErrorIs(t, err, boom)

	_, err = svc.Detailed()
	assert.ErrorIs(t, err, boom)
}
