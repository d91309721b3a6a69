package services

import (
	"time"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// Hand-written fakes for the repository interfaces. Fields preload results;
// err fails every call; call counters catch queries that must not happen.

type fakeDealRepo struct {
	statusCounts   repositories.StatusCounts
	totalValue     float64
	monthlySales   []models.MonthlySale
	channelCounts  []repositories.ChannelCountsRow
	outcomeCounts  []repositories.OutcomeRow
	industryCounts []repositories.IndustryCountsRow
	winReasons     []models.ReasonCount
	lossReasons    []models.ReasonCount
	monthlyClose   []repositories.MonthlyCloseRow
	avgSeconds     float64
	avgWonValue    float64
	distinctOwners int
	openDeals      []repositories.OpenDealRow
	userDeals      map[int][]repositories.UserDealRow
	leaderboard    []repositories.LeaderboardRow
	reportCounts   repositories.MonthlyReportRow
	searchRows     []repositories.DealSearchRow

	err         error
	searchCalls int
	openSince   time.Time
}

func (f *fakeDealRepo) CountByStatus() (repositories.StatusCounts, error) {
	return f.statusCounts, f.err
}

func (f *fakeDealRepo) TotalValue() (float64, error) {
	return f.totalValue, f.err
}

func (f *fakeDealRepo) MonthlySales() ([]models.MonthlySale, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.MonthlySale, len(f.monthlySales))
	copy(out, f.monthlySales)
	return out, nil
}

func (f *fakeDealRepo) ChannelCounts() ([]repositories.ChannelCountsRow, error) {
	return f.channelCounts, f.err
}

func (f *fakeDealRepo) OutcomeCounts() ([]repositories.OutcomeRow, error) {
	return f.outcomeCounts, f.err
}

func (f *fakeDealRepo) IndustryCounts() ([]repositories.IndustryCountsRow, error) {
	return f.industryCounts, f.err
}

func (f *fakeDealRepo) ReasonCounts(status string, userID int) ([]models.ReasonCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	if status == models.DealStatusWon {
		return f.winReasons, nil
	}
	return f.lossReasons, nil
}

func (f *fakeDealRepo) MonthlyCloseCounts() ([]repositories.MonthlyCloseRow, error) {
	return f.monthlyClose, f.err
}

func (f *fakeDealRepo) AvgSecondsToClose() (float64, error) {
	return f.avgSeconds, f.err
}

func (f *fakeDealRepo) AvgWonValue() (float64, error) {
	return f.avgWonValue, f.err
}

func (f *fakeDealRepo) DistinctOwnerCount() (int, error) {
	return f.distinctOwners, f.err
}

func (f *fakeDealRepo) OpenDealsCreatedSince(since time.Time) ([]repositories.OpenDealRow, error) {
	f.openSince = since
	return f.openDeals, f.err
}

func (f *fakeDealRepo) ListByUser(userID int) ([]repositories.UserDealRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.userDeals[userID], nil
}

func (f *fakeDealRepo) LeaderboardRows() ([]repositories.LeaderboardRow, error) {
	return f.leaderboard, f.err
}

func (f *fakeDealRepo) MonthlyReportCounts(from, to time.Time) (repositories.MonthlyReportRow, error) {
	return f.reportCounts, f.err
}

func (f *fakeDealRepo) SearchByTitle(q string, limit int) ([]repositories.DealSearchRow, error) {
	f.searchCalls++
	return f.searchRows, f.err
}

type fakeUserRepo struct {
	users       map[int]*models.User
	searchRows  []models.User
	err         error
	searchCalls int
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) Search(q string, limit int) ([]models.User, error) {
	f.searchCalls++
	return f.searchRows, f.err
}

type fakeCompanyRepo struct {
	searchRows  []models.Company
	err         error
	searchCalls int
}

func (f *fakeCompanyRepo) Search(q string, limit int) ([]models.Company, error) {
	f.searchCalls++
	return f.searchRows, f.err
}

type fakeActivityRepo struct {
	byType            map[string]int
	dealsWithActivity int
	err               error
}

func (f *fakeActivityRepo) CountsByTypeForUser(userID int) (map[string]int, error) {
	return f.byType, f.err
}

func (f *fakeActivityRepo) DealsWithActivityForUser(userID int) (int, error) {
	return f.dealsWithActivity, f.err
}
