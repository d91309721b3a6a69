package services

import (
	"strings"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

// searchLimit caps each entity collection's contribution to a search result.
const searchLimit = 5

// SearchService fans a text query out over users, companies and deals and
// returns one tagged list: users first, then companies, then deals.
type SearchService struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
	deals     repositories.DealRepository
}

func NewSearchService(
	users repositories.UserRepository,
	companies repositories.CompanyRepository,
	deals repositories.DealRepository,
) *SearchService {
	return &SearchService{users: users, companies: companies, deals: deals}
}

// Search returns an empty list for a blank query without touching storage.
func (s *SearchService) Search(q string) ([]models.SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []models.SearchResult{}, nil
	}

	results := []models.SearchResult{}

	users, err := s.users.Search(q, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		results = append(results, models.SearchResult{
			Type:  "user",
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		})
	}

	companies, err := s.companies.Search(q, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		industry := c.Industry
		if industry == "" {
			industry = industryUnknown
		}
		results = append(results, models.SearchResult{
			Type:     "company",
			ID:       c.ID,
			Name:     c.Name,
			Industry: industry,
		})
	}

	deals, err := s.deals.SearchByTitle(q, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, d := range deals {
		results = append(results, models.SearchResult{
			Type:   "deal",
			ID:     d.ID,
			Name:   d.Title,
			Status: d.Status,
			Value:  d.Value,
		})
	}

	return results, nil
}
