package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescrm/internal/models"
	"salescrm/internal/repositories"
)

func TestSearchEmptyQuerySkipsStorage(t *testing.T) {
	users := &fakeUserRepo{}
	companies := &fakeCompanyRepo{}
	deals := &fakeDealRepo{}
	svc := NewSearchService(users, companies, deals)

	for _, q := range []string{"", "   "} {
		results, err := svc.Search(q)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
	assert.Zero(t, users.searchCalls)
	assert.Zero(t, companies.searchCalls)
	assert.Zero(t, deals.searchCalls)
}

func TestSearchOrderAndTagging(t *testing.T) {
	users := &fakeUserRepo{searchRows: []models.User{
		{ID: 1, Name: "Sato", Email: "sato@example.com"},
	}}
	companies := &fakeCompanyRepo{searchRows: []models.Company{
		{ID: 2, Name: "Sato Heavy Industries", Industry: ""},
	}}
	deals := &fakeDealRepo{searchRows: []repositories.DealSearchRow{
		{ID: 3, Title: "Sato renewal", Status: "won", Value: 120},
	}}
	svc := NewSearchService(users, companies, deals)

	results, err := svc.Search("sato")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "user", results[0].Type)
	assert.Equal(t, "sato@example.com", results[0].Email)

	assert.Equal(t, "company", results[1].Type)
	assert.Equal(t, "Unknown", results[1].Industry)

	assert.Equal(t, "deal", results[2].Type)
	assert.Equal(t, "Sato renewal", results[2].Name)
	assert.Equal(t, 120.0, results[2].Value)
}
