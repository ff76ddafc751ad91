package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/testutil"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func handles(cs []models.Company) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Handle
	}
	return out
}

func TestPostgresRepository_Integration(t *testing.T) {
	client := testutil.DB(t)
	repo := NewPostgresRepository(client)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		testutil.Seed(t, client)

		company, err := repo.Create(ctx, &models.CreateCompanyRequest{
			Handle:       "new",
			Name:         "New",
			Description:  "New Description",
			NumEmployees: intPtr(1),
			LogoURL:      strPtr("http://new.img"),
		})
		require.NoError(t, err)
		require.Equal(t, "new", company.Handle)
		require.Equal(t, 1, *company.NumEmployees)

		_, err = repo.Create(ctx, &models.CreateCompanyRequest{Handle: "new", Name: "Other", Description: "d"})
		require.True(t, httperrors.IsBadRequest(err))
		require.Contains(t, err.Error(), "Duplicate company: new")
	})

	t.Run("FindAll", func(t *testing.T) {
		testutil.Seed(t, client)

		companies, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"c1", "c2", "c3"}, handles(companies))
	})

	t.Run("Search", func(t *testing.T) {
		testutil.Seed(t, client)

		companies, err := repo.Search(ctx, sqlhelper.Fields{{Key: "nameLike", Value: "c"}, {Key: "minEmployees", Value: 2}})
		require.NoError(t, err)
		require.Equal(t, []string{"c2", "c3"}, handles(companies))

		companies, err = repo.Search(ctx, sqlhelper.Fields{{Key: "maxEmployees", Value: 1}})
		require.NoError(t, err)
		require.Equal(t, []string{"c1"}, handles(companies))

		companies, err = repo.Search(ctx, sqlhelper.Fields{{Key: "nameLike", Value: "nope"}})
		require.NoError(t, err)
		require.Empty(t, companies)

		_, err = repo.Search(ctx, sqlhelper.Fields{{Key: "minEmployees", Value: 3}, {Key: "maxEmployees", Value: 1}})
		require.True(t, httperrors.IsBadRequest(err))
	})

	t.Run("Get", func(t *testing.T) {
		testutil.Seed(t, client)

		company, err := repo.Get(ctx, "c1")
		require.NoError(t, err)
		require.Equal(t, "C1", company.Name)
		require.Len(t, company.Jobs, 4)
		require.Equal(t, "j1", company.Jobs[0].Title)
		require.Equal(t, "0.1", *company.Jobs[0].Equity)

		company, err = repo.Get(ctx, "c2")
		require.NoError(t, err)
		require.Empty(t, company.Jobs)

		_, err = repo.Get(ctx, "nope")
		require.True(t, httperrors.IsNotFound(err))
		require.Equal(t, "No company: nope", err.Error())
	})

	t.Run("Update", func(t *testing.T) {
		testutil.Seed(t, client)

		company, err := repo.Update(ctx, "c1", sqlhelper.Fields{
			{Key: "name", Value: "New"},
			{Key: "numEmployees", Value: 10},
			{Key: "logoUrl", Value: nil},
		})
		require.NoError(t, err)
		require.Equal(t, "New", company.Name)
		require.Equal(t, 10, *company.NumEmployees)
		require.Nil(t, company.LogoURL)
		require.Equal(t, "Desc1", company.Description)

		_, err = repo.Update(ctx, "nope", sqlhelper.Fields{{Key: "name", Value: "x"}})
		require.True(t, httperrors.IsNotFound(err))

		_, err = repo.Update(ctx, "c1", sqlhelper.Fields{})
		require.True(t, httperrors.IsBadRequest(err))
	})

	t.Run("Remove", func(t *testing.T) {
		testutil.Seed(t, client)

		require.NoError(t, repo.Remove(ctx, "c1"))
		_, err := repo.Get(ctx, "c1")
		require.True(t, httperrors.IsNotFound(err))

		var jobs int
		require.NoError(t, client.DB().GetContext(ctx, &jobs, "SELECT COUNT(*) FROM jobs WHERE company_handle = 'c1'"))
		require.Zero(t, jobs)

		require.True(t, httperrors.IsNotFound(repo.Remove(ctx, "c1")))
	})
}
