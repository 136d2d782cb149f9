//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/artem13815/jobstats/pkg/repository/postgres"
	"github.com/artem13815/jobstats/pkg/storage/migrations"
	"github.com/artem13815/jobstats/pkg/storage/postgres"
)

// Run with: JOBSTATS_TEST_DATABASE_URL=postgres://... go test -tags integration ./pkg/repository/postgres
func TestJobRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("JOBSTATS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("JOBSTATS_TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()
	pool, err := postgres.Connect(ctx, dsn, 2)
	require.NoError(t, err)
	defer pool.Close()

	db := postgres.SQLDB(pool)
	_, err = migrations.Up(ctx, db, "postgres")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = pool.Exec(ctx, `TRUNCATE job_data RESTART IDENTITY`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
INSERT INTO job_data (company, title, career, tech_stack, required, date_until) VALUES
 ('Kakao', 'Backend Engineer', 3, '''Java'', ''Spring''', '<p>자바 경험</p>', '2024-06-30'),
 (NULL, 'Frontend', 1, NULL, NULL, NULL),
 ('Naver', 'Backend Intern', 0, '''Go''', '파이썬', '2024-05-01')`)
	require.NoError(t, err)

	repo := pgrepo.NewJobRepository(pool)

	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "", all[1].Company)
	assert.Nil(t, all[1].TechStack)
	assert.Nil(t, all[1].DateUntil)

	senior, err := repo.ListByMinCareer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, senior, 2)

	java, err := repo.ListBySkill(ctx, "Java")
	require.NoError(t, err)
	require.Len(t, java, 1)
	assert.Equal(t, "Kakao", java[0].Company)

	open, err := repo.ListOpenSince(ctx, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "2024-06-30", open[0].DateUntil.Format("2006-01-02"))

	stacks, err := repo.TechStacks(ctx, "Backend", 200)
	require.NoError(t, err)
	assert.Len(t, stacks, 2)

	everything, err := repo.TechStacks(ctx, "", 200)
	require.NoError(t, err)
	assert.Len(t, everything, 3)
	assert.Nil(t, everything[1])

	reqs, err := repo.Requirements(ctx, "Go", 30)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "파이썬", *reqs[0])
}
