package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobstats/pkg/job"
)

const jobColumns = `id, company, title, career, tech_stack, required, date_until`

// querier is the part of *pgxpool.Pool the repository uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// JobRepository reads job_data through a pgx pool. Every call acquires a
// pooled connection and releases it before returning.
type JobRepository struct {
	pool querier
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.queryJobs(ctx, `
SELECT `+jobColumns+`
FROM job_data
ORDER BY id
LIMIT $1 OFFSET $2
`, limit, offset)
}

func (r *JobRepository) ListByMinCareer(ctx context.Context, career int) ([]job.Job, error) {
	return r.queryJobs(ctx, `
SELECT `+jobColumns+`
FROM job_data jd
WHERE jd.career >= $1
ORDER BY jd.id
`, career)
}

func (r *JobRepository) ListBySkill(ctx context.Context, skill string) ([]job.Job, error) {
	return r.queryJobs(ctx, `
SELECT `+jobColumns+`
FROM job_data jd
WHERE strpos(jd.tech_stack, $1) > 0
ORDER BY jd.id
`, skill)
}

func (r *JobRepository) ListOpenSince(ctx context.Context, date time.Time) ([]job.Job, error) {
	return r.queryJobs(ctx, `
SELECT `+jobColumns+`
FROM job_data jd
WHERE jd.date_until >= $1::date
ORDER BY jd.id
`, date.Format("2006-01-02"))
}

func (r *JobRepository) TechStacks(ctx context.Context, subject string, limit int) ([]*string, error) {
	return r.queryText(ctx, `
SELECT tech_stack
FROM job_data jd
WHERE ($1 = '' OR strpos(jd.title, $1) > 0)
ORDER BY jd.id
LIMIT $2
`, subject, limit)
}

func (r *JobRepository) Requirements(ctx context.Context, skill string, limit int) ([]*string, error) {
	return r.queryText(ctx, `
SELECT required
FROM job_data jd
WHERE ($1 = '' OR strpos(jd.tech_stack, $1) > 0)
ORDER BY jd.id
LIMIT $2
`, skill, limit)
}

func (r *JobRepository) queryJobs(ctx context.Context, sql string, args ...any) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()
	var res []job.Job
	for rows.Next() {
		var (
			j       job.Job
			company pgtype.Text
			until   *time.Time
		)
		// company is nullable; NULL maps to ""
		if err := rows.Scan(&j.ID, &company, &j.Title, &j.Career, &j.TechStack, &j.Required, &until); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		j.Company = company.String
		if until != nil {
			u := until.UTC()
			j.DateUntil = &u
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) queryText(ctx context.Context, sql string, args ...any) ([]*string, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query text column: %w", err)
	}
	texts, err := pgx.CollectRows(rows, pgx.RowTo[*string])
	if err != nil {
		return nil, fmt.Errorf("collect text column: %w", err)
	}
	return texts, nil
}
