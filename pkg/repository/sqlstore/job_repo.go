package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/artem13815/jobstats/pkg/job"
)

const jobColumns = `id, company, title, career, tech_stack, required, date_until`

// JobRepository implements job.Repository on top of database/sql.
type JobRepository struct {
	db *sql.DB
	d  Dialect
}

func NewJobRepository(db *sql.DB, d Dialect) *JobRepository {
	return &JobRepository{db: db, d: d}
}

func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 10
	}
	q := fmt.Sprintf(`SELECT %s FROM job_data ORDER BY id %s`,
		jobColumns, r.d.Page(r.d.Param(1), r.d.Param(2)))
	return r.queryJobs(ctx, q, limit, offset)
}

func (r *JobRepository) ListByMinCareer(ctx context.Context, career int) ([]job.Job, error) {
	q := fmt.Sprintf(`SELECT %s FROM job_data WHERE career >= %s ORDER BY id`,
		jobColumns, r.d.Param(1))
	return r.queryJobs(ctx, q, career)
}

func (r *JobRepository) ListBySkill(ctx context.Context, skill string) ([]job.Job, error) {
	q := fmt.Sprintf(`SELECT %s FROM job_data WHERE %s ORDER BY id`,
		jobColumns, r.d.Contains("tech_stack", r.d.Param(1)))
	return r.queryJobs(ctx, q, skill)
}

func (r *JobRepository) ListOpenSince(ctx context.Context, date time.Time) ([]job.Job, error) {
	q := fmt.Sprintf(`SELECT %s FROM job_data WHERE date_until >= %s ORDER BY id`,
		jobColumns, r.d.Param(1))
	return r.queryJobs(ctx, q, r.d.DateArg(date))
}

func (r *JobRepository) TechStacks(ctx context.Context, subject string, limit int) ([]*string, error) {
	return r.queryText(ctx, "tech_stack", "title", subject, limit)
}

func (r *JobRepository) Requirements(ctx context.Context, skill string, limit int) ([]*string, error) {
	return r.queryText(ctx, "required", "tech_stack", skill, limit)
}

func (r *JobRepository) queryText(ctx context.Context, column, filterColumn, filter string, limit int) ([]*string, error) {
	p1 := r.d.Param(1)
	q := fmt.Sprintf(`SELECT %s FROM job_data WHERE (%s = '' OR %s) ORDER BY id %s`,
		column, p1, r.d.Contains(filterColumn, p1), r.d.Page(r.d.Param(2), r.d.Param(3)))
	rows, err := r.db.QueryContext(ctx, q, filter, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", column, err)
	}
	defer rows.Close()
	var out []*string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		if v.Valid {
			s := v.String
			out = append(out, &s)
		} else {
			out = append(out, nil)
		}
	}
	return out, rows.Err()
}

func (r *JobRepository) queryJobs(ctx context.Context, q string, args ...any) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()
	var res []job.Job
	for rows.Next() {
		var (
			j        job.Job
			company  sql.NullString
			stack    sql.NullString
			required sql.NullString
			until    dateValue
		)
		if err := rows.Scan(&j.ID, &company, &j.Title, &j.Career, &stack, &required, &until); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		j.Company = company.String
		j.TechStack = nullable(stack)
		j.Required = nullable(required)
		j.DateUntil = until.ptr()
		res = append(res, j)
	}
	return res, rows.Err()
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// dateValue scans DATE columns that drivers hand back either as time.Time
// or as text.
type dateValue struct {
	t     time.Time
	valid bool
}

func (d *dateValue) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.valid = false
		return nil
	case time.Time:
		d.t, d.valid = v.UTC(), true
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("unsupported date type %T", src)
	}
}

func (d *dateValue) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.valid = false
		return nil
	}
	// "2006-01-02", "2006-01-02 15:04:05", RFC3339: the date part leads
	if len(s) < len("2006-01-02") {
		return fmt.Errorf("parse date %q", s)
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.t, d.valid = t, true
	return nil
}

func (d dateValue) ptr() *time.Time {
	if !d.valid {
		return nil
	}
	t := d.t
	return &t
}
