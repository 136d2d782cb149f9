package job

import (
	"context"
	"time"
)

// Job соответствует строке таблицы job_data.
type Job struct {
	ID        int64      `json:"id"`
	Company   string     `json:"company"`
	Title     string     `json:"title"`
	Career    int        `json:"career"`
	TechStack *string    `json:"tech_stack"`
	Required  *string    `json:"required"`
	DateUntil *time.Time `json:"date_until"`
}

// Repository описывает порт чтения вакансий. Все методы только читают.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Job, error)
	ListByMinCareer(ctx context.Context, career int) ([]Job, error)
	ListBySkill(ctx context.Context, skill string) ([]Job, error)
	ListOpenSince(ctx context.Context, date time.Time) ([]Job, error)
	// Text columns for word clouds; NULL values come back as nil.
	TechStacks(ctx context.Context, subject string, limit int) ([]*string, error)
	Requirements(ctx context.Context, skill string, limit int) ([]*string, error)
}
