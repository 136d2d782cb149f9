package job

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format, please use yyyymmdd")

// UseCase инкапсулирует сценарии чтения вакансий.
type UseCase interface {
	Sample(ctx context.Context, limit, offset int) ([]Job, error)
	ByCareer(ctx context.Context, minCareer int) ([]Job, error)
	BySkill(ctx context.Context, skill string) ([]Job, error)
	OpenSince(ctx context.Context, yyyymmdd string) ([]Job, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Sample(ctx context.Context, limit, offset int) ([]Job, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return nonNil(s.repo.List(ctx, limit, offset))
}

func (s *service) ByCareer(ctx context.Context, minCareer int) ([]Job, error) {
	if minCareer < 0 {
		return nil, ErrValidation("career must not be negative")
	}
	return nonNil(s.repo.ListByMinCareer(ctx, minCareer))
}

func (s *service) BySkill(ctx context.Context, skill string) ([]Job, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, ErrValidation("skill is required")
	}
	return nonNil(s.repo.ListBySkill(ctx, skill))
}

func (s *service) OpenSince(ctx context.Context, yyyymmdd string) ([]Job, error) {
	date, err := ParseDate(yyyymmdd)
	if err != nil {
		return nil, err
	}
	return nonNil(s.repo.ListOpenSince(ctx, date))
}

// ParseDate parses an 8-digit yyyymmdd date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d.UTC(), nil
}

func nonNil(jobs []Job, err error) ([]Job, error) {
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []Job{}
	}
	return jobs, nil
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
