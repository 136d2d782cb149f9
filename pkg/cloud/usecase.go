package cloud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/jobstats/pkg/cache"
	"github.com/artem13815/jobstats/pkg/job"
	"github.com/artem13815/jobstats/pkg/logger"
	"github.com/artem13815/jobstats/pkg/wordcloud"
	"github.com/artem13815/jobstats/pkg/wordfreq"
)

// ErrNoData is returned when no token survives for the requested filter.
var ErrNoData = errors.New("no data found")

// Row caps per cloud kind.
const (
	StackRecordLimit       = 200
	RequirementRecordLimit = 30
)

// Kind identifies which text column a cloud is built from.
type Kind string

const (
	KindStack       Kind = "stack"
	KindRequirement Kind = "required"
)

// Result хранит частоты, посчитанные для одного запроса.
type Result struct {
	Records     int                   `json:"records"` // non-NULL rows fetched
	Tokens      int                   `json:"tokens"`
	Frequencies wordfreq.FrequencyMap `json:"frequencies"`
}

// UseCase описывает сценарии построения облака слов.
type UseCase interface {
	Frequencies(ctx context.Context, kind Kind, filter string) (Result, error)
	Image(ctx context.Context, kind Kind, filter string) ([]byte, error)
}

type service struct {
	repo     job.Repository
	rules    *wordfreq.RuleSet
	renderer wordcloud.Renderer
	cache    cache.ImageCache
	log      *logger.Logger
}

func NewService(repo job.Repository, rules *wordfreq.RuleSet, renderer wordcloud.Renderer, c cache.ImageCache, log *logger.Logger) UseCase {
	if c == nil {
		c = cache.NopCache{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &service{repo: repo, rules: rules, renderer: renderer, cache: c, log: log}
}

func (s *service) Frequencies(ctx context.Context, kind Kind, filter string) (Result, error) {
	filter = strings.TrimSpace(filter)
	var (
		records []*string
		tok     wordfreq.Tokenizer
		err     error
	)
	switch kind {
	case KindStack:
		records, err = s.repo.TechStacks(ctx, filter, StackRecordLimit)
		tok = wordfreq.StackTokenizer{}
	case KindRequirement:
		records, err = s.repo.Requirements(ctx, filter, RequirementRecordLimit)
		tok = s.rules
	default:
		return Result{}, fmt.Errorf("unknown cloud kind %q", kind)
	}
	if err != nil {
		return Result{}, fmt.Errorf("load %s records: %w", kind, err)
	}
	freq := wordfreq.Count(records, tok)
	if len(freq) == 0 {
		return Result{}, ErrNoData
	}
	res := Result{Records: nonNull(records), Tokens: freq.Total(), Frequencies: freq}
	s.log.Debug("cloud %s filter=%q records=%d tokens=%d distinct=%d", kind, filter, res.Records, res.Tokens, len(freq))
	return res, nil
}

func (s *service) Image(ctx context.Context, kind Kind, filter string) ([]byte, error) {
	filter = strings.TrimSpace(filter)
	key := cache.Key("wordcloud", string(kind), filter, s.rules.Version(), s.renderer.Name())
	if img, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Error("cache get %s: %v", key, err)
	} else if ok {
		return img, nil
	}

	res, err := s.Frequencies(ctx, kind, filter)
	if err != nil {
		return nil, err
	}
	img, err := s.renderer.Render(ctx, res.Frequencies)
	if err != nil {
		return nil, fmt.Errorf("render %s cloud: %w", kind, err)
	}
	if err := s.cache.Set(ctx, key, img); err != nil {
		s.log.Error("cache set %s: %v", key, err)
	}
	return img, nil
}

func nonNull(records []*string) int {
	n := 0
	for _, r := range records {
		if r != nil {
			n++
		}
	}
	return n
}
