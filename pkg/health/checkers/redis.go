package checkers

import "context"

// Pinger is satisfied by cache.RedisCache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RedisChecker struct {
	p Pinger
}

func NewRedisChecker(p Pinger) *RedisChecker { return &RedisChecker{p: p} }

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.p.Ping(ctx)
}
