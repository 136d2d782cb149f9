package checkers

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestRedisChecker(t *testing.T) {
	var hasDeadline bool
	ok := NewRedisChecker(pingFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}))
	assert.Equal(t, "redis", ok.Name())
	assert.NoError(t, ok.Check(context.Background()))
	assert.True(t, hasDeadline)

	bad := NewRedisChecker(pingFunc(func(context.Context) error { return errors.New("down") }))
	assert.EqualError(t, bad.Check(context.Background()), "down")
}

func TestSQLChecker(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)

	c := NewSQLChecker("sqlite", db)
	assert.Equal(t, "sqlite", c.Name())
	assert.NoError(t, c.Check(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, c.Check(context.Background()))
}
