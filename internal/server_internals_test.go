package internal

import (
	"context"

	"github.com/go-redis/redis_rate/v9"
)

type testRequestRateLimiter struct {
	// key to limit map
	Limits map[string]int
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	res := &redis_rate.Result{Limit: limit}

	foundLimit, ok := l.Limits[key]
	if !ok || foundLimit == 0 {
		return res, nil
	}

	res.Allowed = l.Limits[key]
	l.Limits[key]--

	return res, nil
}
