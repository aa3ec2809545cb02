package test

import (
	"context"
	"net"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymtracker/internal/store"
)

func (s *IntegrationTestSuite) checkStore(ctx context.Context, st store.Store) {
	t := s.T()
	const key = "integration-test-key"

	_, err := st.Get(ctx, key)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Set(ctx, key, []byte(`[{"id":"1"}]`)))
	value, err := st.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(value))

	// overwrite
	require.NoError(t, st.Set(ctx, key, []byte(`[]`)))
	value, err = st.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, st.Del(ctx, key, "never-set"))
	_, err = st.Get(ctx, key)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func (s *IntegrationTestSuite) TestRedisStore() {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", s.redisPort),
	})
	defer rdb.Close()

	s.checkStore(ctx, store.NewRedisStore(rdb))
}

func (s *IntegrationTestSuite) TestPostgresStore() {
	ctx := context.Background()
	db, err := pgxpool.New(ctx, s.dsn(s.pgPort))
	require.NoError(s.T(), err)
	defer db.Close()

	pgStore := store.NewPostgresStore(db)
	// migrating twice is fine
	require.NoError(s.T(), pgStore.Migrate(ctx))
	s.checkStore(ctx, pgStore)
}
