package dictionary_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"pwstrength/internal/infrastructure/dictionary"
)

// fakeRedis keeps sets in memory and implements the commands the Redis
// dictionary uses. Anything else panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable

	sets      map[string]map[string]struct{}
	saddCalls int
	renameErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{sets: map[string]map[string]struct{}{}}
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64

	for _, key := range keys {
		if _, ok := f.sets[key]; ok {
			delete(f.sets, key)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Rename(_ context.Context, key, newKey string) *redis.StatusCmd {
	if f.renameErr != nil {
		return redis.NewStatusResult("", f.renameErr)
	}

	set, ok := f.sets[key]
	if !ok {
		return redis.NewStatusResult("", errors.New("ERR no such key"))
	}

	delete(f.sets, key)
	f.sets[newKey] = set

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SIsMember(_ context.Context, key string, member any) *redis.BoolCmd {
	_, ok := f.sets[key][fmt.Sprint(member)]

	return redis.NewBoolResult(ok, nil)
}

func (f *fakeRedis) Pipelined(_ context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	return nil, fn(&fakePipeline{redis: f})
}

type fakePipeline struct {
	redis.Pipeliner

	redis *fakeRedis
}

func (p *fakePipeline) SAdd(_ context.Context, key string, members ...any) *redis.IntCmd {
	p.redis.saddCalls++

	set, ok := p.redis.sets[key]
	if !ok {
		set = map[string]struct{}{}
		p.redis.sets[key] = set
	}

	for _, m := range members {
		set[fmt.Sprint(m)] = struct{}{}
	}

	return redis.NewIntResult(int64(len(members)), nil)
}

func TestRedisImportReplacesSet(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newFakeRedis()
	d := dictionary.NewRedis(client, "")

	rq.NoError(d.Import(ctx, []string{"password", "qwerty"}))

	common, err := d.Contains(ctx, "QWERTY")
	rq.NoError(err)
	rq.True(common)

	// A second import replaces the list, old words are gone.
	rq.NoError(d.Import(ctx, []string{"letmein"}))

	common, err = d.Contains(ctx, "qwerty")
	rq.NoError(err)
	rq.False(common)

	common, err = d.Contains(ctx, "letmein")
	rq.NoError(err)
	rq.True(common)

	rq.Len(client.sets, 1)
	rq.Contains(client.sets, dictionary.DefaultRedisKey)
}

func TestRedisImportBatches(t *testing.T) {
	rq := require.New(t)

	words := make([]string, 2500)
	for i := range words {
		words[i] = "word" + strconv.Itoa(i)
	}

	client := newFakeRedis()

	rq.NoError(dictionary.NewRedis(client, "lists:common").Import(context.Background(), words))
	rq.Equal(3, client.saddCalls)
	rq.Len(client.sets["lists:common"], 2500)
	rq.NotContains(client.sets, "lists:common:import")
}

func TestRedisImportEmptyListDeletesSet(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newFakeRedis()
	d := dictionary.NewRedis(client, "lists:common")

	rq.NoError(d.Import(ctx, []string{"password"}))
	rq.NoError(d.Import(ctx, nil))

	rq.Empty(client.sets)
	rq.Equal(1, client.saddCalls)

	common, err := d.Contains(ctx, "password")
	rq.NoError(err)
	rq.False(common)
}

func TestRedisImportRenameError(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newFakeRedis()
	client.sets["lists:common"] = map[string]struct{}{"password": {}}
	client.renameErr = errors.New("READONLY You can't write against a read only replica")

	err := dictionary.NewRedis(client, "lists:common").Import(ctx, []string{"qwerty"})
	rq.ErrorContains(err, "redis.Rename")
	rq.ErrorContains(err, "READONLY")

	// The live set is untouched.
	rq.Equal(map[string]struct{}{"password": {}}, client.sets["lists:common"])
}
