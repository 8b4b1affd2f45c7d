package persist

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/td0m/devbook/pkg/model"
)

// Redis keeps the whole snapshot under a single key
type Redis struct {
	client  redis.Cmdable
	key     string
	timeout time.Duration
}

func InRedis(client redis.Cmdable, key string) *Redis {
	return &Redis{client: client, key: key, timeout: 5 * time.Second}
}

func (r *Redis) Save(s model.Snapshot) error {
	bs, err := newSavable(s).encode()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.client.Set(ctx, r.key, bs, 0).Err(); err != nil {
		return errors.Wrapf(err, "saving %s", r.key)
	}
	return nil
}

func (r *Redis) Load() (model.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	bs, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Snapshot{}, nil
	}
	if err != nil {
		return model.Snapshot{}, errors.Wrapf(err, "loading %s", r.key)
	}
	s, err := decode(bs)
	if err != nil {
		return model.Snapshot{}, errors.Wrap(err, r.key)
	}
	return s, nil
}
