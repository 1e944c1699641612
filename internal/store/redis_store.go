package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/displays"
	"github.com/preston-bernstein/venue-tv-service/internal/domain/preferences"
)

const maxUpdateRetries = 5

// ErrConflict is returned when an update keeps losing optimistic races.
var ErrConflict = errors.New("display update conflict")

// RedisStore keeps displays and preferences in Redis as JSON values.
//
//	{prefix}:displays        set of display ids
//	{prefix}:display:{id}    display JSON
//	{prefix}:preferences     preferences JSON
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "venue-tv"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// DialRedis parses a redis:// URL and returns a connected client.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) displaySetKey() string {
	return s.prefix + ":displays"
}

func (s *RedisStore) displayKey(id string) string {
	return s.prefix + ":display:" + id
}

func (s *RedisStore) preferencesKey() string {
	return s.prefix + ":preferences"
}

// ListDisplays loads every display in the id set, ordered by id.
func (s *RedisStore) ListDisplays(ctx context.Context) ([]displays.Display, error) {
	ids, err := s.client.SMembers(ctx, s.displaySetKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list display ids: %w", err)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return []displays.Display{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.displayKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load displays: %w", err)
	}

	out := make([]displays.Display, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var d displays.Display
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			return nil, fmt.Errorf("decode display %s: %w", ids[i], err)
		}
		out = append(out, d)
	}
	return out, nil
}

// GetDisplay loads a single display.
func (s *RedisStore) GetDisplay(ctx context.Context, id string) (displays.Display, error) {
	return s.getDisplay(ctx, s.client, id)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) getDisplay(ctx context.Context, c getter, id string) (displays.Display, error) {
	raw, err := c.Get(ctx, s.displayKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return displays.Display{}, ErrNotFound
	}
	if err != nil {
		return displays.Display{}, fmt.Errorf("get display %s: %w", id, err)
	}
	var d displays.Display
	if err := json.Unmarshal(raw, &d); err != nil {
		return displays.Display{}, fmt.Errorf("decode display %s: %w", id, err)
	}
	return d, nil
}

// UpdateDisplay runs fn inside a WATCH transaction on the display key and
// retries when another writer gets there first.
func (s *RedisStore) UpdateDisplay(ctx context.Context, id string, fn UpdateFunc) (displays.Display, error) {
	key := s.displayKey(id)
	var updated displays.Display

	txf := func(tx *redis.Tx) error {
		current, err := s.getDisplay(ctx, tx, id)
		if err != nil {
			return err
		}
		next := current.Clone()
		if err := fn(&next); err != nil {
			return err
		}
		next.ID = id
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode display %s: %w", id, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err == nil {
			updated = next
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return displays.Display{}, err
		}
		return updated, nil
	}
	return displays.Display{}, fmt.Errorf("%w: %s", ErrConflict, id)
}

// SeedDisplays writes displays whose key does not exist yet.
func (s *RedisStore) SeedDisplays(ctx context.Context, list []displays.Display) error {
	for _, d := range list {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("encode display %s: %w", d.ID, err)
		}
		if err := s.client.SetNX(ctx, s.displayKey(d.ID), data, 0).Err(); err != nil {
			return fmt.Errorf("seed display %s: %w", d.ID, err)
		}
		if err := s.client.SAdd(ctx, s.displaySetKey(), d.ID).Err(); err != nil {
			return fmt.Errorf("index display %s: %w", d.ID, err)
		}
	}
	return nil
}

// GetPreferences loads the saved preferences.
func (s *RedisStore) GetPreferences(ctx context.Context) (preferences.VenuePreferences, bool, error) {
	raw, err := s.client.Get(ctx, s.preferencesKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return preferences.VenuePreferences{}, false, nil
	}
	if err != nil {
		return preferences.VenuePreferences{}, false, fmt.Errorf("get preferences: %w", err)
	}
	var p preferences.VenuePreferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return preferences.VenuePreferences{}, false, fmt.Errorf("decode preferences: %w", err)
	}
	return p, true, nil
}

// SavePreferences overwrites the stored preferences.
func (s *RedisStore) SavePreferences(ctx context.Context, prefs preferences.VenuePreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.client.Set(ctx, s.preferencesKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
