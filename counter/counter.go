package counter

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/tecnocarton/formsbackend/logger"
)

// CounterKey names the deployment-wide quote counter shared by every
// instance pointing at the same store.
const CounterKey = "tecnocarton:quote_counter"

// Service issues quote numbers. NextNumber always returns a number: store
// failures are absorbed inside the service, never surfaced to the handler.
type Service interface {
	NextNumber(ctx context.Context) int64
}

// PrimaryStore is the durable atomic-increment store backing the counter.
// Implementations must make Incr atomic across concurrent callers.
type PrimaryStore interface {
	Incr(ctx context.Context, key string) (int64, error)
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore builds the Redis-backed primary store from a connection
// URL. Retries are disabled: a degraded store must fail fast into the
// local fallback instead of stalling request handling.
func NewRedisStore(redisURL string) (PrimaryStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.MaxRetries = -1
	return &redisStore{client: redis.NewClient(opts)}, nil
}

func (r *redisStore) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

type service struct {
	primary      PrimaryStore // nil when no primary store is configured
	fallbackFile string
}

// New builds the counter service. primary may be nil; fallbackFile is the
// path of the local counter file used when the primary is absent or down.
func New(primary PrimaryStore, fallbackFile string) Service {
	return &service{primary: primary, fallbackFile: fallbackFile}
}

// NextNumber draws the next quote number. Primary store first; on any
// primary error the local file takes over; if the file itself fails the
// last resort is a random number in [1000, 9999], which trades uniqueness
// for never failing the user-visible flow.
func (s *service) NextNumber(ctx context.Context) int64 {
	if s.primary != nil {
		n, err := s.primary.Incr(ctx, CounterKey)
		if err == nil {
			return n
		}
		logger.Warnf("quote counter: primary store unavailable, fallback engaged: %v", err)
	}

	n, err := s.nextFromFile()
	if err != nil {
		logger.Errorf("quote counter: fallback file failed: %v", err)
		return rand.Int63n(9000) + 1000
	}
	return n
}

// nextFromFile is a plain read-modify-write and is not safe under
// concurrent writers: two processes falling back at once can draw the same
// number. The fallback exists for single-instance runs without Redis;
// multi-instance deployments must keep the primary store reachable.
func (s *service) nextFromFile() (int64, error) {
	var current int64
	data, err := os.ReadFile(s.fallbackFile)
	if err == nil {
		if v, perr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64); perr == nil {
			current = v
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("read %s: %w", s.fallbackFile, err)
	}

	next := current + 1
	if err := os.WriteFile(s.fallbackFile, []byte(strconv.FormatInt(next, 10)), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", s.fallbackFile, err)
	}
	return next, nil
}
