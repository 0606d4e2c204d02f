package cache

import (
	"context"
	"errors"
	"time"

	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Cache is the ephemeral one-time code store. Codes live only here; expiry is
// enforced by the key TTL and a plain SET overwrites any live code for the key.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) Set(ctx context.Context, key, code string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "Set")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Set(ctx, key, code, ttl).Err()
	return err
}

func (c *Cache) Get(ctx context.Context, key string) (_ string, err error) {
	ctx, span := c.startSpan(ctx, "Get")
	defer func() { c.endSpan(span, err) }()

	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", goerror.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return val, nil
}

func (c *Cache) Del(ctx context.Context, key string) (err error) {
	ctx, span := c.startSpan(ctx, "Del")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Del(ctx, key).Err()
	return err
}
