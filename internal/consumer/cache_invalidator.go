package consumer

import (
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/thegoanwedding/marketplace/internal/logging"
)

// Bindings are the routing keys whose messages change cached listings.
var Bindings = []string{"vendor.*", "category.*", "blog.*"}

var prefixes = map[string][]string{
	"vendor":   {"/api/vendors"},
	"category": {"/api/categories"},
	"blog":     {"/api/blog"},
}

type Cache interface {
	InvalidatePrefix(prefix string) int
	Flush()
}

// CacheInvalidator evicts cached responses when another instance (or this
// one) publishes a change.
type CacheInvalidator struct {
	cache Cache
}

func NewCacheInvalidator(cache Cache) *CacheInvalidator {
	return &CacheInvalidator{cache: cache}
}

// Start drains msgs on its own goroutine until the channel closes. Once it
// closes no further evictions arrive, so the whole cache is dropped.
func (ci *CacheInvalidator) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			ci.handleMessage(msg)
		}
		ci.cache.Flush()
		l := logging.Component("cache-invalidator")
		l.Warn().Msg("channel closed, cache flushed and consumer stopped")
	}()
}

func (ci *CacheInvalidator) handleMessage(msg amqp.Delivery) {
	l := logging.Component("cache-invalidator")

	entity, _, _ := strings.Cut(msg.RoutingKey, ".")
	targets, ok := prefixes[entity]
	if !ok {
		l.Warn().Str("routing_key", msg.RoutingKey).Msg("unexpected routing key")
		_ = msg.Nack(false, false)
		return
	}

	evicted := 0
	for _, p := range targets {
		evicted += ci.cache.InvalidatePrefix(p)
	}
	l.Debug().Str("routing_key", msg.RoutingKey).Int("evicted", evicted).Msg("cache invalidated")
	_ = msg.Ack(false)
}
