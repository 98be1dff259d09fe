package bus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const feedChannel = "coachcore:changes"

// Feed relays broadcasts between processes over a Redis pub/sub channel.
// Each feed tags outgoing messages with its origin id and ignores its own
// publications, so a local broadcast is never double-delivered.
type Feed struct {
	rdb     *goredis.Client
	emitter *Emitter
	origin  string
	log     *zap.Logger
}

// NewFeed connects to Redis, attaches the relay to the emitter, and returns
// the feed. Run must be called to receive remote signals.
func NewFeed(ctx context.Context, addr, password string, db int, emitter *Emitter, log *zap.Logger) (*Feed, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis feed: %w", err)
	}
	f := &Feed{rdb: rdb, emitter: emitter, origin: uuid.NewString(), log: log}
	emitter.AttachRelay(f.publish)
	log.Info("change feed connected", zap.String("addr", addr))
	return f, nil
}

func (f *Feed) publish(topic string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	payload := f.origin + "|" + topic
	if err := f.rdb.Publish(ctx, feedChannel, payload).Err(); err != nil {
		f.log.Warn("change feed publish failed", zap.String("topic", topic), zap.Error(err))
	}
}

// Run receives remote signals until ctx is cancelled, re-emitting each on
// the local emitter. A missed remote signal is recovered by store polling.
func (f *Feed) Run(ctx context.Context) error {
	sub := f.rdb.Subscribe(ctx, feedChannel)
	defer func() { _ = sub.Close() }()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			f.dispatch(msg.Payload)
		}
	}
}

// dispatch applies one raw feed payload to the local emitter, dropping
// malformed payloads and this feed's own publications.
func (f *Feed) dispatch(payload string) {
	origin, topic, found := strings.Cut(payload, "|")
	if !found || origin == f.origin {
		return
	}
	f.emitter.emit(topic)
}

// Close releases the Redis connection.
func (f *Feed) Close() error { return f.rdb.Close() }
