package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"rentwise/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sendTimeout = 10 * time.Second

// AsyncDispatcher queues notifications on a buffered channel and fans each one
// out to every channel from a single consumer goroutine. When the queue is full
// the notification is dropped and logged.
type AsyncDispatcher struct {
	users    UserLookup
	channels []Channel
	logger   *zap.Logger
	now      func() time.Time

	queue  chan models.Notification
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewAsyncDispatcher(users UserLookup, logger *zap.Logger, queueSize int, channels ...Channel) *AsyncDispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &AsyncDispatcher{
		users:    users,
		channels: channels,
		logger:   logger,
		now:      time.Now,
		queue:    make(chan models.Notification, queueSize),
	}
}

// Start launches the consumer. Call Stop to drain and shut it down.
func (d *AsyncDispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for n := range d.queue {
			d.deliver(n)
		}
	}()
}

// Stop closes the queue and waits until queued notifications are delivered.
func (d *AsyncDispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *AsyncDispatcher) Dispatch(n models.Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = d.now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("Notification dropped after shutdown",
			zap.String("type", n.Type), zap.String("recipient", n.Recipient))
		return
	}

	select {
	case d.queue <- n:
	default:
		d.logger.Warn("Notification queue full, dropping notification",
			zap.String("type", n.Type), zap.String("recipient", n.Recipient))
	}
}

func (d *AsyncDispatcher) deliver(n models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	to, err := d.users.GetByID(ctx, n.Recipient)
	if err != nil {
		d.logger.Warn("Recipient lookup failed, delivering in-app only",
			zap.String("recipient", n.Recipient), zap.Error(err))
		to = &models.User{ID: n.Recipient}
	}

	for _, ch := range d.channels {
		err := ch.Send(ctx, to, n)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoAddress):
			d.logger.Debug("Channel skipped",
				zap.String("channel", ch.Name()), zap.String("recipient", n.Recipient))
		default:
			d.logger.Error("Failed to deliver notification",
				zap.String("channel", ch.Name()),
				zap.String("type", n.Type),
				zap.String("recipient", n.Recipient),
				zap.Error(err))
		}
	}
}
