package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// MessageType represents the type of message on the update stream
type MessageType string

// Event types published by the subject collaborator
const (
	EventTitleReady              MessageType = "title_ready"
	EventFavoriteChanged         MessageType = "favorite_changed"
	EventNotificationEligibility MessageType = "notification_eligibility"
	EventNotificationChanged     MessageType = "notification_changed"
	EventTabChanged              MessageType = "tab_changed"
	EventCollaboratorFailed      MessageType = "collaborator_failed"
)

// Message represents a single update on the stream
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// SubjectEvent is the base struct for events about one subject
type SubjectEvent struct {
	Subject string
}

// TitleReady carries the display title of a subject
type TitleReady struct {
	SubjectEvent
	Title string
}

// FlagChanged carries a boolean subject state (favorite, eligibility, notification)
type FlagChanged struct {
	SubjectEvent
	Value bool
}

// TabChanged asks the screen to show a tab without a user click
type TabChanged struct {
	SubjectEvent
	Tab string
}

// CollaboratorFailed reports a collaborator-side failure the user should see
type CollaboratorFailed struct {
	SubjectEvent
	Message string
	Error   error
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []*subscriber
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// subscriber owns one channel; critical messages that do not fit its buffer
// wait in pending and are forwarded in publish order by a single goroutine
type subscriber struct {
	ch       chan Message
	done     chan struct{}
	mu       sync.Mutex
	pending  []Message
	draining bool
	wg       sync.WaitGroup
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]*subscriber, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel that closes when ctx is done
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		ch:   make(chan Message, b.cfg.Events.Buffer),
		done: make(chan struct{}),
	}

	if b.closed {
		close(sub.ch)
		return sub.ch
	}

	b.subscribers = append(b.subscribers, sub)

	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub.ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, sub := range b.subscribers {
		sub.deliver(msg)
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, sub := range b.subscribers {
		sub.close()
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			sub.close()

			break
		}
	}
}

// deliver sends directly while nothing is pending, otherwise queues behind the pending messages
func (s *subscriber) deliver(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		select {
		case s.ch <- msg:
			return
		default:
		}
	}

	if !msg.Critical {
		return
	}

	s.pending = append(s.pending, msg)

	if !s.draining {
		s.draining = true
		s.wg.Add(1)

		go s.drain()
	}
}

func (s *subscriber) drain() {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()

			return
		}

		msg := s.pending[0]
		s.mu.Unlock()

		select {
		case s.ch <- msg:
		case <-s.done:
			return
		}

		s.mu.Lock()
		s.pending = s.pending[1:]
		s.mu.Unlock()
	}
}

// close stops forwarding and closes the channel once no send can be in flight
func (s *subscriber) close() {
	close(s.done)
	s.wg.Wait()
	close(s.ch)
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case TitleReady:
		return fmt.Sprintf("{subject: %s, title: %s}", d.Subject, d.Title)
	case FlagChanged:
		return fmt.Sprintf("{subject: %s, value: %t}", d.Subject, d.Value)
	case TabChanged:
		return fmt.Sprintf("{subject: %s, tab: %s}", d.Subject, d.Tab)
	case CollaboratorFailed:
		return fmt.Sprintf("{subject: %s, message: %s, error: %v}", d.Subject, d.Message, d.Error)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
