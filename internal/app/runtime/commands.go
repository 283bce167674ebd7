//go:generate mockgen -source=commands.go -destination=commands_mock.go -package=runtime
package runtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// CommandType represents the type of command
type CommandType string

// Command types sent to the subject collaborator
const (
	CommandSetFavorite CommandType = "set_favorite"
	CommandSetAlert    CommandType = "set_alert"
)

// Command represents a request to the subject collaborator
type Command struct {
	ID   string
	Type CommandType
	Data interface{}
}

// SetFavoriteData asks the collaborator to add or remove a subject from the watchlist
type SetFavoriteData struct {
	Subject string
	Value   bool
}

// SetAlertData asks the collaborator to store the alert rule for a subject
type SetAlertData struct {
	Subject string
	Change  int
	Trend   bool
}

// CommandBus defines the interface for command publishing and subscription
type CommandBus interface {
	Subscribe(ctx context.Context) <-chan Command
	Publish(cmd Command)
	Close()
}

// commandBus implements the CommandBus interface
type commandBus struct {
	subscribers []chan Command
	mu          sync.RWMutex
	bufferSize  int
	closed      bool
}

// NewCommandBus creates a new command bus with the specified buffer size
func NewCommandBus(bufferSize int) CommandBus {
	return &commandBus{
		subscribers: make([]chan Command, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a new subscription channel for commands
func (cb *commandBus) Subscribe(ctx context.Context) <-chan Command {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	ch := make(chan Command, cb.bufferSize)

	if cb.closed {
		close(ch)
		return ch
	}

	cb.subscribers = append(cb.subscribers, ch)

	go func() {
		<-ctx.Done()
		cb.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a command to all subscribers, stamping it with an id for log correlation
func (cb *commandBus) Publish(cmd Command) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.closed {
		return
	}

	if cmd.ID == "" {
		cmd.ID = uuid.NewString()
	}

	for _, ch := range cb.subscribers {
		select {
		case ch <- cmd:
		default:
		}
	}
}

// Close closes all subscriber channels
func (cb *commandBus) Close() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.closed {
		return
	}

	cb.closed = true

	for _, ch := range cb.subscribers {
		close(ch)
	}

	cb.subscribers = nil
}

// unsubscribe removes a channel from subscribers and closes it
func (cb *commandBus) unsubscribe(ch chan Command) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	for i, sub := range cb.subscribers {
		if sub == ch {
			cb.subscribers = append(cb.subscribers[:i], cb.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

// noOpCommandBus is a no-operation command bus for read-only commands
type noOpCommandBus struct{}

// NewNoOpCommandBus creates a no-op command bus
func NewNoOpCommandBus() CommandBus {
	return &noOpCommandBus{}
}

// Subscribe returns a channel that closes when context is cancelled
func (ncb *noOpCommandBus) Subscribe(ctx context.Context) <-chan Command {
	ch := make(chan Command)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

// Publish is a no-op
func (ncb *noOpCommandBus) Publish(cmd Command) {}

// Close is a no-op
func (ncb *noOpCommandBus) Close() {}
