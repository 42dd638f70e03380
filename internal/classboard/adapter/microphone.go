package adapter

import (
	"context"
	"errors"
	"sync"

	"classboard/internal/classboard/widget"
)

var ErrMicrophoneUnavailable = errors.New("microphone access denied or unavailable")

// Microphone yields a normalized 0-10 volume stream. The channel is closed
// once ctx is done.
type Microphone interface {
	Listen(ctx context.Context, sensitivity int) (<-chan float64, error)
}

// NoMicrophone is used when no capture device exists.
type NoMicrophone struct{}

func (NoMicrophone) Listen(context.Context, int) (<-chan float64, error) {
	return nil, ErrMicrophoneUnavailable
}

type listener struct {
	sensitivity int
	ch          chan float64
}

// FeedMicrophone fans out raw frames pushed by a client to every listener.
type FeedMicrophone struct {
	mu        sync.Mutex
	next      int
	listeners map[int]listener
}

func NewFeedMicrophone() *FeedMicrophone {
	return &FeedMicrophone{listeners: make(map[int]listener)}
}

func (f *FeedMicrophone) Listen(ctx context.Context, sensitivity int) (<-chan float64, error) {
	f.mu.Lock()
	id := f.next
	f.next++
	l := listener{sensitivity: sensitivity, ch: make(chan float64, 16)}
	f.listeners[id] = l
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.listeners, id)
		close(l.ch)
		f.mu.Unlock()
	}()
	return l.ch, nil
}

// Push normalizes samples for each listener. Slow listeners miss frames.
// Returns the number of listeners.
func (f *FeedMicrophone) Push(samples []uint8) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.listeners {
		select {
		case l.ch <- widget.Normalize(samples, l.sensitivity):
		default:
		}
	}
	return len(f.listeners)
}

func (f *FeedMicrophone) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}
