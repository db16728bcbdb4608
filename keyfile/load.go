package keyfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/multiway/btree"
)

// Stream parses keys in the background and broadcasts every Batch to all
// subscribers. Subscribers must subscribe before Start is called; their
// channels are closed when parsing is done.
type Stream struct {
	cast *caster.Caster
	ctx  context.Context
}

// NewStream creates a stream. Cancelling ctx stops the broadcast.
func NewStream(ctx context.Context) *Stream {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Stream{
		cast: caster.New(ctx),
		ctx:  ctx,
	}
}

// Subscribe returns a channel of Batch values (typed as interface{} by the
// underlying broadcaster). capacity is the channel buffer size.
func (s *Stream) Subscribe(capacity uint) (<-chan interface{}, bool) {
	ch, ok := s.cast.Sub(s.ctx, capacity)
	return ch, ok
}

// Start parses r in a new goroutine. A syntax or read error is published as a
// final Batch with Err set.
func (s *Stream) Start(r io.Reader) {
	go func() {
		defer s.cast.Close()
		batches := 0
		err := scan(r, func(b Batch) bool {
			batches++
			return s.cast.Pub(b)
		})
		if err != nil {
			s.cast.Pub(Batch{Err: err})
		}
		tracer().Debugf("keyfile: published %d batches", batches)
	}()
}

// Load reads all keys of a text file.
func Load(name string) ([]btree.Key, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Collect(context.Background(), file)
}

// Collect streams r through a Stream and gathers all keys, returning the
// first error.
func Collect(ctx context.Context, r io.Reader) ([]btree.Key, error) {
	stream := NewStream(ctx)
	ch, ok := stream.Subscribe(16)
	if !ok {
		return nil, fmt.Errorf("keyfile: cannot subscribe to key stream")
	}
	stream.Start(r)
	var keys []btree.Key
	var err error
	for msg := range ch {
		b := msg.(Batch)
		if b.Err != nil && err == nil {
			err = b.Err
		}
		keys = append(keys, b.Keys...)
	}
	if err != nil {
		return nil, err
	}
	if ctx != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return keys, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("keyfile: %s is not a regular file", name)
	}
	return os.Open(name)
}
