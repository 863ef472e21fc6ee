package storage

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrClosed is returned for writes issued after Close
var ErrClosed = errors.New("storage: store closed")

const defaultQueueSize = 64

type writeOp struct {
	seq    uint64
	key    string
	value  string
	remove bool
}

// AsyncStore serves reads from an in-memory view and applies writes to the
// wrapped store on a background goroutine, so callers never wait on disk.
type AsyncStore struct {
	inner  Store
	logger *log.Logger

	mu      sync.RWMutex
	pending map[string]writeOp // latest queued write per key
	seq     uint64
	closed  bool

	writeCh chan writeOp
	done    chan struct{}
}

// NewAsyncStore starts the writer goroutine. A nil logger uses log.Default().
func NewAsyncStore(inner Store, logger *log.Logger) *AsyncStore {
	if logger == nil {
		logger = log.Default()
	}
	s := &AsyncStore{
		inner:   inner,
		logger:  logger,
		pending: make(map[string]writeOp),
		writeCh: make(chan writeOp, defaultQueueSize),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Get returns the latest value, including writes still in the queue
func (s *AsyncStore) Get(key string) (string, error) {
	s.mu.RLock()
	op, queued := s.pending[key]
	s.mu.RUnlock()
	if queued {
		if op.remove {
			return "", ErrNotFound
		}
		return op.value, nil
	}
	return s.inner.Get(key)
}

func (s *AsyncStore) Set(key, value string) error {
	return s.enqueue(writeOp{key: key, value: value})
}

func (s *AsyncStore) Remove(key string) error {
	return s.enqueue(writeOp{key: key, remove: true})
}

// Close drains the queue and stops the writer
func (s *AsyncStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.writeCh)
	s.mu.Unlock()

	<-s.done
	return nil
}

func (s *AsyncStore) enqueue(op writeOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.seq++
	op.seq = s.seq
	select {
	case s.writeCh <- op:
		s.pending[op.key] = op
		return nil
	default:
		s.logger.Warn("store queue full, dropping write", "key", op.key)
		return nil
	}
}

func (s *AsyncStore) run() {
	defer close(s.done)
	for op := range s.writeCh {
		var err error
		if op.remove {
			err = s.inner.Remove(op.key)
		} else {
			err = s.inner.Set(op.key, op.value)
		}
		if err != nil {
			s.logger.Warn("store write failed", "key", op.key, "err", err)
		}

		s.mu.Lock()
		if cur, ok := s.pending[op.key]; ok && cur.seq == op.seq {
			delete(s.pending, op.key)
		}
		s.mu.Unlock()
	}
}
