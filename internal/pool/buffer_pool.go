package pool

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified initial capacity
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// ReadFile reads the whole file at path into buffer, reusing its capacity.
// On success *buffer holds exactly the file contents.
func ReadFile(path string, buffer *[]byte) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}

	size := int(info.Size())
	buf := (*buffer)[:0]
	if cap(buf) < size+1 {
		// One spare byte lets the final Read observe EOF without growing.
		buf = make([]byte, 0, size+1)
	}

	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := f.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			break
		}
		if err != nil {
			*buffer = buf[:0]
			return errors.Wrapf(err, "read %s", path)
		}
	}

	*buffer = buf
	return nil
}
