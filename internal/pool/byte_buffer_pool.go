package pool

import (
	"errors"
	"io"
	"sync"
)

// Default sizes of the pooled buffers.
const (
	InputBufferDefaultSize     = 1024 * 64        // 64KiB
	InputBufferMaxThreshold    = 1024 * 1024 * 16 // 16MiB
	ReportBufferDefaultSize    = 1024 * 4         // 4KiB
	ReportBufferMaxThreshold   = 1024 * 64        // 64KiB
	minReadSize                = 512
	largeBufferGrowthThreshold = 4 * InputBufferDefaultSize
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (<256KiB), grow by InputBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := InputBufferDefaultSize
	if cap(bb.B) > largeBufferGrowthThreshold {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteString appends s to the buffer.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ReadFrom appends everything read from r until EOF to the buffer.
//
// Reads go straight into the spare capacity of the buffer, which grows with the
// same policy as Grow. io.EOF is not reported as an error.
//
// Parameters:
//   - r: Source to drain
//
// Returns:
//   - int64: Number of bytes appended
//   - error: First read error other than io.EOF
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(minReadSize)

		start := len(bb.B)
		n, err := r.Read(bb.B[start:cap(bb.B)])
		if n < 0 {
			return total, errors.New("pool: reader returned negative count")
		}
		bb.B = bb.B[:start+n]
		total += int64(n)

		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// Buffers larger than maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	inputDefaultPool  = NewByteBufferPool(InputBufferDefaultSize, InputBufferMaxThreshold)
	reportDefaultPool = NewByteBufferPool(ReportBufferDefaultSize, ReportBufferMaxThreshold)
)

// GetInputBuffer retrieves a ByteBuffer for loading an input to analyze.
func GetInputBuffer() *ByteBuffer {
	return inputDefaultPool.Get()
}

// PutInputBuffer returns an input ByteBuffer to its pool.
func PutInputBuffer(bb *ByteBuffer) {
	inputDefaultPool.Put(bb)
}

// GetReportBuffer retrieves a ByteBuffer for rendering a report.
func GetReportBuffer() *ByteBuffer {
	return reportDefaultPool.Get()
}

// PutReportBuffer returns a report ByteBuffer to its pool.
func PutReportBuffer(bb *ByteBuffer) {
	reportDefaultPool.Put(bb)
}
