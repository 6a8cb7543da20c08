// Package archive reads and writes the little-endian binary layout used by
// persisted script graphs.
//
// Writer and Reader keep the first error they hit and turn every later call
// into a no-op, so callers check Err once at the end of a record.
package archive

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/aretw0/hexrune/pkg/domain"
)

var order = binary.LittleEndian

// Encoded sizes, in bytes.
const (
	SizeU8  = 1
	SizeU32 = 4
	SizeU64 = 8
	SizeF32 = 4
)

// SizeString returns the encoded size of a length-prefixed string.
func SizeString(s string) int { return SizeU32 + len(s) }

// SizeU64List returns the encoded size of a length-prefixed U64 list.
func SizeU64List(n int) int { return SizeU32 + n*SizeU64 }

// Writer encodes primitives onto an io.Writer.
type Writer struct {
	w   io.Writer
	buf [8]byte
	n   int
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += n
	if err != nil {
		w.err = fmt.Errorf("archive write: %w", err)
	}
}

func (w *Writer) U8(v uint8) {
	w.buf[0] = v
	w.write(w.buf[:1])
}

func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
		return
	}
	w.U8(0)
}

func (w *Writer) U32(v uint32) {
	order.PutUint32(w.buf[:4], v)
	w.write(w.buf[:4])
}

func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

func (w *Writer) U64(v uint64) {
	order.PutUint64(w.buf[:8], v)
	w.write(w.buf[:8])
}

func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }

func (w *Writer) String(s string) {
	w.U32(uint32(len(s)))
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.n += n
	if err != nil {
		w.err = fmt.Errorf("archive write: %w", err)
	}
}

// U64List writes a U32 count followed by the values.
func (w *Writer) U64List(vs []uint64) {
	w.U32(uint32(len(vs)))
	for _, v := range vs {
		w.U64(v)
	}
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int { return w.n }

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

// Reader decodes primitives from an io.Reader.
type Reader struct {
	r   io.Reader
	buf [8]byte
	err error
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) read(n int) []byte {
	if r.err != nil {
		return nil
	}
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		r.fail(err)
		return nil
	}
	return r.buf[:n]
}

func (r *Reader) fail(err error) {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		r.err = domain.ErrTruncated
		return
	}
	r.err = fmt.Errorf("archive read: %w", err)
}

func (r *Reader) U8() uint8 {
	b := r.read(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) Bool() bool { return r.U8() != 0 }

func (r *Reader) U32() uint32 {
	b := r.read(4)
	if b == nil {
		return 0
	}
	return order.Uint32(b)
}

func (r *Reader) I32() int32 { return int32(r.U32()) }

func (r *Reader) U64() uint64 {
	b := r.read(8)
	if b == nil {
		return 0
	}
	return order.Uint64(b)
}

func (r *Reader) F32() float32 { return math.Float32frombits(r.U32()) }

func (r *Reader) String() string {
	n := r.U32()
	if r.err != nil || n == 0 {
		return ""
	}
	// Bounded reads keep a corrupt length from allocating the whole prefix up front.
	var sb []byte
	chunk := make([]byte, min(int(n), 4096))
	for remaining := int(n); remaining > 0; {
		k := min(remaining, len(chunk))
		if _, err := io.ReadFull(r.r, chunk[:k]); err != nil {
			r.fail(err)
			return ""
		}
		sb = append(sb, chunk[:k]...)
		remaining -= k
	}
	return string(sb)
}

// U64List reads a U32 count followed by that many values.
func (r *Reader) U64List() []uint64 {
	n := r.U32()
	if r.err != nil {
		return nil
	}
	vs := make([]uint64, 0, min(int(n), 1024))
	for i := uint32(0); i < n; i++ {
		v := r.U64()
		if r.err != nil {
			return nil
		}
		vs = append(vs, v)
	}
	return vs
}

// Err returns the first error encountered.
func (r *Reader) Err() error { return r.err }
