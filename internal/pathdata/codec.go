package pathdata

import (
	"encoding/binary"
	"fmt"
	"math"
)

var emptyBuffer = Encode(nil)

// EmptyBuffer returns the canonical zero-figure buffer.
// The returned slice is shared and must not be modified.
func EmptyBuffer() []byte {
	return emptyBuffer
}

// Encode packs the figures into a path buffer.
func Encode(figures []Figure) []byte {
	size := HeaderSize
	for i := range figures {
		size += figureSize(&figures[i])
	}

	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(len(figures))))

	for i := range figures {
		fig := &figures[i]
		var flags uint32
		if fig.Closed {
			flags |= FigureClosed
		}
		if fig.Filled {
			flags |= FigureFilled
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(figureSize(fig)))
		buf = binary.LittleEndian.AppendUint32(buf, flags)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(fig.Segments)))
		buf = appendPoint(buf, fig.Start)
		for _, seg := range fig.Segments {
			buf = append(buf, byte(seg.Kind), seg.Flags, 0, 0)
			buf = binary.LittleEndian.AppendUint32(buf, uint32(len(seg.Points)))
			for _, p := range seg.Points {
				buf = appendPoint(buf, p)
			}
		}
	}
	return buf
}

func figureSize(fig *Figure) int {
	n := FigureHeaderSize
	for _, seg := range fig.Segments {
		n += SegmentHeaderSize + PointSize*len(seg.Points)
	}
	return n
}

func appendPoint(buf []byte, p Point) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.X))
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Y))
}

// ReadHeader returns the total size and figure count recorded in buf.
func ReadHeader(buf []byte) (size uint32, figureCount int32, err error) {
	if len(buf) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: %d byte header", ErrCorrupt, len(buf))
	}
	size = binary.LittleEndian.Uint32(buf[0:])
	figureCount = int32(binary.LittleEndian.Uint32(buf[4:]))
	if int(size) != len(buf) {
		return 0, 0, fmt.Errorf("%w: header size %d, buffer size %d", ErrCorrupt, size, len(buf))
	}
	return size, figureCount, nil
}

// IsEmpty reports whether buf describes no figures. Malformed buffers are
// reported as empty.
func IsEmpty(buf []byte) bool {
	_, n, err := ReadHeader(buf)
	return err != nil || n <= 0
}

// Decode unpacks a path buffer.
func Decode(buf []byte) ([]Figure, error) {
	_, count, err := ReadHeader(buf)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}

	r := reader{buf: buf, off: HeaderSize}
	figures := make([]Figure, 0, count)
	for i := int32(0); i < count; i++ {
		start := r.off
		figSize := r.uint32()
		flags := r.uint32()
		segCount := r.uint32()
		fig := Figure{
			Start:  r.point(),
			Closed: flags&FigureClosed != 0,
			Filled: flags&FigureFilled != 0,
		}
		if r.err != nil {
			return nil, r.err
		}
		if uint64(segCount)*SegmentHeaderSize > uint64(len(buf)-r.off) {
			return nil, fmt.Errorf("%w: figure %d claims %d segments", ErrCorrupt, i, segCount)
		}
		fig.Segments = make([]Segment, 0, segCount)
		for j := uint32(0); j < segCount; j++ {
			seg, err := r.segment()
			if err != nil {
				return nil, fmt.Errorf("figure %d segment %d: %w", i, j, err)
			}
			fig.Segments = append(fig.Segments, seg)
		}
		if r.off-start != int(figSize) {
			return nil, fmt.Errorf("%w: figure %d size %d, decoded %d", ErrCorrupt, i, figSize, r.off-start)
		}
		figures = append(figures, fig)
	}
	if r.off != len(buf) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(buf)-r.off)
	}
	return figures, nil
}

type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if len(r.buf)-r.off < n {
		r.err = fmt.Errorf("%w: truncated at offset %d", ErrCorrupt, r.off)
		return false
	}
	return true
}

func (r *reader) uint32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *reader) point() Point {
	if !r.need(PointSize) {
		return Point{}
	}
	x := math.Float64frombits(binary.LittleEndian.Uint64(r.buf[r.off:]))
	y := math.Float64frombits(binary.LittleEndian.Uint64(r.buf[r.off+8:]))
	r.off += PointSize
	return Point{X: x, Y: y}
}

func (r *reader) segment() (Segment, error) {
	if !r.need(SegmentHeaderSize) {
		return Segment{}, r.err
	}
	seg := Segment{
		Kind:  SegmentKind(r.buf[r.off]),
		Flags: r.buf[r.off+1],
	}
	r.off += 4
	n := r.uint32()
	per := seg.Kind.PointsPerCurve()
	if per == 0 {
		return Segment{}, fmt.Errorf("%w: unknown segment kind %d", ErrCorrupt, seg.Kind)
	}
	if int(n)%per != 0 {
		return Segment{}, fmt.Errorf("%w: %d points for kind %d", ErrCorrupt, n, seg.Kind)
	}
	if uint64(n)*PointSize > uint64(len(r.buf)-r.off) {
		return Segment{}, fmt.Errorf("%w: segment claims %d points", ErrCorrupt, n)
	}
	seg.Points = make([]Point, n)
	for i := range seg.Points {
		seg.Points[i] = r.point()
	}
	return seg, r.err
}
