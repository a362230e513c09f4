package mem

import "encoding/binary"

// Bytes is a fixed-capacity byte-addressable memory. It never grows past the
// capacity given to NewBytes: out-of-range loads read as zero and
// out-of-range stores are no-ops, matching the fault-tolerant discipline a
// dictionary arena and its stacks are specified to have. CheckCapacity is
// provided separately for callers that must instead fail hard on an
// out-of-range access.
type Bytes struct {
	buf []byte
}

// NewBytes allocates a zeroed memory of the given fixed capacity.
func NewBytes(capacity uint) *Bytes {
	return &Bytes{buf: make([]byte, capacity)}
}

// Cap returns the fixed capacity.
func (m *Bytes) Cap() uint { return uint(len(m.buf)) }

// CheckCapacity returns a CapacityError if end exceeds the fixed capacity.
func (m *Bytes) CheckCapacity(end uint, op string) error {
	return checkCapacity(m.Cap(), end, op)
}

// LoadByte reads a single byte, returning 0 if addr is out of range.
func (m *Bytes) LoadByte(addr uint) byte {
	if addr >= m.Cap() {
		return 0
	}
	return m.buf[addr]
}

// StoreByte writes a single byte, silently doing nothing if addr is out of range.
// Reports whether the store happened.
func (m *Bytes) StoreByte(addr uint, b byte) bool {
	if addr >= m.Cap() {
		return false
	}
	m.buf[addr] = b
	return true
}

// LoadCell reads a little-endian 32-bit cell, returning 0 if out of range.
func (m *Bytes) LoadCell(addr uint) int32 {
	if addr+4 > m.Cap() {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(m.buf[addr : addr+4]))
}

// StoreCell writes a little-endian 32-bit cell, silently doing nothing if out
// of range. Reports whether the store happened.
func (m *Bytes) StoreCell(addr uint, v int32) bool {
	if addr+4 > m.Cap() {
		return false
	}
	binary.LittleEndian.PutUint32(m.buf[addr:addr+4], uint32(v))
	return true
}

// LoadAddr reads a little-endian 16-bit address, returning 0 if out of range.
func (m *Bytes) LoadAddr(addr uint) uint16 {
	if addr+2 > m.Cap() {
		return 0
	}
	return binary.LittleEndian.Uint16(m.buf[addr : addr+2])
}

// StoreAddr writes a little-endian 16-bit address, silently doing nothing if
// out of range. Reports whether the store happened.
func (m *Bytes) StoreAddr(addr uint, a uint16) bool {
	if addr+2 > m.Cap() {
		return false
	}
	binary.LittleEndian.PutUint16(m.buf[addr:addr+2], a)
	return true
}

// Slice returns the n bytes starting at addr, or nil if that range exceeds
// capacity. The returned slice aliases the underlying memory.
func (m *Bytes) Slice(addr, n uint) []byte {
	if addr+n > m.Cap() {
		return nil
	}
	return m.buf[addr : addr+n]
}

// CopyInto overwrites the memory's prefix with src, leaving the remainder
// untouched, reporting whether src fit within capacity.
func (m *Bytes) CopyInto(src []byte) bool {
	if uint(len(src)) > m.Cap() {
		return false
	}
	copy(m.buf, src)
	return true
}
