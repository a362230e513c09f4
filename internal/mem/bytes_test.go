package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenthirty/ftth/internal/mem"
)

func Test_Bytes_cellRoundTrip(t *testing.T) {
	m := mem.NewBytes(16)
	assert.True(t, m.StoreCell(0, -1), "must store within capacity")
	assert.Equal(t, int32(-1), m.LoadCell(0))
	assert.Equal(t, byte(0xff), m.LoadByte(0), "expected two's complement low byte")
}

func Test_Bytes_addrRoundTrip(t *testing.T) {
	m := mem.NewBytes(16)
	assert.True(t, m.StoreAddr(4, 0x1234))
	assert.Equal(t, uint16(0x1234), m.LoadAddr(4))
}

func Test_Bytes_outOfRangeIsSilent(t *testing.T) {
	m := mem.NewBytes(4)
	assert.Equal(t, byte(0), m.LoadByte(100), "OOB load reads as zero")
	assert.False(t, m.StoreByte(100, 9), "OOB store is a no-op")
	assert.Equal(t, int32(0), m.LoadCell(100))
	assert.False(t, m.StoreCell(2, 1), "cell store straddling the end must fail")
}

func Test_Bytes_CheckCapacity(t *testing.T) {
	m := mem.NewBytes(8)
	require.NoError(t, m.CheckCapacity(8, "load"))
	err := m.CheckCapacity(9, "stor")
	require.Error(t, err)
	assert.Equal(t, mem.CapacityError{Addr: 9, Cap: 8, Op: "stor"}, err)
}

func Test_Bytes_sliceAndCopy(t *testing.T) {
	m := mem.NewBytes(4)
	require.True(t, m.CopyInto([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3, 0}, m.Slice(0, 4))
	assert.Nil(t, m.Slice(0, 5), "over-capacity slice must be nil")
}
