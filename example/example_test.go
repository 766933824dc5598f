package example_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/bitlayout/binstruct"
	"github.com/alexhholmes/bitlayout/example"
)

func TestMADHeader_Wire(t *testing.T) {
	h := example.MADHeader{
		BaseVersion:  1,
		MgmtClass:    0x81,
		ClassVersion: 1,
		R:            1,
		Method:       0x7f,
		Status:       0x001c,
		TranID:       0x0102030405060708,
		AttrID:       0x0015,
		AttrMod:      0xdeadbeef,
	}

	buf := make([]byte, example.MADHeaderSize)
	h.PackInto(buf, 0)
	assert.Equal(t, []byte{
		0x01, 0x81, 0x01, 0xff,
		0x00, 0x1c, 0x00, 0x00,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x00, 0x15, 0x00, 0x00,
		0xde, 0xad, 0xbe, 0xef,
	}, buf)

	var got example.MADHeader
	got.UnpackFrom(buf, 0)
	assert.Equal(t, h, got)
}

func TestMADHeader_Truncates(t *testing.T) {
	h := example.MADHeader{R: 2, Method: 0xff}

	buf := make([]byte, example.MADHeaderSize)
	h.PackInto(buf, 0)
	assert.Equal(t, byte(0x7f), buf[3])

	var got example.MADHeader
	got.UnpackFrom(buf, 0)
	assert.Equal(t, uint8(0), got.R)
	assert.Equal(t, uint8(0x7f), got.Method)
}

func TestPortInfo_Wire(t *testing.T) {
	p := example.PortInfo{
		MKey:               0x0102030405060708,
		LID:                0x0bad,
		LinkWidthEnabled:   3,
		LinkWidthSupported: 0x13,
		PortState:          4,
		PortPhysState:      5,
		VLCap:              [2]byte{2, 3},
		NeighborMTU:        5,
		MasterSMSL:         0xa,
		VLHighLimit:        8,
	}

	buf := make([]byte, example.PortInfoSize)
	p.PackInto(buf, 0)
	assert.Equal(t, []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x0b, 0xad, 0x03, 0x13,
		0x45, 0x23, 0x5a, 0x08,
	}, buf)

	var got example.PortInfo
	got.UnpackFrom(buf, 0)
	assert.Equal(t, p, got)

	assert.Equal(t, 0x01, example.PortInfoMgmtClass)
	assert.Equal(t, 0x0015, example.PortInfoAttributeID)
	assert.Equal(t, 0x02, example.PortInfoMethodSubnSet)
}

func TestPathRecord_NestedAtOffset(t *testing.T) {
	r := example.PathRecord{
		Header:      example.MADHeader{BaseVersion: 1, MgmtClass: 0x03, ClassVersion: 2, Method: 0x12},
		ServiceData: [4]byte{0xca, 0xfe, 0xf0, 0x0d},
		Sl:          [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	r.Dgid[15] = 0x01
	r.Sgid[0] = 0xfe

	// pack past a leading pad to exercise non-zero offsets
	const pad = 8
	buf := make([]byte, pad+example.PathRecordSize)
	r.PackInto(buf, pad)

	assert.Equal(t, []byte{0x01, 0x03, 0x02, 0x12}, buf[pad:pad+4])
	assert.Equal(t, byte(0x01), buf[pad+39])
	assert.Equal(t, byte(0xfe), buf[pad+40])
	assert.Equal(t, []byte{0xca, 0xfe, 0xf0, 0x0d}, buf[pad+56:pad+60])
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf[pad+60:pad+64])

	var got example.PathRecord
	got.UnpackFrom(buf, pad)
	assert.Equal(t, r, got)
}

func TestStructs_Interface(t *testing.T) {
	structs := []binstruct.Struct{&example.MADHeader{}, &example.PathRecord{}, &example.PortInfo{}}
	sizes := []int{24, 64, 16}
	for i, s := range structs {
		require.Equal(t, sizes[i], s.Size())
	}
}

func ExampleMADHeader_Printer() {
	h := example.MADHeader{
		BaseVersion:  1,
		MgmtClass:    0x81,
		ClassVersion: 1,
		Method:       3,
		TranID:       0x1234,
		AttrID:       0x0015,
	}
	_ = h.Printer(os.Stdout, 0)
	// Output:
	// MADHeader
	//   0000: 01 81 01 03  baseVersion=1,mgmtClass=129,classVersion=1,r=0,method=3
	//   0004: 00 00 00 00  status=0,classSpecific=0
	//   0008: 00 00 00 00  tranID=4660
	//   000c: 00 00 12 34
	//   0010: 00 15 00 00  attrID=21,reserved1=0
	//   0014: 00 00 00 00  attrMod=0
}
