package testdata

// @layout bytes=24 desc="MAD Base Header" sect=13.4.3
type MADHeader struct {
	BaseVersion       uint8  `layout:"@0"`
	MgmtClass         uint8  `layout:"@1"`
	ClassVersion      uint8  `layout:"@2"`
	Method            uint8  `layout:"@3"`
	Status            uint16 `layout:"@4"`
	ClassSpecific     uint16 `layout:"@6"`
	TransactionID     uint64 `layout:"@8"`
	AttributeID       uint16 `layout:"@16"`
	_                 uint16 `layout:"@18"`
	AttributeModifier uint32 `layout:"@20"`
}

// @layout bytes=8 mgmtClass=0x01 attributeID=0x0020 methods=SubnGet,SubnSet
type LinkFlags struct {
	State   uint8     `layout:"@0,bits=4"`
	Phys    uint8     `layout:"@0[4],bits=4"`
	Lanes   [4]uint8  `layout:"@1,bits=2"`
	_       uint16    `layout:"@2"`
	Address [4]byte   `layout:"@4,type=opaque"`
}

// @layout bytes=32
type Wrapper struct {
	Header MADHeader `layout:"@0,bits=192"`
	Tail   LinkFlags `layout:"@24"`
}

// No annotation - should be skipped
type IgnoredType struct {
	Field uint32 `layout:"@0"`
}
