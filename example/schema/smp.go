//go:build ignore

package schema

// @layout bytes=16 desc="Port Information" sect=14.2.5.6 mgmtClass=0x01 mgmtClassVersion=0x01 attributeID=0x15 methods=SubnGet,SubnSet
type PortInfo struct {
	MKey               uint64   `layout:"@0"`
	LID                uint16   `layout:"@8"`
	LinkWidthEnabled   uint8    `layout:"@10"`
	LinkWidthSupported uint8    `layout:"@11"`
	PortState          uint8    `layout:"@12,bits=4"`
	PortPhysState      uint8    `layout:"@12[4],bits=4"`
	VLCap              [2]uint8 `layout:"@13,bits=4"`
	NeighborMTU        uint8    `layout:"@14,bits=4"`
	MasterSMSL         uint8    `layout:"@14[4],bits=4"`
	VLHighLimit        uint8    `layout:"@15"`
}
