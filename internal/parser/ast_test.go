package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_GoSource(t *testing.T) {
	types, err := ParseFile("testdata/simple.go")
	require.NoError(t, err)

	// IgnoredType has no @layout annotation
	require.Len(t, types, 3)

	mad := types[0]
	assert.Equal(t, "MADHeader", mad.Name)
	assert.Equal(t, 24, mad.Anno.Bytes)
	assert.Equal(t, "MAD Base Header", mad.Anno.Desc)
	assert.Equal(t, "13.4.3", mad.Anno.Section)
	require.Len(t, mad.Fields, 10)

	f0 := mad.Fields[0]
	assert.Equal(t, "BaseVersion", f0.Name)
	assert.Equal(t, "uint8", f0.GoType)
	assert.Equal(t, &FieldLayout{Offset: "0", Bits: 8}, f0.Layout)

	assert.Equal(t, 64, mad.Fields[6].Layout.Bits)

	reserved := mad.Fields[8]
	assert.Empty(t, reserved.Name, "_ fields are reserved padding")
	assert.Equal(t, 16, reserved.Layout.Bits)

	flags := types[1]
	assert.Equal(t, []string{"SubnGet", "SubnSet"}, flags.Anno.Methods)
	assert.Equal(t, "0x01", flags.Anno.MgmtClass)
	assert.Equal(t, &FieldLayout{Offset: "0", Bits: 4}, flags.Fields[0].Layout)
	assert.Equal(t, &FieldLayout{Offset: "0[4]", Bits: 4}, flags.Fields[1].Layout)
	assert.Equal(t, &FieldLayout{Offset: "1", Bits: 2, Count: 4}, flags.Fields[2].Layout)
	assert.Equal(t, &FieldLayout{Offset: "4", Bits: 32, Type: "opaque"}, flags.Fields[4].Layout)

	wrapper := types[2]
	assert.Equal(t, &FieldLayout{Offset: "0", Bits: 192, Type: "struct MADHeader"}, wrapper.Fields[0].Layout)
	assert.Equal(t, &FieldLayout{Offset: "24", Type: "struct LinkFlags"}, wrapper.Fields[1].Layout)
}

func TestParseFile_YAML(t *testing.T) {
	types, err := ParseFile("testdata/simple.yaml")
	require.NoError(t, err)
	require.Len(t, types, 3)

	mad := types[0]
	assert.Equal(t, "MADHeader", mad.Name)
	assert.Equal(t, 24, mad.Anno.Bytes)
	require.Len(t, mad.Fields, 10)
	assert.Equal(t, "baseVersion", mad.Fields[0].Name)
	assert.Empty(t, mad.Fields[8].Name)

	pi := types[1]
	assert.Equal(t, "0x0015", pi.Anno.AttributeID)
	assert.Equal(t, &FieldLayout{Offset: "1", Bits: 2, Count: 4}, pi.Fields[2].Layout)
	assert.Equal(t, "opaque", pi.Fields[4].Layout.Type)

	assert.Equal(t, "SMPPortInfo", types[2].Anno.Container)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      string
	}{
		{"unknown extension", "schema.xml", "<structs/>"},
		{"unknown yaml key", "s.yaml", "structs:\n  - name: A\n    bytes: 4\n    size: 4\n"},
		{"yaml missing bytes", "s.yaml", "structs:\n  - name: A\n"},
		{"yaml missing off", "s.yaml", "structs:\n  - name: A\n    bytes: 4\n    fields:\n      - {name: a, bits: 32}\n"},
		{"go bad tag", "s.go", "package p\n// @layout bytes=4\ntype A struct {\n\tX uint32 `layout:\"@x\"`\n}\n"},
		{"go annotation without bytes", "s.go", "package p\n// @layout desc=x\ntype A struct {\n\tX uint32 `layout:\"@0\"`\n}\n"},
		{"go pointer field", "s.go", "package p\n// @layout bytes=8\ntype A struct {\n\tX *B `layout:\"@0\"`\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.filename, []byte(tt.src))
			assert.Error(t, err)
		})
	}
}
