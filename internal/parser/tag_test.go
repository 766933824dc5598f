package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    *FieldLayout
		wantErr bool
	}{
		{"@0", &FieldLayout{Offset: "0"}, false},
		{"@4,bits=16", &FieldLayout{Offset: "4", Bits: 16}, false},
		{"@4[3],bits=5", &FieldLayout{Offset: "4[3]", Bits: 5}, false},
		{"@8,bits=16,count=4", &FieldLayout{Offset: "8", Bits: 16, Count: 4}, false},
		{"@16,bits=128,type=address", &FieldLayout{Offset: "16", Bits: 128, Type: "address"}, false},
		{"@0,type=struct PortInfo", &FieldLayout{Offset: "0", Type: "struct PortInfo"}, false},

		// Error cases
		{"", nil, true},               // empty
		{"@", nil, true},              // no offset number
		{"@abc", nil, true},           // non-numeric offset
		{"bits=8", nil, true},         // missing offset
		{"@0[8]", nil, true},          // sub-byte bit out of range
		{"@0,bits=0", nil, true},      // zero width
		{"@0,bits=x", nil, true},      // non-numeric width
		{"@0,count=0", nil, true},     // zero count
		{"@0,type=", nil, true},       // empty type
		{"@0,bits", nil, true},        // missing value
		{"@0,unknown=foo", nil, true}, // unknown param
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseTag(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		expr    string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"1", 8, false},
		{"24", 192, false},
		{"4[3]", 35, false},
		{"0[7]", 7, false},
		{" 2 ", 16, false},

		{"", 0, true},
		{"-1", 0, true},
		{"4[8]", 0, true},
		{"4[", 0, true},
		{"[3]", 0, true},
		{"0x10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseOffset(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
