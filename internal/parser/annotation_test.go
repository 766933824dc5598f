package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		comment string
		want    *TypeAnnotation
		wantErr bool
	}{
		{"@layout bytes=24", &TypeAnnotation{Bytes: 24}, false},
		{`@layout bytes=24 desc="MAD Base Header" sect=13.4.3`,
			&TypeAnnotation{Bytes: 24, Desc: "MAD Base Header", Section: "13.4.3"}, false},
		{"@layout sect=14.2.5.6 bytes=64", &TypeAnnotation{Bytes: 64, Section: "14.2.5.6"}, false}, // order doesn't matter
		{"@layout bytes=64 mgmtClass=0x01 mgmtClassVersion=1 attributeID=0x15 methods=SubnGet,SubnSet",
			&TypeAnnotation{
				Bytes:            64,
				MgmtClass:        "0x01",
				MgmtClassVersion: "1",
				AttributeID:      "0x15",
				Methods:          []string{"SubnGet", "SubnSet"},
			}, false},
		{"@layout bytes=8 containerName=Outer", &TypeAnnotation{Bytes: 8, Container: "Outer"}, false},

		// Error cases
		{"", nil, true},                           // no annotation
		{"bytes=24", nil, true},                   // missing @layout
		{"@layout", nil, true},                    // bytes required
		{"@layout desc=x", nil, true},             // bytes required
		{"@layout bytes=abc", nil, true},          // non-numeric size
		{"@layout bytes=-1", nil, true},           // negative size
		{"@layout bytes=0", nil, true},            // zero size
		{"@layout bytes=24 unknown=bar", nil, true}, // unknown param
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			got, err := ParseAnnotation(tt.comment)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindAnnotation(t *testing.T) {
	anno, found, err := FindAnnotation([]string{"PortInfo is the SMP port record.", "@layout bytes=64"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 64, anno.Bytes)

	_, found, err = FindAnnotation([]string{"no annotation here"})
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = FindAnnotation([]string{"@layout bytes=zero"})
	assert.True(t, found)
	assert.Error(t, err)
}

func TestCleanComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"// @layout bytes=24", "@layout bytes=24"},
		{"//@layout bytes=24", "@layout bytes=24"},
		{"/* @layout bytes=24 */", "@layout bytes=24"},
		{"  plain text  ", "plain text"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanComment(tt.in))
	}
}
