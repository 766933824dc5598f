package parser

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the top level of a YAML schema file
type Document struct {
	Structs []StructDoc `yaml:"structs" jsonschema:"required"`
}

// StructDoc is one structure of a YAML schema
type StructDoc struct {
	Name             string     `yaml:"name" jsonschema:"required,description=Go type name"`
	Bytes            int        `yaml:"bytes" jsonschema:"required,minimum=1,description=Fixed wire size in bytes"`
	Desc             string     `yaml:"desc,omitempty"`
	Sect             string     `yaml:"sect,omitempty" jsonschema:"description=Specification section reference"`
	MgmtClass        string     `yaml:"mgmtClass,omitempty" jsonschema:"example=0x01"`
	MgmtClassVersion string     `yaml:"mgmtClassVersion,omitempty"`
	AttributeID      string     `yaml:"attributeID,omitempty" jsonschema:"example=0x0015"`
	Methods          []string   `yaml:"methods,omitempty" jsonschema:"description=Method names such as SubnGet or SubnAdmGetTable"`
	ContainerName    string     `yaml:"containerName,omitempty" jsonschema:"description=Marks a container-only structure that is not generated"`
	Fields           []FieldDoc `yaml:"fields,omitempty"`
}

// FieldDoc is one field of a StructDoc. An empty name declares reserved padding.
type FieldDoc struct {
	Name  string `yaml:"name,omitempty"`
	Bits  int    `yaml:"bits,omitempty" jsonschema:"minimum=1,description=Element width in bits"`
	Count int    `yaml:"count,omitempty" jsonschema:"minimum=0,description=Element count; 0 means 1"`
	Off   string `yaml:"off" jsonschema:"required,pattern=^[0-9]+(\\[[0-7]\\])?$,description=Byte offset or byte[bit] with bit 0 most significant"`
	Type  string `yaml:"type,omitempty" jsonschema:"description=uint or opaque or address or struct Name"`
}

// parseYAML decodes a YAML schema document:
//
//	structs:
//	  - name: MADHeader
//	    bytes: 24
//	    desc: MAD Base Header
//	    sect: 13.4.3
//	    fields:
//	      - {name: baseVersion, bits: 8, off: "0"}
//	      - {bits: 8, off: "1[0]"}   # reserved
//
// Unknown keys are rejected so typos in a schema fail loudly.
func parseYAML(data []byte) ([]*TypeLayout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}

	types := make([]*TypeLayout, 0, len(doc.Structs))
	for i, s := range doc.Structs {
		if s.Name == "" {
			return nil, fmt.Errorf("structs[%d]: missing name", i)
		}
		if s.Bytes <= 0 {
			return nil, fmt.Errorf("%s: bytes must be positive, got: %d", s.Name, s.Bytes)
		}

		t := &TypeLayout{
			Name: s.Name,
			Anno: &TypeAnnotation{
				Bytes:            s.Bytes,
				Desc:             s.Desc,
				Section:          s.Sect,
				MgmtClass:        s.MgmtClass,
				MgmtClassVersion: s.MgmtClassVersion,
				AttributeID:      s.AttributeID,
				Methods:          s.Methods,
				Container:        s.ContainerName,
			},
		}

		for j, f := range s.Fields {
			if f.Off == "" {
				return nil, fmt.Errorf("%s: fields[%d]: missing off", s.Name, j)
			}
			if f.Count < 0 {
				return nil, fmt.Errorf("%s: fields[%d]: invalid count: %d", s.Name, j, f.Count)
			}
			t.Fields = append(t.Fields, Field{
				Name: f.Name,
				Layout: &FieldLayout{
					Offset: f.Off,
					Bits:   f.Bits,
					Count:  f.Count,
					Type:   f.Type,
				},
			})
		}

		types = append(types, t)
	}

	return types, nil
}
