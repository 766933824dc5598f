package analyzer

import (
	"strconv"

	"github.com/alexhholmes/bitlayout/internal/errors"
	"github.com/alexhholmes/bitlayout/internal/parser"
)

// MAD method codes
const (
	MethodGet           uint8 = 0x01
	MethodSet           uint8 = 0x02
	MethodSend          uint8 = 0x03
	MethodTrap          uint8 = 0x05
	MethodGetTable      uint8 = 0x12
	MethodGetTraceTable uint8 = 0x13
	MethodGetMulti      uint8 = 0x14
	MethodDelete        uint8 = 0x15
)

// Method is one supported operation of a management attribute
type Method struct {
	Name   string // schema name, e.g. SubnGet
	Code   uint8
	Symbol string // protocol constant name, e.g. MAD_METHOD_GET
}

// ProtocolInfo is management-protocol metadata carried through to the
// generated code unchanged
type ProtocolInfo struct {
	HasClass         bool
	MgmtClass        uint8
	MgmtClassVersion uint8
	HasAttributeID   bool
	AttributeID      uint16
	Methods          []Method
}

var methodMap = buildMethodMap()

func buildMethodMap() map[string]Method {
	suffixes := []struct {
		name   string
		code   uint8
		symbol string
	}{
		{"Get", MethodGet, "MAD_METHOD_GET"},
		{"Set", MethodSet, "MAD_METHOD_SET"},
		{"Send", MethodSend, "MAD_METHOD_SEND"},
		{"Trap", MethodTrap, "MAD_METHOD_TRAP"},
		{"Delete", MethodDelete, "MAD_METHOD_DELETE"},
		{"GetTable", MethodGetTable, "MAD_METHOD_GET_TABLE"},
		{"GetTraceTable", MethodGetTraceTable, "MAD_METHOD_GET_TRACE_TABLE"},
		{"GetMulti", MethodGetMulti, "MAD_METHOD_GET_MULTI"},
	}

	m := make(map[string]Method)
	for _, prefix := range []string{"Subn", "CommMgt", "Performance", "BM", "DevMgt", "SubnAdm", "SNMP"} {
		for _, s := range suffixes {
			name := prefix + s.name
			m[name] = Method{Name: name, Code: s.code, Symbol: s.symbol}
		}
	}
	return m
}

// LookupMethod resolves a schema method name such as SubnAdmGetTable
func LookupMethod(name string) (Method, bool) {
	m, ok := methodMap[name]
	return m, ok
}

func protocolInfo(structName string, anno *parser.TypeAnnotation) (*ProtocolInfo, error) {
	if anno.MgmtClass == "" && anno.AttributeID == "" && len(anno.Methods) == 0 {
		return nil, nil
	}

	p := &ProtocolInfo{}
	if anno.MgmtClass != "" {
		class, err := strconv.ParseUint(anno.MgmtClass, 0, 8)
		if err != nil {
			return nil, errors.Schema(structName, "", errors.KindSyntax, "invalid mgmtClass %q", anno.MgmtClass)
		}
		p.HasClass = true
		p.MgmtClass = uint8(class)

		if anno.MgmtClassVersion != "" {
			version, err := strconv.ParseUint(anno.MgmtClassVersion, 0, 8)
			if err != nil {
				return nil, errors.Schema(structName, "", errors.KindSyntax,
					"invalid mgmtClassVersion %q", anno.MgmtClassVersion)
			}
			p.MgmtClassVersion = uint8(version)
		}
	}

	if anno.AttributeID != "" {
		id, err := strconv.ParseUint(anno.AttributeID, 0, 16)
		if err != nil {
			return nil, errors.Schema(structName, "", errors.KindSyntax, "invalid attributeID %q", anno.AttributeID)
		}
		p.HasAttributeID = true
		p.AttributeID = uint16(id)
	}

	for _, name := range anno.Methods {
		m, ok := LookupMethod(name)
		if !ok {
			return nil, errors.Schema(structName, "", errors.KindUnknownMethod, "unknown method %q", name)
		}
		p.Methods = append(p.Methods, m)
	}

	return p, nil
}
