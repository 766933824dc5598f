package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TypeAnnotation holds the structure-level schema attributes
type TypeAnnotation struct {
	Bytes            int      // Fixed structure size in bytes
	Desc             string   // Human readable description
	Section          string   // Specification section reference (optional)
	MgmtClass        string   // Management class code, e.g. "0x01" (optional)
	MgmtClassVersion string   // Management class version (optional)
	AttributeID      string   // Attribute id, e.g. "0x0015" (optional)
	Methods          []string // Supported method names, e.g. SubnGet (optional)
	Container        string   // Non-empty for container-only structures
}

var (
	annotationRe = regexp.MustCompile(`@layout(?:\s+(.+))?`)
	pairRe       = regexp.MustCompile(`(\w+)=("[^"]*"|\S+)`)
)

// ParseAnnotation parses @layout annotation from comment text
//
// Expected format:
//
//	// @layout bytes=24
//	// @layout bytes=24 desc="MAD Base Header" sect=13.4.3
//	// @layout bytes=64 mgmtClass=0x01 mgmtClassVersion=1 attributeID=0x15 methods=SubnGet,SubnSet
//
// Params are space-separated key=value pairs; values containing spaces must be
// double-quoted. bytes is required.
func ParseAnnotation(comment string) (*TypeAnnotation, error) {
	matches := annotationRe.FindStringSubmatch(comment)
	if matches == nil {
		return nil, fmt.Errorf("no @layout annotation found")
	}
	if matches[1] == "" {
		return nil, fmt.Errorf("@layout requires bytes=N")
	}
	return parseLayoutParams(matches[1])
}

func parseLayoutParams(params string) (*TypeAnnotation, error) {
	anno := &TypeAnnotation{}

	for _, pair := range pairRe.FindAllStringSubmatch(params, -1) {
		key := pair[1]
		value := strings.Trim(pair[2], `"`)

		switch key {
		case "bytes":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid bytes: %s", value)
			}
			if n <= 0 {
				return nil, fmt.Errorf("bytes must be positive, got: %d", n)
			}
			anno.Bytes = n
		case "desc":
			anno.Desc = value
		case "sect":
			anno.Section = value
		case "mgmtClass":
			anno.MgmtClass = value
		case "mgmtClassVersion":
			anno.MgmtClassVersion = value
		case "attributeID":
			anno.AttributeID = value
		case "methods":
			anno.Methods = strings.Split(value, ",")
		case "containerName":
			anno.Container = value
		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	if anno.Bytes == 0 {
		return nil, fmt.Errorf("@layout requires bytes=N")
	}
	return anno, nil
}

// FindAnnotation searches comment lines for @layout annotation
// Returns the annotation, whether a @layout line was present, and any parse error
func FindAnnotation(comments []string) (*TypeAnnotation, bool, error) {
	for _, comment := range comments {
		if !strings.HasPrefix(comment, "@layout") {
			continue
		}
		anno, err := ParseAnnotation(comment)
		return anno, true, err
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @layout bytes=24" → "@layout bytes=24"
// "/* @layout bytes=24 */" → "@layout bytes=24"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "//") {
		return strings.TrimSpace(strings.TrimPrefix(line, "//"))
	}

	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		return strings.TrimSpace(line)
	}

	return line
}
