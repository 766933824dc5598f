package analyzer

// PrintSpan is a 32-bit aligned range of a structure labelled in dumps
type PrintSpan struct {
	StartBit int
	EndBit   int
	Fields   []*FieldSpec
}

// PrintSpans merges groups narrower than 32 bits with their successors so
// every span covers a whole number of 32-bit words. A trailing span that never
// reaches 32 bits is still returned.
func PrintSpans(groups []*Group) []PrintSpan {
	var (
		spans []PrintSpan
		cur   *PrintSpan
	)

	for _, g := range groups {
		if cur == nil {
			cur = &PrintSpan{StartBit: g.BitOffset(), EndBit: g.BitOffset()}
		}
		cur.EndBit += g.Bits()
		cur.Fields = append(cur.Fields, g.Fields...)

		if cur.EndBit-cur.StartBit >= 32 {
			spans = append(spans, *cur)
			cur = nil
		}
	}

	if cur != nil {
		spans = append(spans, *cur)
	}
	return spans
}
