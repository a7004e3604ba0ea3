package svgtheme

// Extract walks the document's rect elements followed by its circle
// elements, in document order within each kind, and returns the (id, fill)
// pair of every element that declares both attributes. Elements missing
// either attribute are dropped; if that loses a required identifier the
// validator reports it as missing.
//
// The returned sequence may contain duplicate identifiers. Consumers fold
// it front to back, so the last occurrence of an identifier wins.
func Extract(doc *Document) []RawEntry {
	if doc == nil {
		return nil
	}

	var entries []RawEntry
	for _, kind := range []ElementKind{ElementRect, ElementCircle} {
		for _, el := range doc.Elements {
			if el.Kind != kind {
				continue
			}
			id, ok := el.Attr("id")
			if !ok {
				continue
			}
			fill, ok := el.Attr("fill")
			if !ok {
				continue
			}
			entries = append(entries, RawEntry{ID: id, Fill: fill})
		}
	}
	return entries
}
