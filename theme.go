package svgtheme

// Build copies the nine validated colors into their named slots. It assumes
// the mapping already passed Validate; given an incomplete mapping the
// missing slots are zero-valued, so callers must always validate first.
func Build(colors map[string]RGB) Theme {
	return Theme{
		Background: colors["background"],
		FHigh:      colors["f_high"],
		FMed:       colors["f_med"],
		FLow:       colors["f_low"],
		FInv:       colors["f_inv"],
		BHigh:      colors["b_high"],
		BMed:       colors["b_med"],
		BLow:       colors["b_low"],
		BInv:       colors["b_inv"],
	}
}

// Slot returns the color held in the slot named by a required identifier.
// Unknown identifiers return the zero color.
func (t Theme) Slot(id string) RGB {
	switch id {
	case "background":
		return t.Background
	case "f_high":
		return t.FHigh
	case "f_med":
		return t.FMed
	case "f_low":
		return t.FLow
	case "f_inv":
		return t.FInv
	case "b_high":
		return t.BHigh
	case "b_med":
		return t.BMed
	case "b_low":
		return t.BLow
	case "b_inv":
		return t.BInv
	default:
		return RGB{}
	}
}

// Decode converts a parsed document into a Theme. It returns either a
// complete Theme or a single ValidationError naming one offending
// identifier; no partial Theme is ever returned.
func Decode(doc *Document) (Theme, error) {
	colors, err := Validate(Extract(doc))
	if err != nil {
		return Theme{}, err
	}
	return Build(colors), nil
}
