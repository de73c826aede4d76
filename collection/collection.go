package collection

import "strings"

// Tag is the coarse men/women classification attached to order lines for
// downstream reporting. It is heuristically derived, never authoritative.
type Tag string

const (
	Men   Tag = "men"
	Women Tag = "women"
	None  Tag = ""
)

// Meta carries every product field the heuristic may look at. Zero values
// are simply skipped.
type Meta struct {
	Collection string
	Gender     string
	Category   string
	Name       string
	Title      string
}

// Normalize maps heterogeneous product metadata to a Tag. First match wins:
// explicit collection field, then gender field, then substring match against
// category, name, and title. Returns None when nothing matches; never fails.
func Normalize(meta Meta) Tag {
	if t := fromExplicit(meta.Collection); t != None {
		return t
	}
	if t := fromExplicit(meta.Gender); t != None {
		return t
	}
	for _, text := range []string{meta.Category, meta.Name, meta.Title} {
		if t := fromText(text); t != None {
			return t
		}
	}
	return None
}

func fromExplicit(v string) Tag {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "men", "male":
		return Men
	case "women", "female":
		return Women
	}
	return None
}

// "women" must be checked first: every occurrence of "women" also
// contains "men".
func fromText(v string) Tag {
	s := strings.ToLower(v)
	if strings.Contains(s, "women") {
		return Women
	}
	if strings.Contains(s, "men") {
		return Men
	}
	return None
}
