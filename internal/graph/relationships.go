package graph

import "fmt"

// CategoryUnknown labels citations that carried no usable category or
// explanation. Unknown edges are one-directional: no inverse edge is added.
const CategoryUnknown = "Unk"

// inverseRelationships maps each known citation relationship category to the
// label used on the reverse edge.
var inverseRelationships = map[string]string{
	"Supporting Evidence":       "Is Evidence For",
	"Methodological Basis":      "Is Methodological Basis For",
	"Theoretical Foundation":    "Is Theoretical Foundation For",
	"Data Source":               "Is Data Source For",
	"Extension or Continuation": "Is Extension or Continuation Of",
}

// InverseOf returns the reverse-edge label for a relationship category.
// Categories outside the registered set get an auto-generated inverse.
func InverseOf(category string) string {
	if inv, ok := inverseRelationships[category]; ok {
		return inv
	}
	return fmt.Sprintf("Is %s Of", category)
}

// KnownCategories returns the registered relationship categories.
func KnownCategories() []string {
	cats := make([]string, 0, len(inverseRelationships))
	for c := range inverseRelationships {
		cats = append(cats, c)
	}
	return cats
}
