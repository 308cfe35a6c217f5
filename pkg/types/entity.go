package types

import "regexp"

// namePattern restricts entity, object, and animation names to characters
// that are safe inside scoreboard objectives and entity tags.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// ValidName reports whether s is a legal entity/object/animation name.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// Entity is a validated, tag-addressable animation target. Identity is by
// name; the transform state used for relative coordinates lives in the
// parser, not here.
type Entity struct {
	Name string
}

// NewEntity validates the name and wraps it.
func NewEntity(name string) (Entity, error) {
	if !ValidName(name) {
		return Entity{}, &InvalidNameError{Kind: "entity name", Name: name}
	}
	return Entity{Name: name}, nil
}

// EntityTypes are the summonable display-entity types accepted by spawn.
var EntityTypes = []string{"block_display", "item_display", "text_display"}

// ValidEntityType reports whether t is a summonable entity type.
func ValidEntityType(t string) bool {
	for _, known := range EntityTypes {
		if t == known {
			return true
		}
	}
	return false
}
