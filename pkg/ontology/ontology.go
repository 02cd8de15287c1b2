package ontology

import "fmt"

// EntityType is the label of a node in the care knowledge graph.
type EntityType string

const (
	InsuranceProduct EntityType = "InsuranceProduct"
	Disease          EntityType = "Disease"
	Drug             EntityType = "Drug"
	Department       EntityType = "Department"
	NursingHome      EntityType = "NursingHome"
	Service          EntityType = "Service"
	Location         EntityType = "Location"
)

// RelationType is the label of a directed edge in the care knowledge graph.
type RelationType string

const (
	CoversDisease        RelationType = "COVERS_DISEASE"        // InsuranceProduct -> Disease
	ApplicableAge        RelationType = "APPLICABLE_AGE"        // InsuranceProduct -> age range
	RequiresUnderwriting RelationType = "REQUIRES_UNDERWRITING" // InsuranceProduct -> Disease
	Treats               RelationType = "TREATS"                // Drug -> Disease
	BelongsTo            RelationType = "BELONGS_TO"            // Disease -> Department
	HasComplication      RelationType = "HAS_COMPLICATION"      // Disease -> Disease
	LocatedIn            RelationType = "LOCATED_IN"            // NursingHome -> Location
	ProvidesService      RelationType = "PROVIDES_SERVICE"      // NursingHome -> Service
)

var entityTypes = []EntityType{
	InsuranceProduct,
	Disease,
	Drug,
	Department,
	NursingHome,
	Service,
	Location,
}

var relationTypes = []RelationType{
	CoversDisease,
	ApplicableAge,
	RequiresUnderwriting,
	Treats,
	BelongsTo,
	HasComplication,
	LocatedIn,
	ProvidesService,
}

// EntityTypes returns every known entity type in declaration order.
func EntityTypes() []EntityType {
	out := make([]EntityType, len(entityTypes))
	copy(out, entityTypes)
	return out
}

// RelationTypes returns every known relation type in declaration order.
func RelationTypes() []RelationType {
	out := make([]RelationType, len(relationTypes))
	copy(out, relationTypes)
	return out
}

// Valid reports whether t belongs to the closed entity type set.
func (t EntityType) Valid() bool {
	_, ok := ParseEntityType(string(t))
	return ok
}

// Valid reports whether r belongs to the closed relation type set.
func (r RelationType) Valid() bool {
	_, ok := ParseRelationType(string(r))
	return ok
}

// ParseEntityType looks up an entity type by its canonical name.
func ParseEntityType(name string) (EntityType, bool) {
	for _, t := range entityTypes {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// ParseRelationType looks up a relation type by its canonical name.
func ParseRelationType(name string) (RelationType, bool) {
	for _, r := range relationTypes {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

// MustEntityType returns the entity type for name and panics if the name is
// not part of the ontology. Asking for an unknown tag is a programming error.
func MustEntityType(name string) EntityType {
	t, ok := ParseEntityType(name)
	if !ok {
		panic(fmt.Sprintf("ontology: unknown entity type %q", name))
	}
	return t
}

// MustRelationType returns the relation type for name and panics if the name
// is not part of the ontology.
func MustRelationType(name string) RelationType {
	r, ok := ParseRelationType(name)
	if !ok {
		panic(fmt.Sprintf("ontology: unknown relation type %q", name))
	}
	return r
}
