package types

import (
	"fmt"
	"strings"
)

// Medium is the type of object a Content refers to.
type Medium int

const (
	MediumImage Medium = iota + 1
	MediumAudio
	MediumVideo
	MediumDocument
	MediumExecutable
)

var mediumNames = []string{"image", "audio", "video", "document", "executable"}

func (m Medium) String() string {
	return enumName(m, mediumNames)
}

// ParseMedium returns the Medium with the given name, ignoring case.
func ParseMedium(s string) (Medium, error) {
	return parseEnum[Medium]("medium", s, mediumNames)
}

// Expression tells whether a Content is a sample or the full version of the object, or a continuous stream.
type Expression int

const (
	ExpressionSample Expression = iota + 1
	ExpressionFull
	ExpressionNonstop
)

var expressionNames = []string{"sample", "full", "nonstop"}

func (e Expression) String() string {
	return enumName(e, expressionNames)
}

// ParseExpression returns the Expression with the given name, ignoring case.
func ParseExpression(s string) (Expression, error) {
	return parseEnum[Expression]("expression", s, expressionNames)
}

// PriceType is the kind of offer a Price describes.
type PriceType int

const (
	PriceRent PriceType = iota + 1
	PricePurchase
	PricePackage
	PriceSubscription
)

var priceTypeNames = []string{"rent", "purchase", "package", "subscription"}

func (p PriceType) String() string {
	return enumName(p, priceTypeNames)
}

// ParsePriceType returns the PriceType with the given name, ignoring case.
func ParsePriceType(s string) (PriceType, error) {
	return parseEnum[PriceType]("price type", s, priceTypeNames)
}

// Relationship tells whether a Restriction allows or denies access.
type Relationship int

const (
	RelationshipAllow Relationship = iota + 1
	RelationshipDeny
)

var relationshipNames = []string{"allow", "deny"}

func (r Relationship) String() string {
	return enumName(r, relationshipNames)
}

// ParseRelationship returns the Relationship with the given name, ignoring case.
func ParseRelationship(s string) (Relationship, error) {
	return parseEnum[Relationship]("relationship", s, relationshipNames)
}

// RestrictionType is what the value of a Restriction is matched against.
type RestrictionType int

const (
	RestrictionCountry RestrictionType = iota + 1
	RestrictionURI
	RestrictionSharing
)

var restrictionTypeNames = []string{"country", "uri", "sharing"}

func (r RestrictionType) String() string {
	return enumName(r, restrictionTypeNames)
}

// ParseRestrictionType returns the RestrictionType with the given name, ignoring case.
func ParseRestrictionType(s string) (RestrictionType, error) {
	return parseEnum[RestrictionType]("restriction type", s, restrictionTypeNames)
}

// State is the availability of a media object, see Status.
type State int

const (
	StateActive State = iota + 1
	StateBlocked
	StateRestricted
	StateDeleted
)

var stateNames = []string{"active", "blocked", "restricted", "deleted"}

func (s State) String() string {
	return enumName(s, stateNames)
}

// ParseState returns the State with the given name, ignoring case.
func ParseState(s string) (State, error) {
	return parseEnum[State]("state", s, stateNames)
}

func enumName[E ~int](e E, names []string) string {
	if e < 1 || int(e) > len(names) {
		return fmt.Sprintf("unknown(%d)", int(e))
	}
	return names[e-1]
}

func parseEnum[E ~int](what, s string, names []string) (E, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if v == name {
			return E(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrMalformed, what, s)
}
