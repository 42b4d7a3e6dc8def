package model

import "strings"

// Name is a person's first and family name.
// Empty strings mean "unset"; neither field is ever nil.
type Name struct {
	firstName  string
	familyName string
}

// NewName creates a Name from its parts
func NewName(firstName, familyName string) Name {
	return Name{
		firstName:  firstName,
		familyName: familyName,
	}
}

// FirstName returns the first name
func (n Name) FirstName() string {
	return n.firstName
}

// FamilyName returns the family name
func (n Name) FamilyName() string {
	return n.familyName
}

// SetFirstName replaces the first name without validation
func (n *Name) SetFirstName(firstName string) {
	n.firstName = firstName
}

// SetFamilyName replaces the family name without validation
func (n *Name) SetFamilyName(familyName string) {
	n.familyName = familyName
}

// FullName joins first and family name with a single space.
// Returns "" only when both parts are empty; a single empty part still
// produces the separating space.
func (n Name) FullName() string {
	if n.firstName == "" && n.familyName == "" {
		return ""
	}
	return n.firstName + " " + n.familyName
}

// Equal reports whether both parts match exactly
func (n Name) Equal(other Name) bool {
	return n.familyName == other.familyName && n.firstName == other.firstName
}

// Compare orders names by family name, then first name
func (n Name) Compare(other Name) int {
	if c := strings.Compare(n.familyName, other.familyName); c != 0 {
		return c
	}
	return strings.Compare(n.firstName, other.firstName)
}

func (n Name) String() string {
	return "Name:[firstName=" + n.firstName + ", familyName=" + n.familyName + "]"
}
