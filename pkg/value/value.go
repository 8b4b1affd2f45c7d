// Package value holds the self-validating scalars that commands are built from.
// Every type can only be obtained through its Parse function, so a value that
// exists is a valid one.
package value

import (
	"errors"
	"regexp"
	"strings"
)

const (
	NameConstraints         = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints        = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints      = "Addresses can take any values, and it should not be blank"
	RoleConstraints         = "Roles should only contain alphanumeric characters and spaces, and it should not be blank"
	OrganisationConstraints = "Organisation names should only contain alphanumeric characters and spaces, and it should not be blank"
	DescriptionConstraints  = "Descriptions can take any values, and it should not be blank"
)

var (
	ErrInvalidName         = errors.New(NameConstraints)
	ErrInvalidPhone        = errors.New(PhoneConstraints)
	ErrInvalidAddress      = errors.New(AddressConstraints)
	ErrInvalidRole         = errors.New(RoleConstraints)
	ErrInvalidOrganisation = errors.New(OrganisationConstraints)
	ErrInvalidDescription  = errors.New(DescriptionConstraints)
)

var (
	words    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	digits   = regexp.MustCompile(`^\d{3,}$`)
	nonBlank = regexp.MustCompile(`^[^\s].*$`)
)

type Name struct{ s string }

func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !words.MatchString(s) {
		return Name{}, ErrInvalidName
	}
	return Name{s}, nil
}

func (n Name) String() string { return n.s }

// EqualFold compares names ignoring case, used for keyword search
func (n Name) EqualFold(other Name) bool { return strings.EqualFold(n.s, other.s) }

type Phone struct{ s string }

func ParsePhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !digits.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{s}, nil
}

func (p Phone) String() string { return p.s }

type Address struct{ s string }

func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !nonBlank.MatchString(s) {
		return Address{}, ErrInvalidAddress
	}
	return Address{s}, nil
}

func (a Address) String() string { return a.s }

type Role struct{ s string }

func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if !words.MatchString(s) {
		return Role{}, ErrInvalidRole
	}
	return Role{s}, nil
}

func (r Role) String() string { return r.s }

type Organisation struct{ s string }

func ParseOrganisation(s string) (Organisation, error) {
	s = strings.TrimSpace(s)
	if !words.MatchString(s) {
		return Organisation{}, ErrInvalidOrganisation
	}
	return Organisation{s}, nil
}

func (o Organisation) String() string { return o.s }

type Description struct{ s string }

func ParseDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if !nonBlank.MatchString(s) {
		return Description{}, ErrInvalidDescription
	}
	return Description{s}, nil
}

func (d Description) String() string { return d.s }
