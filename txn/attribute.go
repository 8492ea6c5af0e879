package txn

import "strings"

// AttributeName is the part of an attribute's identity needed to key it in
// the archive.
type AttributeName interface {
	TangoHostWithDomain() string
	FullAttributeName() string
}

// Attribute is an already parsed attribute name.
type Attribute struct {
	Host   string // tango host, fully qualified
	Domain string
	Family string
	Member string
	Name   string
}

func (a Attribute) TangoHostWithDomain() string { return a.Host }

func (a Attribute) FullAttributeName() string {
	return strings.Join([]string{a.Domain, a.Family, a.Member, a.Name}, "/")
}

// AttrNameForStorage returns the key an attribute is stored under.
func AttrNameForStorage(a AttributeName) string {
	return "tango://" + a.TangoHostWithDomain() + "/" + a.FullAttributeName()
}
