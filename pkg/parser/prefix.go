package parser

// Prefix marks the start of a named argument, as in n/John Doe
type Prefix string

const (
	PrefixName         Prefix = "n/"
	PrefixPhone        Prefix = "p/"
	PrefixEmail        Prefix = "e/"
	PrefixAddress      Prefix = "a/"
	PrefixRole         Prefix = "r/"
	PrefixSalary       Prefix = "s/"
	PrefixDateJoined   Prefix = "d/"
	PrefixProject      Prefix = "pr/"
	PrefixOrganisation Prefix = "o/"
	PrefixDocument     Prefix = "do/"
	PrefixDescription  Prefix = "dsc/"
	PrefixDeadline     Prefix = "dl/"
	PrefixPriority     Prefix = "pri/"
)

func (p Prefix) String() string { return string(p) }
