package parser

import (
	"strings"

	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/value"
)

// fields parses prefix values in the order they are asked for and keeps
// only the first failure.
type fields struct {
	am    ArgumentMultimap
	usage string
	err   error
}

func (f *fields) fail(err error) {
	if f.err == nil {
		f.err = invalidValue(err, f.usage)
	}
}

// required parses the value of a prefix that is known to be present
func required[T any](f *fields, p Prefix, parse func(string) (T, error)) T {
	var zero T
	if f.err != nil {
		return zero
	}
	s, _ := f.am.Value(p)
	v, err := parse(s)
	if err != nil {
		f.fail(err)
		return zero
	}
	return v
}

// optional is nil when p was not typed
func optional[T any](f *fields, p Prefix, parse func(string) (T, error)) *T {
	if f.err != nil || !f.am.Has(p) {
		return nil
	}
	v := required(f, p, parse)
	if f.err != nil {
		return nil
	}
	return &v
}

// every parses all values of a multi valued prefix
func every[T any](f *fields, p Prefix, parse func(string) (T, error)) []T {
	out := []T{}
	for _, s := range f.am.Values(p) {
		if f.err != nil {
			return nil
		}
		v, err := parse(s)
		if err != nil {
			f.fail(err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// replacement is nil when p was not typed. A single empty value clears the
// list, as in pr/ on its own.
func replacement[T any](f *fields, p Prefix, parse func(string) (T, error)) *[]T {
	if f.err != nil || !f.am.Has(p) {
		return nil
	}
	if vs := f.am.Values(p); len(vs) == 1 && vs[0] == "" {
		return &[]T{}
	}
	out := every(f, p, parse)
	if f.err != nil {
		return nil
	}
	return &out
}

// keywords splits every value of p into words
func keywords(am ArgumentMultimap, p Prefix) []string {
	out := []string{}
	for _, v := range am.Values(p) {
		out = append(out, strings.Fields(v)...)
	}
	return out
}

// contactEdit parses the shared fields, projects are left to the caller so
// that they are checked after the type specific fields
func contactEdit(f *fields) command.ContactEdit {
	var e command.ContactEdit
	e.Name = optional(f, PrefixName, value.ParseName)
	e.Phone = optional(f, PrefixPhone, value.ParsePhone)
	e.Email = optional(f, PrefixEmail, value.ParseEmail)
	e.Address = optional(f, PrefixAddress, value.ParseAddress)
	e.Role = optional(f, PrefixRole, value.ParseRole)
	return e
}
