package value

import (
	"errors"
	"regexp"
	"strings"
)

const specialCharacters = "+_.-"

const EmailConstraints = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (" + specialCharacters + "). The local-part may not start or end with any special " +
	"characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
	"separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

var ErrInvalidEmail = errors.New(EmailConstraints)

const (
	alnum       = `[A-Za-z0-9]+`
	localPart   = `^` + alnum + `([+_.\-]` + alnum + `)*`
	domainLabel = alnum + `(-` + alnum + `)*`
	domain      = `(` + domainLabel + `\.)*(` + domainLabel + `){2,}$`
)

var email = regexp.MustCompile(localPart + `@` + domain)

type Email struct{ s string }

func ParseEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !email.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{s}, nil
}

func (e Email) String() string { return e.s }
