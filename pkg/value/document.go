package value

import (
	"errors"
	"net/url"
	"strings"
)

const DocumentConstraints = "Document should be a valid URL starting with http:// or https://"

var ErrInvalidDocument = errors.New(DocumentConstraints)

// Document links to a client's file, it is never fetched
type Document struct{ s string }

func ParseDocument(s string) (Document, error) {
	s = strings.TrimSpace(s)
	u, err := url.ParseRequestURI(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Document{}, ErrInvalidDocument
	}
	return Document{s}, nil
}

func (d Document) String() string { return d.s }
