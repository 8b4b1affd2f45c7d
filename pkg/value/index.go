package value

import (
	"errors"
	"strconv"
	"strings"
)

const IndexConstraints = "Index is not a non-zero unsigned integer."

var ErrInvalidIndex = errors.New(IndexConstraints)

// Index addresses an element of a displayed list. Users count from one,
// code counts from zero.
type Index struct{ zero int }

func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return Index{}, ErrInvalidIndex
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return Index{}, ErrInvalidIndex
	}
	return Index{n - 1}, nil
}

func FromZeroBased(i int) Index { return Index{i} }

func FromOneBased(i int) Index { return Index{i - 1} }

func (i Index) ZeroBased() int { return i.zero }

func (i Index) OneBased() int { return i.zero + 1 }

// In reports whether the index addresses an element of a list of size n
func (i Index) In(n int) bool { return i.zero >= 0 && i.zero < n }

func (i Index) String() string { return strconv.Itoa(i.OneBased()) }
