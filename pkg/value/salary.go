package value

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const SalaryConstraints = "Salary should only contain digits, and it should not be blank"

var ErrInvalidSalary = errors.New(SalaryConstraints)

var salary = regexp.MustCompile(`^\d{1,9}$`)

type Salary struct{ amount int }

func ParseSalary(s string) (Salary, error) {
	s = strings.TrimSpace(s)
	if !salary.MatchString(s) {
		return Salary{}, ErrInvalidSalary
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Salary{}, ErrInvalidSalary
	}
	return Salary{n}, nil
}

func (s Salary) Amount() int { return s.amount }

func (s Salary) String() string { return strconv.Itoa(s.amount) }
