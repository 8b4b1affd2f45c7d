package command

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
)

var (
	developerHeader = []string{"name", "phone", "email", "address", "role", "salary", "dateJoined", "projects"}
	clientHeader    = []string{"name", "phone", "email", "address", "role", "organisation", "document", "projects"}
)

// ImportDevelopers adds every developer in a CSV file, or none of them if
// any row is invalid
type ImportDevelopers struct {
	Path string
}

func (c ImportDevelopers) Execute(m *model.Model) (Result, error) {
	rows, err := readCSV(c.Path, developerHeader)
	if err != nil {
		return Result{}, err
	}
	ds := make([]*model.Developer, 0, len(rows))
	for i, row := range rows {
		d, err := model.DeveloperRecord{
			ContactRecord: contactRecord(row),
			Salary:        row[5],
			DateJoined:    row[6],
		}.Developer()
		if err != nil {
			return Result{}, invalidRow(c.Path, i, err)
		}
		ds = append(ds, d)
	}
	if err := m.AddDevelopers(ds); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.ImportedDevelopers, len(ds)),
		Tab:      DeveloperTab,
		Mutated:  len(ds) > 0,
	}, nil
}

// ImportClients is ImportDevelopers for clients
type ImportClients struct {
	Path string
}

func (c ImportClients) Execute(m *model.Model) (Result, error) {
	rows, err := readCSV(c.Path, clientHeader)
	if err != nil {
		return Result{}, err
	}
	cs := make([]*model.Client, 0, len(rows))
	for i, row := range rows {
		cl, err := model.ClientRecord{
			ContactRecord: contactRecord(row),
			Organisation:  row[5],
			Document:      row[6],
		}.Client()
		if err != nil {
			return Result{}, invalidRow(c.Path, i, err)
		}
		cs = append(cs, cl)
	}
	if err := m.AddClients(cs); err != nil {
		return Result{}, modelError(err)
	}
	return Result{
		Feedback: fmt.Sprintf(messages.ImportedClients, len(cs)),
		Tab:      ClientTab,
		Mutated:  len(cs) > 0,
	}, nil
}

// row numbers count the header as row 1
func invalidRow(path string, i int, err error) error {
	return fail(ErrInvalidImport, fmt.Sprintf(messages.InvalidImportRow, i+2, path, err))
}

func contactRecord(row []string) model.ContactRecord {
	projects := []string{}
	for _, p := range strings.Split(row[7], ";") {
		if p = strings.TrimSpace(p); p != "" {
			projects = append(projects, p)
		}
	}
	return model.ContactRecord{
		Name:     row[0],
		Phone:    row[1],
		Email:    row[2],
		Address:  row[3],
		Role:     row[4],
		Projects: projects,
	}
}

// readCSV returns the rows after the header
func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fail(ErrInvalidFile, messages.InvalidFile)
	}
	if err != nil {
		return nil, fail(ErrInvalidImport, fmt.Sprintf(messages.InvalidImportFile, path, err))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fail(ErrInvalidImport, fmt.Sprintf(messages.InvalidImportFile, path, err))
	}
	if len(records) == 0 {
		return nil, fail(ErrInvalidImport, fmt.Sprintf(messages.InvalidImportFile, path, "missing header"))
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(records[0][i]), h) {
			return nil, fail(ErrInvalidImport, fmt.Sprintf(messages.InvalidImportFile, path,
				"expected header "+strings.Join(header, ",")))
		}
	}
	return records[1:], nil
}
