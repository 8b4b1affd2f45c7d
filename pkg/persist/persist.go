// Package persist stores model snapshots. Every store writes the same JSON
// document, so a file can be loaded into redis and back unchanged.
package persist

import (
	"os"

	"github.com/pkg/errors"
	"github.com/td0m/devbook/pkg/model"
)

//go:generate mockgen -destination=mocks/storage.mock.go -package=mocks github.com/td0m/devbook/pkg/persist Storage

type Storage interface {
	Save(model.Snapshot) error
	// Load returns an empty snapshot when nothing was saved yet
	Load() (model.Snapshot, error)
}

var (
	_ Storage = &JSON{}
	_ Storage = &Redis{}
)

type JSON struct {
	file string
}

func InJSON(file string) *JSON {
	return &JSON{file}
}

// Save writes the snapshot to the json file
func (j JSON) Save(s model.Snapshot) error {
	bs, err := newSavable(s).encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(j.file, bs, 0660); err != nil {
		return errors.Wrapf(err, "writing %s", j.file)
	}
	return nil
}

// Load reads and checks the json file
func (j JSON) Load() (model.Snapshot, error) {
	bs, err := os.ReadFile(j.file)
	if errors.Is(err, os.ErrNotExist) {
		return model.Snapshot{}, nil
	}
	if err != nil {
		return model.Snapshot{}, errors.Wrapf(err, "reading %s", j.file)
	}
	s, err := decode(bs)
	if err != nil {
		return model.Snapshot{}, errors.Wrap(err, j.file)
	}
	return s, nil
}
