package persist

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/td0m/devbook/pkg/model"
)

const version = 1

// savable is the document every store writes. The version lets a later
// layout be told apart from this one.
type savable struct {
	Version int `json:"version"`
	model.Snapshot
}

func newSavable(s model.Snapshot) savable {
	return savable{Version: version, Snapshot: s}
}

func (s savable) encode() ([]byte, error) {
	bs, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding snapshot")
	}
	return bs, nil
}

// decode parses and checks a stored document
func decode(bs []byte) (model.Snapshot, error) {
	var s savable
	if err := json.Unmarshal(bs, &s); err != nil {
		return model.Snapshot{}, errors.Wrap(err, "decoding snapshot")
	}
	if err := s.check(); err != nil {
		return model.Snapshot{}, err
	}
	return s.Snapshot, nil
}

// check only looks at the envelope, the model validates the entities
func (s savable) check() error {
	if s.Version != version {
		return errors.Errorf("unsupported snapshot version %d", s.Version)
	}
	return nil
}
