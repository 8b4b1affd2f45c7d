package logic_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/devbook/pkg/command"
	"github.com/td0m/devbook/pkg/logic"
	"github.com/td0m/devbook/pkg/messages"
	"github.com/td0m/devbook/pkg/model"
	mt "github.com/td0m/devbook/pkg/model/modeltest"
	"github.com/td0m/devbook/pkg/parser"
	"github.com/td0m/devbook/pkg/persist/mocks"
	"go.uber.org/mock/gomock"
)

func loaded(t *testing.T, storage *mocks.MockStorage) *logic.Manager {
	t.Helper()
	storage.EXPECT().Load().Return(mt.Typical().Snapshot(), nil)
	m := logic.New(storage, nil)
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestManager_Load(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	m := loaded(t, mocks.NewMockStorage(ctrl))

	is.Equal(len(m.Model().Developers()), 3)
	is.Equal(len(m.Model().Projects()), 3)
}

func TestManager_LoadInvalid(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().Load().Return(model.Snapshot{
		Projects: []model.ProjectRecord{{Name: "Bad*", Description: "x"}},
	}, nil)

	m := logic.New(storage, nil)
	is.True(m.Load() != nil)
	is.Equal(len(m.Model().Projects()), 0)
}

func TestManager_LoadStorageError(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	boom := errors.New("boom")
	storage.EXPECT().Load().Return(model.Snapshot{}, boom)

	is.True(errors.Is(logic.New(storage, nil).Load(), boom))
}

func TestManager_ExecuteSavesMutations(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	m := loaded(t, storage)

	storage.EXPECT().Save(gomock.Any()).DoAndReturn(func(s model.Snapshot) error {
		is.Equal(len(s.Projects[0].Deadlines), 3)
		is.Equal(s.Projects[0].Deadlines[0], "31-12-2019,Develop front end interface,HIGH,1")
		return nil
	})
	res, err := m.Execute("mark-deadline 1 1")
	is.NoErr(err)
	is.Equal(res.Feedback, messages.MarkedDeadline)
}

func TestManager_ExecuteReadOnly(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	m := loaded(t, mocks.NewMockStorage(ctrl))

	// no Save expected
	res, err := m.Execute("find-developer n/alice")
	is.NoErr(err)
	is.Equal(res.Tab, command.DeveloperTab)
	is.Equal(len(m.Model().FilteredDevelopers()), 1)

	res, err = m.Execute("help")
	is.NoErr(err)
	is.True(res.ShowHelp)
}

func TestManager_ExecuteErrors(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	m := loaded(t, mocks.NewMockStorage(ctrl))

	_, err := m.Execute("foobar 1 2")
	is.True(errors.Is(err, parser.ErrUnknownCommand))

	_, err = m.Execute("unmark-deadline 1 4")
	is.True(errors.Is(err, command.ErrInvalidIndex))
	is.Equal(err.Error(), messages.InvalidDeadlineIndex)
}

func TestManager_SaveFailureKeepsChange(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	m := loaded(t, storage)
	boom := errors.New("disk full")
	storage.EXPECT().Save(gomock.Any()).Return(boom)

	res, err := m.Execute("delete-developer 1")
	is.True(errors.Is(err, boom))
	is.True(res.Mutated)
	is.Equal(len(m.Model().Developers()), 2)
}

func TestManager_Validate(t *testing.T) {
	is := is.New(t)
	ctrl := gomock.NewController(t)
	m := logic.New(mocks.NewMockStorage(ctrl), nil)

	is.NoErr(m.Validate("list-project"))
	is.True(m.Validate("delete-project x") != nil)
	is.Equal(len(m.Model().Projects()), 0)
}
