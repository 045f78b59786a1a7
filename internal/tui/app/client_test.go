package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/storage"
)

type fakeRunner struct {
	ran bool
	err error
}

func (r *fakeRunner) Run(model tea.Model) error {
	r.ran = true
	return r.err
}

func newTestClient(t *testing.T, runner ProgramRunner) *Client {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	config.Reset()
	t.Cleanup(config.Reset)

	store, err := storage.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return NewClient(
		storage.NewPostRepositoryAdapter(store),
		storage.NewProjectRepositoryAdapter(store),
		runner,
	)
}

func TestCreateModel(t *testing.T) {
	c := newTestClient(t, &fakeRunner{})

	model, err := c.CreateModel()
	require.NoError(t, err)
	assert.NotNil(t, model)
}

func TestRunUsesInjectedRunner(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClient(t, runner)

	require.NoError(t, c.Run())
	assert.True(t, runner.ran)
}

func TestRunPropagatesRunnerError(t *testing.T) {
	runner := &fakeRunner{err: assert.AnError}
	c := newTestClient(t, runner)

	assert.Error(t, c.Run())
}
