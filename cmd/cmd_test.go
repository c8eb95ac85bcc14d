package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"twitch-app-api/config"
	"twitch-app-api/twitchapi"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves canned records and records the ids it was asked for.
type fakeAPI struct {
	mu         sync.Mutex
	addonIDs   []uint64
	addons     map[uint64]*twitchapi.Addon
	categories map[uint64]*twitchapi.Category
	sections   map[uint64][]twitchapi.Category
	err        error
}

func (f *fakeAPI) Addon(ctx context.Context, id uint64) (*twitchapi.Addon, error) {
	f.mu.Lock()
	f.addonIDs = append(f.addonIDs, id)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.addons[id]
	if !ok {
		return nil, &twitchapi.APIError{StatusCode: 404, Body: "not found"}
	}
	return a, nil
}

func (f *fakeAPI) Category(ctx context.Context, id uint64) (*twitchapi.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.categories[id]
	if !ok {
		return nil, &twitchapi.APIError{StatusCode: 404, Body: "not found"}
	}
	return c, nil
}

func (f *fakeAPI) CategorySection(ctx context.Context, id uint64) ([]twitchapi.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sections[id], nil
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		addons: map[uint64]*twitchapi.Addon{
			238222: {ID: 238222, Name: "Just Enough Items", Slug: "jei"},
			32274:  {ID: 32274, Name: "JourneyMap", Slug: "journeymap"},
		},
		categories: map[uint64]*twitchapi.Category{
			423: {ID: 423, Name: "Map and Information", GameID: 432},
		},
		sections: map[uint64][]twitchapi.Category{
			8: {
				{ID: 423, Name: "Map and Information"},
				{ID: 424, Name: "Cosmetic"},
			},
			9: {},
		},
	}
}

// execute runs the root command against api and returns stdout.
func execute(t *testing.T, api twitchapi.API, args ...string) (string, error) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("LOG_FILE", filepath.Join(tmpDir, "test.log"))

	orig := newClient
	newClient = func(config.Config) (twitchapi.API, error) { return api, nil }
	t.Cleanup(func() { newClient = orig })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", tmpDir, "--no-tui"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddonCommand(t *testing.T) {
	out, err := execute(t, newFakeAPI(), "addon", "--json=false", "238222")
	require.NoError(t, err)
	assert.Contains(t, out, "Just Enough Items")
}

func TestAddonCommandMultipleIDsKeepOrder(t *testing.T) {
	api := newFakeAPI()
	out, err := execute(t, api, "addon", "--json", "32274", "238222")
	require.NoError(t, err)

	var addons []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &addons))
	require.Len(t, addons, 2)
	assert.Equal(t, "JourneyMap", addons[0].Name)
	assert.Equal(t, "Just Enough Items", addons[1].Name)
	assert.ElementsMatch(t, []uint64{32274, 238222}, api.addonIDs)
}

func TestAddonCommandNotFound(t *testing.T) {
	_, err := execute(t, newFakeAPI(), "addon", "--json=false", "1")
	require.Error(t, err)

	var apiErr *twitchapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, errorLine(err), "Not found")
}

func TestAddonCommandInvalidID(t *testing.T) {
	api := newFakeAPI()
	_, err := execute(t, api, "addon", "--json=false", "jei")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
	assert.Empty(t, api.addonIDs)
}

func TestCategoryCommand(t *testing.T) {
	out, err := execute(t, newFakeAPI(), "category", "--json=false", "423")
	require.NoError(t, err)
	assert.Contains(t, out, "Map and Information")
}

func TestCategoryCommandJSON(t *testing.T) {
	out, err := execute(t, newFakeAPI(), "category", "--json", "423")
	require.NoError(t, err)

	var c twitchapi.Category
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, float64(423), c.ID)
}

func TestSectionCommand(t *testing.T) {
	out, err := execute(t, newFakeAPI(), "section", "--json=false", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "2 categories")
	assert.Contains(t, out, "Cosmetic")

	out, err = execute(t, newFakeAPI(), "section", "--json=false", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "no categories")
}

func TestCommandPropagatesTransportError(t *testing.T) {
	api := newFakeAPI()
	api.err = fmt.Errorf("%w: connection refused", twitchapi.ErrTransport)

	_, err := execute(t, api, "section", "--json=false", "8")
	require.Error(t, err)
	assert.ErrorIs(t, err, twitchapi.ErrTransport)
	assert.Contains(t, errorLine(err), "Network error")
}

func TestFetchAddonsCancelsOnFailure(t *testing.T) {
	api := newFakeAPI()
	out := make([]*twitchapi.Addon, 2)

	err := fetchAddons(context.Background(), api, []uint64{238222, 99}, out)
	require.Error(t, err)
	assert.Equal(t, "Just Enough Items", nilSafeName(out[0]))
}

func nilSafeName(a *twitchapi.Addon) string {
	if a == nil {
		return ""
	}
	return a.Name
}

func TestErrorLine(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"decode", fmt.Errorf("%w: bad json", twitchapi.ErrDecode), "Unexpected response"},
		{"transport", fmt.Errorf("%w: dial", twitchapi.ErrTransport), "Network error"},
		{"not found", &twitchapi.APIError{StatusCode: 404}, "Not found"},
		{"server error", &twitchapi.APIError{StatusCode: 500}, "Error"},
		{"other", errors.New("boom"), "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, errorLine(tt.err), tt.want)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("238222")
	require.NoError(t, err)
	assert.Equal(t, uint64(238222), id)

	for _, bad := range []string{"", "-1", "1.5", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestFetchModel(t *testing.T) {
	t.Run("finishes on fetch result", func(t *testing.T) {
		wantErr := errors.New("boom")
		m := newFetchModel("Fetching...", func() error { return wantErr }, func() {})

		assert.Contains(t, m.View(), "Fetching...")

		next, cmd := m.Update(fetchDoneMsg{err: wantErr})
		fm := next.(fetchModel)
		assert.True(t, fm.done)
		assert.Equal(t, wantErr, fm.err)
		assert.Empty(t, fm.View())
		require.NotNil(t, cmd)
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		canceled := false
		m := newFetchModel("Fetching...", func() error { return nil }, func() { canceled = true })

		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		fm := next.(fetchModel)
		assert.True(t, canceled)
		assert.True(t, fm.done)
		assert.ErrorIs(t, fm.err, context.Canceled)
	})

	t.Run("startFetch runs the fetch", func(t *testing.T) {
		m := newFetchModel("Fetching...", func() error { return nil }, func() {})
		msg := m.startFetch()()
		assert.Equal(t, fetchDoneMsg{}, msg)
	})
}
