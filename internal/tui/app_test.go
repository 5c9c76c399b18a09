package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPage remembers the messages it received.
type recordingPage struct {
	name string
	got  []tea.Msg
}

func (p *recordingPage) Init() tea.Cmd { return nil }

func (p *recordingPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *recordingPage) View() string { return p.name }

func newTestRoot() (RootModel, *recordingPage, *recordingPage) {
	first := &recordingPage{name: "first"}
	second := &recordingPage{name: "second"}
	root := NewRootModel(map[string]tea.Model{"first": first, "second": second}, "first", models.NewAppBuildInfo("1.0.0", "", ""))
	return root, first, second
}

func update(t *testing.T, root RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := root.Update(msg)
	r, ok := next.(RootModel)
	require.True(t, ok)
	return r, cmd
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root, _, second := newTestRoot()

	root, cmd := update(t, root, NavigateTo{Page: "second", Payload: openForm{formID: 5}})
	assert.Equal(t, "second", root.View())
	require.NotNil(t, cmd)

	_, _ = update(t, root, cmd())
	assert.Equal(t, []tea.Msg{openForm{formID: 5}}, second.got)
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root, _, _ := newTestRoot()

	root, cmd := update(t, root, NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	assert.Equal(t, "first", root.View())
}

func TestRootModel_LoginResult(t *testing.T) {
	root, first, _ := newTestRoot()

	failed := LoginResult{Err: errors.New("nope")}
	root, _ = update(t, root, failed)
	assert.Equal(t, []tea.Msg{failed}, first.got)
	assert.Empty(t, root.session.Token)

	session := models.Session{UserID: 3, Username: "ann", Token: "t"}
	root, cmd := update(t, root, LoginResult{Session: session})
	assert.Equal(t, session, root.session)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_LogoutAndQuit(t *testing.T) {
	root, _, _ := newTestRoot()

	loggedOut, _ := update(t, root, LogoutRequested{})
	assert.True(t, loggedOut.logout)
	assert.False(t, loggedOut.quitByUser)

	quit, _ := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit.quitByUser)
}

func TestRootModel_DelegatesOtherMessages(t *testing.T) {
	root, first, _ := newTestRoot()

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	_, _ = update(t, root, key)
	assert.Equal(t, []tea.Msg{key}, first.got)
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	menu := &recordingPage{name: "menu"}
	root := NewRootModel(map[string]tea.Model{pageMenu: menu}, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))
	v := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}

	root, _ = update(t, root, v)
	assert.True(t, root.showBuildInfo)
	assert.NotEqual(t, "menu", root.View())

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, menu.got)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, "menu", root.View())
}

func TestRootModel_VersionKeyReachesOtherPages(t *testing.T) {
	root, first, _ := newTestRoot()
	v := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}

	root, _ = update(t, root, v)
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, []tea.Msg{v}, first.got)
}

func TestMenuModel_EnterNavigates(t *testing.T) {
	menu := NewMenuModel()

	_, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())

	_, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())

	_, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
