package tui

import (
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homePages may open the build info overlay with "v". Other pages use the
// key for their own input.
var homePages = map[string]bool{pageMenu: true, pageForms: true}

// RootModel routes messages to the page named by the last [NavigateTo].
// It ends the program when a login succeeds, on [LogoutRequested] and on
// Ctrl+C.
type RootModel struct {
	pages map[string]tea.Model
	page  string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	session    models.Session
	logout     bool
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, page: startPage, buildInfo: buildInfo}
}

func (r RootModel) active() tea.Model {
	return r.pages[r.page]
}

func (r RootModel) Init() tea.Cmd {
	if page := r.active(); page != nil {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
	case LogoutRequested:
		r.logout = true
		return r, tea.Quit
	}

	page := r.active()
	if page == nil {
		return r, nil
	}

	page, cmd := page.Update(msg)
	r.pages[r.page] = page
	return r, cmd
}

// handleGlobalKey reports whether the key was consumed before reaching the
// page. While the overlay is open every key except esc and v is swallowed.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.interrupt):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.version) && homePages[r.page]:
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}
	return r.showBuildInfo, nil
}

// navigate switches pages. A payload is handed to the new page as its next
// message, otherwise the page is initialized.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	page, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.page = nav.Page
	r.showBuildInfo = false

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, page.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if page := r.active(); page != nil {
		return page.View()
	}
	return renderPage("GoFormKeeper", "", "")
}
