// ABOUTME: Top-level tab router: one active tab, one view pane, loading/error states
// ABOUTME: Each activation carries a generation token so only one render wins

package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brigadress/showcase-tui/internal/api"
	"github.com/brigadress/showcase-tui/internal/identity"
)

// Tab is one of the five mutually exclusive top-level views.
type Tab int

const (
	TabFAQ Tab = iota
	TabDocs
	TabProjects
	TabLead
	TabAdmin
)

var allTabs = []Tab{TabFAQ, TabDocs, TabProjects, TabLead, TabAdmin}

func (t Tab) Title() string {
	switch t {
	case TabFAQ:
		return "FAQ"
	case TabDocs:
		return "Documents"
	case TabProjects:
		return "Projects"
	case TabLead:
		return "Request"
	case TabAdmin:
		return "Admin"
	}
	return "?"
}

type paneState int

const (
	stateLoading paneState = iota
	stateContent
	stateError
)

// Messages completing async work. Every one carries the generation of the
// activation that started it; stale generations are discarded on arrival.
type (
	tabLoadedMsg struct {
		gen  int
		tab  Tab
		view string
	}
	tabErrMsg struct {
		gen int
		err error
	}
	adminLeadsMsg struct {
		gen   int
		leads []api.Lead
	}
	adminDeniedMsg struct {
		gen     int
		errText string
	}
	leadCreatedMsg struct {
		gen  int
		lead *api.Lead
	}
	leadFailedMsg struct {
		gen int
		err error
	}
	statusSavedMsg struct {
		gen int
	}
	statusFailedMsg struct {
		gen int
		err error
	}
	exportDoneMsg struct {
		gen  int
		path string
	}
	exportFailedMsg struct {
		gen int
		err error
	}
)

// Model is the view controller. It is the sole writer of the view pane and
// the tab-active indicator; sub-views only produce fragments.
type Model struct {
	client     *api.Client
	ident      identity.Identity
	leadLimit  int
	exportPath string

	active  Tab
	gen     int
	state   paneState
	content string
	errText string

	spin  spinner.Model
	lead  leadModel
	admin adminModel

	quitting bool
}

// New builds the router. Dependencies are explicit so tests can drive Update
// without a live terminal.
func New(client *api.Client, ident identity.Identity, leadLimit int, exportPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle

	return Model{
		client:     client,
		ident:      ident,
		leadLimit:  leadLimit,
		exportPath: exportPath,
		active:     TabFAQ,
		gen:        1,
		state:      stateLoading,
		spin:       sp,
		lead:       newLeadModel(ident.InHost()),
		admin:      newAdminModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchTab(m.client, m.active, m.gen, m.leadLimit))
}

// fetchTab resolves a content tab's data and renders it off the event loop.
// Requests are never cancelled: a response for an abandoned activation still
// arrives and is dropped by the generation check in Update.
func fetchTab(client *api.Client, tab Tab, gen, leadLimit int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch tab {
		case TabFAQ:
			items, err := client.FAQ(ctx)
			if err != nil {
				return tabErrMsg{gen: gen, err: err}
			}
			return tabLoadedMsg{gen: gen, tab: tab, view: renderFAQ(items)}
		case TabDocs:
			items, err := client.Documents(ctx)
			if err != nil {
				return tabErrMsg{gen: gen, err: err}
			}
			return tabLoadedMsg{gen: gen, tab: tab, view: renderDocuments(items)}
		case TabProjects:
			items, err := client.Projects(ctx)
			if err != nil {
				return tabErrMsg{gen: gen, err: err}
			}
			return tabLoadedMsg{gen: gen, tab: tab, view: renderProjects(items)}
		case TabAdmin:
			leads, err := client.AdminLeads(ctx, leadLimit)
			if err != nil {
				// Expected outcome for non-elevated identities, not a crash
				return adminDeniedMsg{gen: gen, errText: err.Error()}
			}
			return adminLeadsMsg{gen: gen, leads: leads}
		}
		return nil
	}
}

// activate switches tabs: bump the generation, clear the pane, show the
// loading placeholder, and dispatch the tab's fetch.
func (m Model) activate(tab Tab) (Model, tea.Cmd) {
	m.active = tab
	m.gen++
	m.content = ""
	m.errText = ""

	switch tab {
	case TabLead:
		// No fetch; the form renders immediately
		m.state = stateContent
		m.lead = newLeadModel(m.ident.InHost())
		return m, textinput.Blink
	default:
		m.state = stateLoading
		if tab == TabAdmin {
			m.admin = newAdminModel()
		}
		return m, tea.Batch(m.spin.Tick, fetchTab(m.client, tab, m.gen, m.leadLimit))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tabLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = stateContent
		m.content = msg.view
		return m, nil

	case tabErrMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = stateError
		m.errText = msg.err.Error()
		return m, nil

	case adminLeadsMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = stateContent
		m.admin.setLeads(msg.leads)
		return m, nil

	case adminDeniedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = stateContent
		m.admin.deny(msg.errText)
		return m, nil

	case leadCreatedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.lead.confirm(msg.lead)
		return m, nil

	case leadFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.lead.fail(msg.err.Error())
		return m, nil

	case statusSavedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		// Full reload from the backend; no local row patching
		return m.activate(TabAdmin)

	case statusFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.admin.saveFailed(msg.err.Error())
		return m, nil

	case exportDoneMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.admin.exportDone(msg.path)
		return m, nil

	case exportFailedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.admin.exportFailed(msg.err.Error())
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.activate(allTabs[(int(m.active)+1)%len(allTabs)])
	case "shift+tab":
		return m.activate(allTabs[(int(m.active)+len(allTabs)-1)%len(allTabs)])
	}

	switch m.active {
	case TabLead:
		if m.state != stateContent {
			return m, nil
		}
		var cmd tea.Cmd
		m.lead, cmd = m.lead.update(msg, m.client, m.gen)
		return m, cmd

	case TabAdmin:
		if s := msg.String(); s == "r" {
			return m.activate(TabAdmin)
		}
		if m.state != stateContent {
			return m, nil
		}
		var cmd tea.Cmd
		m.admin, cmd = m.admin.update(msg, m.client, m.gen, m.exportPath)
		return m, cmd

	default:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m.activate(m.active)
		case "1", "2", "3", "4", "5":
			idx := int(msg.String()[0] - '1')
			return m.activate(allTabs[idx])
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.ident.UserLine()))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString(m.spin.View() + " Loading…")
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Fetching data from the API"))
	case stateError:
		b.WriteString(errorStyle.Render("Error"))
		b.WriteString("\n")
		b.WriteString(m.errText)
	case stateContent:
		switch m.active {
		case TabLead:
			b.WriteString(m.lead.view())
		case TabAdmin:
			b.WriteString(m.admin.view())
		default:
			b.WriteString(m.content)
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) tabBar() string {
	parts := make([]string, 0, len(allTabs))
	for i, t := range allTabs {
		label := " " + strconv.Itoa(i+1) + ":" + t.Title() + " "
		if t == m.active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) helpLine() string {
	switch m.active {
	case TabLead:
		return "↑/↓ field · enter next/submit · ctrl+s submit · tab switch · ctrl+c quit"
	case TabAdmin:
		return "↑/↓ select · s status · e export CSV · r reload · tab switch · ctrl+c quit"
	}
	return "1-5 jump · tab switch · r reload · q quit"
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
