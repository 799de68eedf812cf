// ABOUTME: Admin panel: lead table, status mutation, and CSV export
// ABOUTME: Authorization refusal renders as an expected access-restricted view

package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brigadress/showcase-tui/internal/api"
)

// statusBadge maps the four known statuses to their display labels. Anything
// else passes through unchanged so newer backend statuses still render.
func statusBadge(status string) string {
	switch status {
	case api.StatusNew:
		return "NEW"
	case api.StatusInProgress:
		return "IN PROGRESS"
	case api.StatusDone:
		return "DONE"
	case api.StatusRejected:
		return "REJECTED"
	}
	return status
}

type adminModel struct {
	leads      []api.Lead
	cursor     int
	denied     bool
	deniedText string
	notice     string
	picking    bool
	pick       int
	saving     bool
	exporting  bool
}

func newAdminModel() adminModel {
	return adminModel{}
}

func (am *adminModel) setLeads(leads []api.Lead) {
	am.leads = leads
	am.cursor = 0
	am.denied = false
	am.deniedText = ""
}

func (am *adminModel) deny(text string) {
	am.denied = true
	am.deniedText = text
}

func (am *adminModel) saveFailed(text string) {
	am.saving = false
	am.notice = "Error: " + text
}

func (am *adminModel) exportDone(path string) {
	am.exporting = false
	am.notice = "Saved " + path
}

func (am *adminModel) exportFailed(text string) {
	am.exporting = false
	am.notice = "Export error: " + text
}

func (am adminModel) update(msg tea.KeyMsg, client *api.Client, gen int, exportPath string) (adminModel, tea.Cmd) {
	if am.denied {
		return am, nil
	}

	if am.picking {
		switch msg.String() {
		case "up", "k":
			if am.pick > 0 {
				am.pick--
			}
		case "down", "j":
			if am.pick < len(api.KnownStatuses)-1 {
				am.pick++
			}
		case "enter":
			am.picking = false
			am.saving = true
			am.notice = ""
			lead := am.leads[am.cursor]
			return am, saveStatus(client, lead.ID, api.KnownStatuses[am.pick], gen)
		case "esc":
			am.picking = false
		}
		return am, nil
	}

	switch msg.String() {
	case "up", "k":
		if am.cursor > 0 {
			am.cursor--
		}
	case "down", "j":
		if am.cursor < len(am.leads)-1 {
			am.cursor++
		}
	case "s", "enter":
		if len(am.leads) > 0 && !am.saving {
			am.picking = true
			am.pick = pickIndex(am.leads[am.cursor].Status)
		}
	case "e":
		if !am.exporting {
			am.exporting = true
			am.notice = "Exporting…"
			return am, exportLeads(client, exportPath, gen)
		}
	}
	return am, nil
}

// pickIndex preselects the lead's current status in the picker; unknown
// statuses fall back to the first entry.
func pickIndex(status string) int {
	for i, s := range api.KnownStatuses {
		if s == status {
			return i
		}
	}
	return 0
}

func saveStatus(client *api.Client, id int64, status string, gen int) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.UpdateLeadStatus(context.Background(), id, status); err != nil {
			return statusFailedMsg{gen: gen, err: err}
		}
		return statusSavedMsg{gen: gen}
	}
}

func exportLeads(client *api.Client, path string, gen int) tea.Cmd {
	return func() tea.Msg {
		data, err := client.ExportLeadsCSV(context.Background())
		if err != nil {
			return exportFailedMsg{gen: gen, err: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return exportFailedMsg{gen: gen, err: fmt.Errorf("writing %s: %w", path, err)}
		}
		return exportDoneMsg{gen: gen, path: path}
	}
}

func (am adminModel) view() string {
	if am.denied {
		var b strings.Builder
		b.WriteString(titleStyle.Render("Access restricted"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("The backend refused the admin lead fetch."))
		b.WriteString("\n")
		b.WriteString("Error text: " + am.deniedText)
		return b.String()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Leads (%d)", len(am.leads))))
	b.WriteString("\n\n")

	if len(am.leads) == 0 {
		b.WriteString(mutedStyle.Render("No leads yet."))
	} else {
		b.WriteString(am.table())
	}

	if am.picking {
		b.WriteString("\n")
		b.WriteString(am.picker())
	}
	if am.saving {
		b.WriteString("\n" + mutedStyle.Render("Saving status…"))
	}
	if am.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(am.notice))
	}
	return b.String()
}

// table lays the leads out with tabwriter; badges stay unstyled so column
// alignment is not thrown off by escape codes.
func (am adminModel) table() string {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "  ID\tTYPE\tCONTACT\tDETAILS\tSTATUS")
	fmt.Fprintln(w, "  --\t----\t-------\t-------\t------")

	for i, l := range am.leads {
		marker := "  "
		if i == am.cursor {
			marker = "▸ "
		}
		contact := joinParts(deref(l.Name), deref(l.Phone))
		details := joinParts(deref(l.City), deref(l.WorkType), deref(l.Budget))
		fmt.Fprintf(w, "%s%d\t%s\t%s\t%s\t%s\n",
			marker, l.ID, l.LeadType, contact, details, statusBadge(l.Status))
	}
	w.Flush()
	return buf.String()
}

func (am adminModel) picker() string {
	lead := am.leads[am.cursor]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Set status for lead #%d:\n", lead.ID))
	for i, s := range api.KnownStatuses {
		marker := "  "
		if i == am.pick {
			marker = "▸ "
		}
		b.WriteString(marker + statusBadge(s) + "\n")
	}
	b.WriteString(helpStyle.Render("enter apply · esc cancel"))
	return b.String()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " / ")
}
