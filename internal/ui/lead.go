// ABOUTME: Lead submission flow: input form, payload building, confirmation
// ABOUTME: Empty inputs become absent payload values, never empty strings

package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brigadress/showcase-tui/internal/api"
)

// Field order matches the payload: name, phone, city, work type, budget,
// description.
const leadFieldCount = 6

type leadModel struct {
	inputs     []textinput.Model
	focus      int
	inHost     bool
	submitting bool
	errText    string
	receipt    *api.Lead
}

func newLeadModel(inHost bool) leadModel {
	placeholders := []string{
		"Name",
		"Phone",
		"City",
		"Work type (e.g. tiling, wiring)",
		"Budget (e.g. up to 500k)",
		"Describe the job in a few words",
	}

	inputs := make([]textinput.Model, leadFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[0].Focus()

	return leadModel{inputs: inputs, inHost: inHost}
}

// draft builds the outgoing payload. Every optional field maps empty input
// to nil; the discriminator is fixed.
func (lm leadModel) draft() api.LeadDraft {
	return api.LeadDraft{
		LeadType:    api.LeadTypeClientRequest,
		Name:        optional(lm.inputs[0].Value()),
		Phone:       optional(lm.inputs[1].Value()),
		City:        optional(lm.inputs[2].Value()),
		WorkType:    optional(lm.inputs[3].Value()),
		Budget:      optional(lm.inputs[4].Value()),
		Description: optional(lm.inputs[5].Value()),
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func (lm leadModel) update(msg tea.KeyMsg, client *api.Client, gen int) (leadModel, tea.Cmd) {
	if lm.receipt != nil {
		// Confirmation pane; enter starts a fresh form
		if msg.String() == "enter" {
			fresh := newLeadModel(lm.inHost)
			return fresh, textinput.Blink
		}
		return lm, nil
	}

	switch msg.String() {
	case "up":
		return lm.focusField(lm.focus - 1), nil
	case "down":
		return lm.focusField(lm.focus + 1), nil
	case "enter":
		if lm.focus < leadFieldCount-1 {
			return lm.focusField(lm.focus + 1), nil
		}
		return lm.submit(client, gen)
	case "ctrl+s":
		return lm.submit(client, gen)
	}

	var cmd tea.Cmd
	lm.inputs[lm.focus], cmd = lm.inputs[lm.focus].Update(msg)
	return lm, cmd
}

func (lm leadModel) focusField(i int) leadModel {
	if i < 0 || i >= leadFieldCount {
		return lm
	}
	lm.inputs[lm.focus].Blur()
	lm.focus = i
	lm.inputs[i].Focus()
	return lm
}

// submit fires the create call. The form is never blocked client-side: in
// browser mode the backend refuses and the refusal is shown like any error.
func (lm leadModel) submit(client *api.Client, gen int) (leadModel, tea.Cmd) {
	if lm.submitting {
		return lm, nil
	}
	lm.submitting = true
	lm.errText = ""

	draft := lm.draft()
	return lm, func() tea.Msg {
		lead, err := client.CreateLead(context.Background(), draft)
		if err != nil {
			return leadFailedMsg{gen: gen, err: err}
		}
		return leadCreatedMsg{gen: gen, lead: lead}
	}
}

func (lm *leadModel) confirm(lead *api.Lead) {
	lm.submitting = false
	lm.receipt = lead
}

func (lm *leadModel) fail(text string) {
	lm.submitting = false
	lm.errText = text
}

func (lm leadModel) view() string {
	var b strings.Builder

	if lm.receipt != nil {
		b.WriteString(noticeStyle.Render("Done ✓"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(
			"Request #" + itoa(lm.receipt.ID) + " created. Status: " + lm.receipt.Status + "."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter to create another request"))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Repair request / contractor match"))
	b.WriteString("\n")
	if !lm.inHost {
		b.WriteString(warnStyle.Render(
			"Heads up: submission requires the app host context, the backend will refuse it here."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := range lm.inputs {
		b.WriteString(lm.inputs[i].View())
		b.WriteString("\n")
	}

	if lm.submitting {
		b.WriteString("\n" + mutedStyle.Render("Submitting…"))
	}
	if lm.errText != "" {
		// Failure leaves the form as-is so the user can retry
		b.WriteString("\n" + errorStyle.Render("Error: ") + lm.errText)
	}

	return b.String()
}
