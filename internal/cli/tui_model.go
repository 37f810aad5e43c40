package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slacalc/internal/cli/formatter"
	"github.com/alexanderramin/slacalc/internal/csvexport"
	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/alexanderramin/slacalc/internal/sla"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tuiFocus tracks which pane receives key presses.
type tuiFocus int

const (
	focusForm    tuiFocus = iota // Entry fields.
	focusHistory                 // History table.
	focusConfirm                 // Clear-history dialog.
)

const (
	fieldCase = iota
	fieldDue
	fieldDelivered
	fieldCount
)

var fieldLabels = [fieldCount]string{"NF", "Prevista", "Entrega"}

// advanceFocusMsg moves focus off a field that just became complete. It is
// dropped when focus has already moved elsewhere.
type advanceFocusMsg struct{ from int }

// clearDecisionMsg carries the answer of the clear-history dialog.
type clearDecisionMsg struct{ confirmed bool }

// tuiModel is the bubbletea Model for the interactive calculator.
type tuiModel struct {
	app  *App
	ctx  context.Context
	keys tuiKeyMap
	help help.Model

	inputs [fieldCount]textinput.Model
	active int
	focus  tuiFocus

	table   table.Model
	records []domain.EvaluationRecord

	confirm     *huh.Form
	clearAnswer *bool

	// submitted is set by a successful submit, which also resets the fields;
	// the entry reads as Submitted until something is typed again.
	submitted bool
	result    *domain.EvaluationRecord

	errText  string
	notice   string
	width    int
	quitting bool
}

func newTUIModel(ctx context.Context, app *App) tuiModel {
	if ctx == nil {
		ctx = context.Background()
	}

	m := tuiModel{
		app:  app,
		ctx:  ctx,
		keys: defaultTUIKeyMap(),
		help: help.New(),
	}

	placeholders := [fieldCount]string{"000000", "dd/mm/aaaa", "dd/mm/aaaa"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 32
		ti.Width = 12
		m.inputs[i] = ti
	}
	m.inputs[fieldCase].Focus()

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(formatter.ColorHeader).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#504945")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(historyTableColumns()),
		table.WithHeight(8),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	m.reloadHistory()

	return m
}

func historyTableColumns() []table.Column {
	widths := []int{8, 6, 10, 10, 10, 8, 16}
	cols := make([]table.Column, len(formatter.HistoryColumns))
	for i, title := range formatter.HistoryColumns {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

// runTUI starts the full-screen calculator. Export notices are queued while
// it runs and shown on the status line.
func runTUI(ctx context.Context, app *App) error {
	if app.Notices != nil {
		app.Notices.SetOutput(nil)
	}
	p := tea.NewProgram(newTUIModel(ctx, app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if m.confirm != nil {
			m.confirm = m.confirm.WithWidth(msg.Width)
		}
		return m, nil

	case advanceFocusMsg:
		if m.focus == focusForm && m.active == msg.from && msg.from < fieldDelivered {
			return m, m.focusField(msg.from + 1)
		}
		return m, nil

	case clearDecisionMsg:
		return m.finishClear(msg.confirmed)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.focus {
	case focusConfirm:
		return m.updateConfirm(msg)
	case focusHistory:
		return m.updateHistory(msg)
	default:
		return m.updateForm(msg)
	}
}

// handleGlobalKey runs the actions available from both panes.
func (m tuiModel) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Export):
		next, cmd := m.export()
		return next, cmd, true
	case key.Matches(msg, m.keys.ClearHistory):
		next, cmd := m.startClear()
		return next, cmd, true
	case key.Matches(msg, m.keys.SwitchPane):
		next, cmd := m.switchPane()
		return next, cmd, true
	}
	return m, nil, false
}

// ── entry form ───────────────────────────────────────────────────────────────

func (m tuiModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if next, cmd, handled := m.handleGlobalKey(keyMsg); handled {
			return next, cmd
		}
		switch {
		case key.Matches(keyMsg, m.keys.ClearFields):
			m.clearFields()
			return m, m.focusField(fieldCase)
		case key.Matches(keyMsg, m.keys.Submit):
			if m.active < fieldDelivered {
				return m, m.focusField(m.active + 1)
			}
			return m.submit()
		case key.Matches(keyMsg, m.keys.NextField):
			return m, m.focusField(min(m.active+1, fieldDelivered))
		case key.Matches(keyMsg, m.keys.PrevField):
			return m, m.focusField(max(m.active-1, fieldCase))
		}
	}

	i := m.active
	before := m.inputs[i].Value()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	after := m.applyMask(i)

	if after != before {
		m.errText = ""
		m.notice = ""
		if fieldComplete(i, after) && !fieldComplete(i, before) && i < fieldDelivered {
			return m, tea.Batch(cmd, advanceFocus(i))
		}
	}
	return m, cmd
}

// applyMask rewrites field i to its masked form and returns the new value.
func (m *tuiModel) applyMask(i int) string {
	raw := m.inputs[i].Value()
	masked := sla.MaskInput(raw)
	if i == fieldCase {
		masked = sla.MaskCaseID(raw)
	}
	if masked != raw {
		m.inputs[i].SetValue(masked)
		m.inputs[i].CursorEnd()
	}
	return masked
}

func fieldComplete(i int, value string) bool {
	if i == fieldCase {
		return domain.IsValidCaseID(value)
	}
	_, ok := sla.ParseDisplay(value)
	return ok
}

func advanceFocus(from int) tea.Cmd {
	return func() tea.Msg {
		return advanceFocusMsg{from: from}
	}
}

func (m *tuiModel) focusField(i int) tea.Cmd {
	m.active = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

func (m *tuiModel) clearFields() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.submitted = false
	m.result = nil
	m.errText = ""
	m.notice = ""
}

func (m tuiModel) input() service.EvaluationInput {
	return service.EvaluationInput{
		CaseID:        m.inputs[fieldCase].Value(),
		DueDate:       m.inputs[fieldDue].Value(),
		DeliveredDate: m.inputs[fieldDelivered].Value(),
	}
}

// state derives the entry state from the current field values.
func (m tuiModel) state() domain.FormState {
	in := m.input()
	if m.submitted && in == (service.EvaluationInput{}) {
		return domain.FormSubmitted
	}
	return service.Readiness(in)
}

func (m tuiModel) submit() (tea.Model, tea.Cmd) {
	in := m.input()
	rec, err := m.app.Evaluations.Submit(m.ctx, in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			m.errText = verr.Message
			return m, m.focusField(fieldIndex(verr.Field))
		}
		m.errText = err.Error()
		return m, nil
	}

	m.clearFields()
	m.submitted = true
	m.result = &rec
	m.reloadHistory()
	return m, m.focusField(fieldCase)
}

func fieldIndex(f domain.Field) int {
	switch f {
	case domain.FieldDueDate:
		return fieldDue
	case domain.FieldDeliveredDate:
		return fieldDelivered
	default:
		return fieldCase
	}
}

// ── history pane ─────────────────────────────────────────────────────────────

func (m tuiModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if next, cmd, handled := m.handleGlobalKey(keyMsg); handled {
			return next, cmd
		}
		switch {
		case key.Matches(keyMsg, m.keys.Remove):
			return m.removeSelected()
		case key.Matches(keyMsg, m.keys.Back):
			return m.switchPane()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m tuiModel) switchPane() (tea.Model, tea.Cmd) {
	if m.focus == focusHistory {
		m.focus = focusForm
		m.table.Blur()
		return m, m.focusField(m.active)
	}
	m.focus = focusHistory
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.table.Focus()
	return m, nil
}

func (m tuiModel) removeSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return m, nil
	}
	rec := m.records[idx]
	if _, err := m.app.History.Remove(m.ctx, rec.ID); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.notice = fmt.Sprintf("Registro %s removido.", formatter.ShortID(rec.ID))
	m.reloadHistory()
	return m, nil
}

func (m *tuiModel) reloadHistory() {
	m.records = m.app.History.Records()
	rows := make([]table.Row, 0, len(m.records))
	for _, rec := range m.records {
		rows = append(rows, table.Row(formatter.HistoryRow(rec)))
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// ── export and clear ─────────────────────────────────────────────────────────

func (m tuiModel) export() (tea.Model, tea.Cmd) {
	res, err := m.app.Export.Export(m.ctx, service.ExportRequest{Layout: csvexport.LayoutFull})
	switch {
	case errors.Is(err, csvexport.ErrEmptyHistory):
		m.notice = m.lastNotice(csvexport.EmptyHistoryNotice)
	case err != nil:
		m.errText = err.Error()
	default:
		m.notice = strings.TrimSpace(formatter.FormatExported(res.Path, res.Rows))
	}
	return m, nil
}

// lastNotice returns the newest queued exporter notice, or fallback.
func (m tuiModel) lastNotice(fallback string) string {
	if m.app.Notices == nil {
		return fallback
	}
	if msgs := m.app.Notices.Drain(); len(msgs) > 0 {
		return msgs[len(msgs)-1]
	}
	return fallback
}

func (m tuiModel) startClear() (tea.Model, tea.Cmd) {
	if len(m.records) == 0 {
		m.notice = "O histórico já está vazio."
		return m, nil
	}
	m.clearAnswer = new(bool)
	m.confirm = clearHistoryForm(len(m.records), m.clearAnswer)
	if m.width > 0 {
		m.confirm = m.confirm.WithWidth(m.width)
	}
	m.focus = focusConfirm
	m.table.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m, m.confirm.Init()
}

func (m tuiModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.finishClear(false)
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		confirmed := *m.clearAnswer
		return m, func() tea.Msg { return clearDecisionMsg{confirmed: confirmed} }
	case huh.StateAborted:
		return m, func() tea.Msg { return clearDecisionMsg{confirmed: false} }
	}
	return m, cmd
}

// finishClear hands the dialog answer to the history as its confirmation.
func (m tuiModel) finishClear(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirm = nil
	m.clearAnswer = nil
	m.focus = focusForm

	_, err := m.app.History.Clear(m.ctx, service.ConfirmFunc(func(string) bool { return confirmed }))
	switch {
	case errors.Is(err, service.ErrClearNotConfirmed):
		m.notice = "Limpeza cancelada."
	case err != nil:
		m.errText = err.Error()
	default:
		m.notice = "Histórico limpo."
		m.reloadHistory()
	}
	return m, m.focusField(m.active)
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Prazo de entrega"))
	b.WriteString("\n\n")

	for i, ti := range m.inputs {
		label := fmt.Sprintf("%-10s", fieldLabels[i])
		if m.focus == focusForm && i == m.active {
			b.WriteString(formatter.StyleHeader.Render("▸ " + label))
		} else {
			b.WriteString(formatter.Dim("  " + label))
		}
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(formatter.ReadinessPill(m.state()))
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(formatter.StyleRed.Render("✖ " + m.errText))
		b.WriteString("\n")
	} else if ev, ok := m.app.Evaluations.Preview(m.inputs[fieldDue].Value(), m.inputs[fieldDelivered].Value()); ok {
		b.WriteString(formatter.FormatPreview(ev))
		b.WriteString("\n")
	}

	if m.result != nil && m.state() == domain.FormSubmitted {
		b.WriteString("\n")
		b.WriteString(formatter.FormatEvaluation(*m.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header(fmt.Sprintf("Histórico (%d)", len(m.records))))
	b.WriteString("\n")
	if len(m.records) == 0 {
		b.WriteString(formatter.Dim(formatter.EmptyHistoryText))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")

	if m.focus == focusConfirm && m.confirm != nil {
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	if m.focus == focusHistory {
		b.WriteString(m.help.View(historyKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(formKeys{m.keys}))
	}
	return b.String()
}
