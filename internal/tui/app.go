package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/tasks-tui/internal/notify"
	"github.com/pdxmph/tasks-tui/internal/task"
)

// Model represents the main application state
type Model struct {
	tracker  *task.Tracker
	notifier *notify.Manager

	filter   task.Filter
	search   textinput.Model
	selected int
	width    int
	height   int

	searchMode bool
	err        error

	// Filter selection mode
	filterMode     bool
	filterSelected int

	// Add mode
	addMode        bool
	addField       int
	addInputs      []textinput.Model
	addCategoryIdx int

	// Delete confirmation mode
	deleteConfirmMode bool
	deleteTaskID      string
	deleteTaskText    string

	// Toast state. toastSeq invalidates the dismiss timer of any
	// earlier toast so a new one re-arms the full duration.
	toast    string
	toastSeq int

	// Reminder loop state: task ids already notified as overdue.
	reminderEvery time.Duration
	notified      map[string]bool

	progress progress.Model
}

// How long a toast stays visible.
const toastDuration = 4500 * time.Millisecond

// Add field indices
const (
	AddFieldText = iota
	AddFieldDeadline
	AddFieldCategory
	AddFieldCount // Total number of fields
)

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dueSoonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeFilterStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)

	inactiveFilterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("208")).
			Foreground(lipgloss.Color("232")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// Category colors. Unknown labels fall back to the neutral default.
var categoryColors = map[string]lipgloss.Color{
	"Work":     lipgloss.Color("39"),
	"Study":    lipgloss.Color("135"),
	"Personal": lipgloss.Color("114"),
	"Fitness":  lipgloss.Color("208"),
}

var defaultCategoryColor = lipgloss.Color("246")

func categoryStyle(category string) lipgloss.Style {
	color, ok := categoryColors[category]
	if !ok {
		color = defaultCategoryColor
	}
	return lipgloss.NewStyle().Foreground(color)
}

// toastExpiredMsg dismisses the toast whose sequence number it carries
type toastExpiredMsg struct {
	seq int
}

// reminderTickMsg drives the periodic overdue check
type reminderTickMsg time.Time

// New creates a new application model
func New(tracker *task.Tracker, notifier *notify.Manager, reminderEvery time.Duration) (*Model, error) {
	// Setup search input
	ti := textinput.New()
	ti.Placeholder = "Search tasks..."
	ti.Width = 30
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// Setup add inputs
	addInputs := make([]textinput.Model, AddFieldCount)
	for i := range addInputs {
		addInputs[i] = textinput.New()
		addInputs[i].Width = 40

		switch i {
		case AddFieldText:
			addInputs[i].Placeholder = "Task description"
			addInputs[i].CharLimit = 200
		case AddFieldDeadline:
			addInputs[i].Placeholder = "YYYY-MM-DD HH:MM"
			addInputs[i].CharLimit = 16
		}
	}

	if reminderEvery <= 0 {
		reminderEvery = time.Minute
	}

	return &Model{
		tracker:       tracker,
		notifier:      notifier,
		filter:        task.FilterAll,
		search:        ti,
		addInputs:     addInputs,
		reminderEvery: reminderEvery,
		notified:      make(map[string]bool),
		progress:      progress.New(progress.WithDefaultGradient()),
	}, nil
}

// Init starts the reminder loop
func (m Model) Init() tea.Cmd {
	return m.reminderTick()
}

func (m Model) reminderTick() tea.Cmd {
	return tea.Tick(m.reminderEvery, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			listWidth := m.width * 2 / 3
			m.search.Width = listWidth - 6
			m.progress.Width = listWidth - 6
		}
		return m, nil

	case toastExpiredMsg:
		// A newer toast re-armed the timer; ignore the stale one
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case reminderTickMsg:
		cmd := m.checkReminders(time.Time(msg))
		return m, tea.Batch(m.reminderTick(), cmd)

	case tea.KeyMsg:
		// Filter selection mode handling
		if m.filterMode {
			switch msg.String() {
			case "esc":
				m.filterMode = false
				m.filterSelected = 0
				return m, nil
			case "enter":
				m.filter = task.Filters[m.filterSelected]
				m.filterMode = false
				m.filterSelected = 0
				m.selected = m.ensureValidSelection()
				return m, nil
			case "j", "down":
				if m.filterSelected < len(task.Filters)-1 {
					m.filterSelected++
				}
			case "k", "up":
				if m.filterSelected > 0 {
					m.filterSelected--
				}
			}
			return m, nil
		}

		// Delete confirmation mode handling
		if m.deleteConfirmMode {
			switch msg.String() {
			case "y", "Y":
				// Unknown ids are a silent no-op
				if _, err := m.tracker.Delete(m.deleteTaskID); err != nil {
					m.err = err
				}
				m.deleteConfirmMode = false
				m.deleteTaskID = ""
				m.deleteTaskText = ""
				m.selected = m.ensureValidSelection()
				return m, nil
			default:
				// Any other key cancels
				m.deleteConfirmMode = false
				m.deleteTaskID = ""
				m.deleteTaskText = ""
				return m, nil
			}
		}

		// Add mode handling
		if m.addMode {
			switch msg.String() {
			case "esc":
				m.exitAddMode()
				return m, nil

			case "enter":
				return m.saveNewTask()

			case "tab", "down":
				if m.addField < AddFieldCount-1 {
					if m.addField != AddFieldCategory {
						m.addInputs[m.addField].Blur()
					}
					m.addField++
					if m.addField != AddFieldCategory {
						m.addInputs[m.addField].Focus()
					}
				}
				return m, textinput.Blink

			case "shift+tab", "up":
				if m.addField > 0 {
					if m.addField != AddFieldCategory {
						m.addInputs[m.addField].Blur()
					}
					m.addField--
					m.addInputs[m.addField].Focus()
				}
				return m, textinput.Blink

			case "left", "right":
				if m.addField == AddFieldCategory {
					if msg.String() == "left" && m.addCategoryIdx > 0 {
						m.addCategoryIdx--
					} else if msg.String() == "right" && m.addCategoryIdx < len(task.Categories)-1 {
						m.addCategoryIdx++
					}
					return m, nil
				}
			}

			// Update the active text input
			if m.addField != AddFieldCategory {
				var cmd tea.Cmd
				m.addInputs[m.addField], cmd = m.addInputs[m.addField].Update(msg)
				return m, cmd
			}
			return m, nil
		}

		// Search mode handling
		if m.searchMode {
			switch msg.String() {
			case "esc":
				m.searchMode = false
				m.search.Reset()
				m.selected = m.ensureValidSelection()
				return m, nil
			case "enter":
				m.searchMode = false
				m.selected = m.ensureValidSelection()
				return m, nil
			case "up":
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			case "down":
				if m.selected < len(m.visibleRows())-1 {
					m.selected++
				}
				return m, nil
			}

			// Pass all other keys to the textinput
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)

			// Ensure selection is valid after the term changes
			m.selected = m.ensureValidSelection()
			return m, cmd
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.visibleRows())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "a":
			// Enter add mode
			m.addMode = true
			m.addField = AddFieldText
			m.addCategoryIdx = 0
			for i := range m.addInputs {
				m.addInputs[i].Reset()
				m.addInputs[i].Blur()
			}
			m.addInputs[AddFieldText].Focus()
			return m, textinput.Blink

		case " ", "x":
			// Toggle completion, preserving filter and search
			rows := m.visibleRows()
			if len(rows) > 0 && m.selected < len(rows) {
				if _, err := m.tracker.Toggle(rows[m.selected].Task.ID); err != nil {
					m.err = err
				}
				m.selected = m.ensureValidSelection()
			}

		case "d":
			// Delete task - enter confirmation mode
			rows := m.visibleRows()
			if len(rows) > 0 && m.selected < len(rows) {
				m.deleteConfirmMode = true
				m.deleteTaskID = rows[m.selected].Task.ID
				m.deleteTaskText = rows[m.selected].Task.Text
			}
			return m, nil

		case "/":
			m.searchMode = true
			m.search.Reset()
			m.search.Focus()
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)

		case "f":
			// Enter filter selection mode, preselecting the active filter
			m.filterMode = true
			m.filterSelected = 0
			for i, f := range task.Filters {
				if f == m.filter {
					m.filterSelected = i
					break
				}
			}
			return m, nil

		case "esc":
			// Clear search and return to full list
			if m.search.Value() != "" {
				m.search.Reset()
				m.selected = m.ensureValidSelection()
				return m, nil
			}

		case "C":
			// Clear filter and search
			m.filter = task.FilterAll
			m.search.Reset()
			m.selected = m.ensureValidSelection()
			return m, nil
		}
	}

	return m, nil
}

// saveNewTask validates the add form and appends the task. Validation
// failures surface as a toast and leave the form open.
func (m Model) saveNewTask() (tea.Model, tea.Cmd) {
	text := m.addInputs[AddFieldText].Value()
	if strings.TrimSpace(text) == "" {
		return m.showToast("Task text cannot be empty")
	}

	deadlineInput := m.addInputs[AddFieldDeadline].Value()
	if strings.TrimSpace(deadlineInput) == "" {
		return m.showToast("Task needs a deadline")
	}
	deadline, err := task.ParseDeadline(deadlineInput)
	if err != nil {
		return m.showToast("Deadline must look like 2024-07-01 14:30")
	}

	if _, err := m.tracker.Add(text, deadline, task.Categories[m.addCategoryIdx]); err != nil {
		return m.showToast(err.Error())
	}

	m.exitAddMode()

	// A new task resets the view to everything
	m.filter = task.FilterAll
	m.search.Reset()
	m.selected = m.ensureValidSelection()
	return m, nil
}

func (m *Model) exitAddMode() {
	m.addMode = false
	m.addField = 0
	for i := range m.addInputs {
		m.addInputs[i].Blur()
	}
}

// showToast displays a transient message and arms its dismiss timer.
// Re-arming bumps the sequence so an earlier timer cannot dismiss a
// newer toast early.
func (m Model) showToast(text string) (Model, tea.Cmd) {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// checkReminders notifies once per task when it becomes overdue.
// Desktop notification first, toast fallback when that fails.
func (m *Model) checkReminders(now time.Time) tea.Cmd {
	current := make(map[string]bool)
	var firstMissed string

	for _, t := range m.tracker.Tasks() {
		if !t.IsOverdue(now) {
			continue
		}
		current[t.ID] = true
		if m.notified[t.ID] {
			continue
		}
		m.notified[t.ID] = true

		body := t.Text
		if t.Deadline != nil {
			body = fmt.Sprintf("%s (due %s)", t.Text, t.Deadline.Format("2006-01-02 15:04"))
		}
		if err := m.notifier.Push("Task overdue", body); err != nil && firstMissed == "" {
			firstMissed = t.Text
		}
	}

	// Forget tasks that stopped being overdue so they notify again
	// if they come back.
	for id := range m.notified {
		if !current[id] {
			delete(m.notified, id)
		}
	}

	if firstMissed != "" {
		var cmd tea.Cmd
		*m, cmd = m.showToast("Overdue: " + firstMissed)
		return cmd
	}
	return nil
}

// projection computes rows and counts for the current view state.
func (m Model) projection() ([]task.Row, task.Counts) {
	return task.Project(m.tracker.Tasks(), m.filter, m.search.Value(), time.Now())
}

// visibleRows returns the rows in display order: pending tasks first,
// completed tasks after, regardless of the active filter.
func (m Model) visibleRows() []task.Row {
	rows, _ := m.projection()
	grouped := make([]task.Row, 0, len(rows))
	for _, r := range rows {
		if !r.Task.Completed {
			grouped = append(grouped, r)
		}
	}
	for _, r := range rows {
		if r.Task.Completed {
			grouped = append(grouped, r)
		}
	}
	return grouped
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	rows := m.visibleRows()
	if len(rows) == 0 {
		return 0
	}
	if m.selected >= len(rows) {
		return len(rows) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	listWidth := m.width * 2 / 3
	detailWidth := m.width - listWidth - 3 // account for borders

	listView := m.renderList(listWidth, m.height-3)
	detailView := m.renderDetail(detailWidth, m.height-3)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(listWidth).Height(m.height-3).Render(listView),
		borderStyle.Width(detailWidth).Height(m.height-3).Render(detailView),
	)

	status := m.renderStatus()
	view := lipgloss.JoinVertical(lipgloss.Left, content, status)

	if m.filterMode {
		return m.renderFilterSelection()
	}

	if m.addMode {
		return m.renderAddForm()
	}

	if m.deleteConfirmMode {
		return m.renderDeleteConfirmation()
	}

	return view
}

// renderList renders the task list with its stats header
func (m Model) renderList(width, height int) string {
	var lines []string

	if m.searchMode {
		searchView := m.search.View()
		if searchView == "" {
			searchView = "> " + m.search.Placeholder
		}
		lines = append(lines, searchView)
		lines = append(lines, "")
	}

	_, counts := m.projection()

	// Filter bar, with the active filter highlighted
	var filterParts []string
	for _, f := range task.Filters {
		if f == m.filter {
			filterParts = append(filterParts, activeFilterStyle.Render(string(f)))
		} else {
			filterParts = append(filterParts, inactiveFilterStyle.Render(string(f)))
		}
	}
	lines = append(lines, strings.Join(filterParts, ""))

	// Aggregates are over everything matching the search, not just
	// the rows passing the active filter.
	lines = append(lines, fmt.Sprintf("Total %d • Pending %d • Completed %d • Overdue %d • Today %d",
		counts.Total, counts.Pending, counts.Completed, counts.Overdue, counts.Today))
	lines = append(lines, fmt.Sprintf("%d/%d tasks completed", counts.Completed, counts.Total))
	lines = append(lines, m.progress.ViewAs(float64(counts.Percent())/100))
	lines = append(lines, strings.Repeat("─", width-2))

	grouped := m.visibleRows()
	pendingCount := 0
	for _, r := range grouped {
		if !r.Task.Completed {
			pendingCount++
		}
	}
	completedCount := len(grouped) - pendingCount

	// Calculate visible range
	headerLines := len(lines) + 2 // group headings
	visibleHeight := height - headerLines
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	lines = append(lines, labelStyle.Render(fmt.Sprintf("Pending (%d)", pendingCount)))
	if pendingCount == 0 {
		lines = append(lines, labelStyle.Render("  nothing pending"))
	}

	completedHeading := false
	for i := startIdx; i < len(grouped) && i < startIdx+visibleHeight; i++ {
		r := grouped[i]
		if r.Task.Completed && !completedHeading {
			lines = append(lines, labelStyle.Render(fmt.Sprintf("Completed (%d)", completedCount)))
			completedHeading = true
		}
		lines = append(lines, m.renderRow(r, i == m.selected, width))
	}
	// The heading still shows when the completed rows are scrolled
	// out of view, but an empty group gets no heading at all
	if !completedHeading && completedCount > 0 {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("Completed (%d)", completedCount)))
	}

	return strings.Join(lines, "\n")
}

// renderRow renders a single task line
func (m Model) renderRow(r task.Row, selected bool, width int) string {
	var line string

	// Status marker
	switch {
	case r.Task.Completed:
		line = "  [x] "
	case r.Overdue:
		line = overdueStyle.Render("! ") + "[ ] "
	case r.DueSoon:
		line = dueSoonStyle.Render("~ ") + "[ ] "
	default:
		line = "  [ ] "
	}

	text := r.Task.Text
	if r.Task.Completed {
		text = doneStyle.Render(text)
	}
	line += text

	line += " " + categoryStyle(r.Task.Category).Render("["+r.Task.Category+"]")

	if r.Task.Deadline != nil {
		due := r.Task.Deadline.Format("01-02 15:04")
		line += " " + labelStyle.Render("due "+due)
	}

	if selected {
		line = selectedStyle.Render(stripForSelection(r, width))
	}
	return line
}

// stripForSelection rebuilds the row without per-segment colors so
// the selection background covers the whole line cleanly.
func stripForSelection(r task.Row, width int) string {
	marker := "  [ ] "
	switch {
	case r.Task.Completed:
		marker = "  [x] "
	case r.Overdue:
		marker = "! [ ] "
	case r.DueSoon:
		marker = "~ [ ] "
	}
	line := marker + r.Task.Text + " [" + r.Task.Category + "]"
	if r.Task.Deadline != nil {
		line += " due " + r.Task.Deadline.Format("01-02 15:04")
	}
	return line
}

// renderDetail renders the selected task's details
func (m Model) renderDetail(width, height int) string {
	rows := m.visibleRows()
	if len(rows) == 0 || m.selected >= len(rows) {
		return "No task selected"
	}

	r := rows[m.selected]
	t := r.Task
	var lines []string

	lines = append(lines, wrapText(t.Text, width-2)...)
	lines = append(lines, strings.Repeat("─", width-2))
	lines = append(lines, "")

	lines = append(lines, "Category: "+categoryStyle(t.Category).Render(t.Category))

	if t.Completed {
		lines = append(lines, "Status: completed")
	} else {
		lines = append(lines, "Status: pending")
	}

	if t.Deadline != nil {
		lines = append(lines, fmt.Sprintf("Deadline: %s", t.Deadline.Format("2006-01-02 15:04")))
	} else {
		lines = append(lines, "Deadline: none")
	}

	switch {
	case r.Overdue && r.DueToday:
		lines = append(lines, overdueStyle.Render("Overdue (was due today)"))
	case r.Overdue:
		lines = append(lines, overdueStyle.Render("Overdue"))
	case r.DueToday:
		lines = append(lines, dueSoonStyle.Render("Due today"))
	case r.DueSoon:
		lines = append(lines, dueSoonStyle.Render("Due soon"))
	}

	lines = append(lines, "")
	days := int(time.Since(t.CreatedAt).Hours() / 24)
	lines = append(lines, labelStyle.Render(fmt.Sprintf("Created: %s (%d days ago)",
		t.CreatedAt.Format("2006-01-02"), days)))

	return strings.Join(lines, "\n")
}

// renderStatus renders the toast (if any) above the help line
func (m Model) renderStatus() string {
	help := m.renderHelp()
	if m.toast != "" {
		return toastStyle.Render(m.toast) + "\n" + help
	}
	return help
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.deleteConfirmMode {
		return " y: confirm delete • any other key: cancel"
	}

	if m.filterMode {
		return " j/k: navigate • Enter: select • Esc: cancel"
	}

	if m.addMode {
		return " Tab/↓: next field • ←/→: category • Enter: save • Esc: cancel"
	}

	if m.searchMode {
		return " Type to search • ↑/↓: navigate • Enter: confirm • Esc: cancel"
	}

	help := " j/k: navigate • a: add • space/x: toggle • d: delete • /: search • f: filter"

	if m.filter != task.FilterAll || m.search.Value() != "" {
		help += " • C: clear all"
	}

	if m.search.Value() != "" {
		help += " • Esc: clear search"
	}

	help += " • q: quit"

	return help
}

// renderFilterSelection renders the filter selection overlay
func (m Model) renderFilterSelection() string {
	var lines []string
	lines = append(lines, "Show tasks:")
	lines = append(lines, "")

	for i, f := range task.Filters {
		line := fmt.Sprintf("  %s", f)
		if f == task.FilterAll {
			line = "  all (clear filter)"
		}
		if i == m.filterSelected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, "Press Enter to confirm, Esc to cancel")

	return m.centeredBox(strings.Join(lines, "\n"), 0)
}

// renderAddForm renders the add-task overlay
func (m Model) renderAddForm() string {
	var lines []string
	lines = append(lines, "New task")
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	fieldLabels := []string{
		"Text:      ",
		"Deadline:  ",
		"Category:  ",
	}

	for i, label := range fieldLabels {
		var fieldView string

		if i == AddFieldCategory {
			category := task.Categories[m.addCategoryIdx]
			rendered := categoryStyle(category).Render(category)
			if i == m.addField {
				fieldView = label + selectedStyle.Render(fmt.Sprintf("< %s >", category))
			} else {
				fieldView = label + "  " + rendered + "  "
			}
		} else {
			if i == m.addField {
				fieldView = label + m.addInputs[i].View()
			} else {
				value := m.addInputs[i].Value()
				if value == "" {
					value = m.addInputs[i].Placeholder
				}
				fieldView = label + value
			}
		}

		lines = append(lines, fieldView)
		lines = append(lines, "")
	}

	lines = append(lines, "Tab/↓: next field • ←/→: category • Enter: save • Esc: cancel")

	if m.toast != "" {
		lines = append(lines, "")
		lines = append(lines, toastStyle.Render(m.toast))
	}

	return m.centeredBox(strings.Join(lines, "\n"), 60)
}

// renderDeleteConfirmation renders the delete confirmation prompt
func (m Model) renderDeleteConfirmation() string {
	width := 60
	height := 7

	prompt := fmt.Sprintf("Delete task '%s'? (y/n)", m.deleteTaskText)

	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(width).
		Height(height).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// centeredBox wraps content in a bordered box centered on the screen
func (m Model) centeredBox(content string, width int) string {
	style := borderStyle.
		Padding(1).
		Background(lipgloss.Color("235"))
	if width > 0 {
		style = style.Width(width)
	}
	box := style.Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
