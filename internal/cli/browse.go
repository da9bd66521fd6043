package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/boilerai/boilerplan/internal/cli/formatter"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type coursesLoadedMsg struct {
	courses []domain.CourseRecord
}

type courseDetailMsg struct {
	detail *service.CourseDetail
	err    error
}

type browseKeys struct {
	Up, Down, Open, Filter, Back, Quit key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "prereqs")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseChrome is the number of lines kept free around the course list.
const browseChrome = 5

// courseBrowser is a navigable course list. Enter opens a course's
// prerequisite tree; "/" filters by code or title.
type courseBrowser struct {
	catalog   service.CatalogService
	dept      string
	completed map[string]bool
	done      []string

	courses []domain.CourseRecord
	loading bool
	cursor  int
	offset  int
	height  int

	filter    textinput.Model
	filtering bool

	detail *service.CourseDetail
	err    error

	keys browseKeys
	help help.Model
}

func newCourseBrowser(cat service.CatalogService, dept string, completed []string) *courseBrowser {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "code or title"

	done := make(map[string]bool, len(completed))
	for _, c := range completed {
		done[c] = true
	}
	return &courseBrowser{
		catalog:   cat,
		dept:      dept,
		completed: done,
		done:      completed,
		loading:   true,
		filter:    ti,
		keys:      newBrowseKeys(),
		help:      help.New(),
	}
}

func (m *courseBrowser) Init() tea.Cmd {
	cat, dept := m.catalog, m.dept
	return func() tea.Msg {
		return coursesLoadedMsg{courses: cat.ListCourses(context.Background(), dept)}
	}
}

func (m *courseBrowser) openCourse(code string) tea.Cmd {
	cat := m.catalog
	return func() tea.Msg {
		d, err := cat.GetCourse(context.Background(), code)
		return courseDetailMsg{detail: d, err: err}
	}
}

func (m *courseBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll()
		return m, nil

	case coursesLoadedMsg:
		m.loading = false
		m.courses = msg.courses
		return m, nil

	case courseDetailMsg:
		m.detail, m.err = msg.detail, msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.filtering:
			return m.updateFilter(msg)
		case m.detail != nil || m.err != nil:
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *courseBrowser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()
	switch {
	case key.Matches(msg, m.keys.Quit), msg.Type == tea.KeyEsc:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(visible) {
			return m, m.openCourse(visible[m.cursor].Code)
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	}
	m.scroll()
	return m, nil
}

func (m *courseBrowser) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor, m.offset = 0, 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor, m.offset = 0, 0
	return m, cmd
}

func (m *courseBrowser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.detail, m.err = nil, nil
	}
	return m, nil
}

// visible returns the courses matching the filter. Spaces are ignored so
// "cs251" finds CS 25100.
func (m *courseBrowser) visible() []domain.CourseRecord {
	q := compactLower(m.filter.Value())
	if q == "" {
		return m.courses
	}
	var out []domain.CourseRecord
	for _, c := range m.courses {
		if strings.Contains(compactLower(c.Code), q) || strings.Contains(compactLower(c.Title), q) {
			out = append(out, c)
		}
	}
	return out
}

func compactLower(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// listHeight is the number of course rows that fit; 0 means unbounded.
func (m *courseBrowser) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-browseChrome, 3)
}

func (m *courseBrowser) scroll() {
	h := m.listHeight()
	if h == 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m *courseBrowser) View() string {
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n" +
			m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit})
	}
	if m.detail != nil {
		return formatter.FormatCourseDetail(m.detail, m.done) + "\n" +
			m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit})
	}
	if m.loading {
		return "\n  " + formatter.Dim("Loading courses...")
	}

	visible := m.visible()
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("Course Catalog") + "  " + formatter.Dim(fmt.Sprintf("%d courses", len(visible))) + "\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
	}
	b.WriteString("\n")

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No courses match.") + "\n")
	}

	end := len(visible)
	if h := m.listHeight(); h > 0 && m.offset+h < end {
		end = m.offset + h
	}
	for i := m.offset; i < end; i++ {
		c := visible[i]
		cursor := "  "
		code := fmt.Sprintf("%-11s", c.Code)
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			code = formatter.Bold(code)
		}
		mark := " "
		if m.completed[c.Code] {
			mark = formatter.StyleGreen.Render("✔")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s  %s\n",
			cursor, mark, code, c.Title, formatter.Dim(formatter.Credits(c.Credits)), formatter.OfferedLabel(c)))
	}

	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Filter, m.keys.Quit,
	}))
	return b.String()
}
