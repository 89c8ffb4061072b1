package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/arijitsen/examdesk/internal/alloc"
)

type formField int

const (
	fieldPerson formField = iota
	fieldRole
	fieldVenue
	fieldDate
	fieldShift
	fieldMock
	fieldOrderNo
	fieldPageNo
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Person",
	"Role (coordinator/ey)",
	"Venue",
	"Date",
	"Shift (morning/evening/full-day)",
	"Mock test? (y/N)",
	"Order No.",
	"Page No.",
}

// FormResult is the parsed, validated entry the user submitted.
type FormResult struct {
	Person   string
	Role     alloc.Role
	Venue    string
	Date     time.Time
	Shift    alloc.Shift
	MockTest bool
	OrderNo  string
	PageNo   string
}

// Form walks the user through one allocation entry. Parse validation
// happens on submit; conflict checking stays with the caller, which
// holds the allocation set.
type Form struct {
	examKey string
	inputs  [fieldCount]textinput.Model
	focus   formField
	errMsg  string
	result  *FormResult
	aborted bool
}

func NewForm(examKey string, venues []string) *Form {
	f := &Form{examKey: examKey}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[fieldDate].Placeholder = "2025-03-10 or 'next monday'"
	if len(venues) > 0 {
		f.inputs[fieldVenue].Placeholder = strings.Join(venues, ", ")
	}
	f.inputs[fieldPerson].Focus()
	return f
}

func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			f.aborted = true
			return f, tea.Quit
		case "enter", "tab", "down":
			if f.focus == fieldCount-1 && keyMsg.String() == "enter" {
				if f.submit() {
					return f, tea.Quit
				}
				return f, nil
			}
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + 1) % fieldCount
			return f, f.inputs[f.focus].Focus()
		case "shift+tab", "up":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + fieldCount - 1) % fieldCount
			return f, f.inputs[f.focus].Focus()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *Form) submit() bool {
	result, err := f.parse()
	if err != nil {
		f.errMsg = err.Error()
		return false
	}
	f.errMsg = ""
	f.result = result
	return true
}

func (f *Form) parse() (*FormResult, error) {
	person := strings.TrimSpace(f.inputs[fieldPerson].Value())
	if person == "" {
		return nil, fmt.Errorf("person name is required")
	}
	venue := strings.TrimSpace(f.inputs[fieldVenue].Value())
	if venue == "" {
		return nil, fmt.Errorf("venue is required")
	}

	role, err := alloc.ParseRole(f.inputs[fieldRole].Value())
	if err != nil {
		return nil, err
	}
	shift, err := alloc.ParseShift(f.inputs[fieldShift].Value())
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(f.inputs[fieldDate].Value())
	if err != nil {
		return nil, err
	}

	mock := strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.inputs[fieldMock].Value())), "y")

	return &FormResult{
		Person:   person,
		Role:     role,
		Venue:    venue,
		Date:     date,
		Shift:    shift,
		MockTest: mock,
		OrderNo:  strings.TrimSpace(f.inputs[fieldOrderNo].Value()),
		PageNo:   strings.TrimSpace(f.inputs[fieldPageNo].Value()),
	}, nil
}

func (f *Form) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("examdesk — New Allocation"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Exam: " + f.examKey))
	sb.WriteString("\n\n")

	for i := formField(0); i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == f.focus {
			label = labelStyle.Render(label)
		}
		sb.WriteString(fmt.Sprintf("%s\n%s\n", label, f.inputs[i].View()))
	}

	if f.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(f.errMsg))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("Tab: next field • Enter on last field: save • Esc: cancel"))

	return boxStyle.Render(sb.String())
}

// Result returns the submitted entry, or nil when the form was
// cancelled.
func (f *Form) Result() *FormResult {
	if f.aborted {
		return nil
	}
	return f.result
}

// ParseDate accepts both the canonical YYYY-MM-DD layout and natural
// phrases like "tomorrow" or "next monday".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(s, time.Now(), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
