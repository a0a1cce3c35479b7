package lifecal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"daytrace/internal/tui/theme"
)

const maxJumpResults = 8

type jumpOption struct {
	Age   int
	Year  int
	Label string
}

// jumpModel is the age picker: type an age or a year, pick from the fuzzy
// matches, enter to scroll there
type jumpModel struct {
	input   textinput.Model
	options []jumpOption
	matches []int
	cursor  int
}

func newJumpModel(birthYear, lifeExpectancy, currentAge int) jumpModel {
	ti := textinput.New()
	ti.Placeholder = "age or year"
	ti.CharLimit = 16
	ti.Width = 24
	ti.Focus()

	options := make([]jumpOption, 0, lifeExpectancy+1)
	for age := 0; age <= lifeExpectancy; age++ {
		options = append(options, jumpOption{
			Age:   age,
			Year:  birthYear + age,
			Label: fmt.Sprintf("%d 岁 · %d", age, birthYear+age),
		})
	}

	j := jumpModel{input: ti, options: options}
	j.filter()
	for i, idx := range j.matches {
		if options[idx].Age == currentAge {
			j.cursor = i
		}
	}
	return j
}

// filter ranks options against the query. An exact age or year goes first,
// then the fuzzy matches.
func (j *jumpModel) filter() {
	query := strings.TrimSpace(j.input.Value())
	j.cursor = 0

	if query == "" {
		j.matches = make([]int, len(j.options))
		for i := range j.options {
			j.matches[i] = i
		}
		return
	}

	j.matches = j.matches[:0]
	exact := -1
	if n, err := strconv.Atoi(query); err == nil {
		for i, o := range j.options {
			if o.Age == n || o.Year == n {
				exact = i
				j.matches = append(j.matches, i)
				break
			}
		}
	}

	labels := make([]string, len(j.options))
	for i, o := range j.options {
		labels[i] = o.Label
	}
	for _, match := range fuzzy.Find(query, labels) {
		if match.Index != exact {
			j.matches = append(j.matches, match.Index)
		}
	}
}

// update returns the chosen option once enter is pressed, and done=true
// when the picker should close.
func (j jumpModel) update(msg tea.KeyMsg) (jumpModel, *jumpOption, bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return j, nil, true, nil
	case "enter":
		if j.cursor < len(j.matches) {
			opt := j.options[j.matches[j.cursor]]
			return j, &opt, true, nil
		}
		return j, nil, true, nil
	case "up", "ctrl+p":
		if j.cursor > 0 {
			j.cursor--
		}
		return j, nil, false, nil
	case "down", "ctrl+n":
		if j.cursor < len(j.matches)-1 {
			j.cursor++
		}
		return j, nil, false, nil
	}

	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	j.filter()
	return j, nil, false, cmd
}

func (j jumpModel) view() string {
	var sb strings.Builder
	sb.WriteString(theme.ModalTitle.Render("Jump to age"))
	sb.WriteString("\n\n")
	sb.WriteString(j.input.View())
	sb.WriteString("\n\n")

	if len(j.matches) == 0 {
		sb.WriteString(theme.Muted.Render("no match"))
		sb.WriteString("\n")
	}

	// Keep the cursor inside the visible window
	start := 0
	if j.cursor >= maxJumpResults {
		start = j.cursor - maxJumpResults + 1
	}
	end := min(start+maxJumpResults, len(j.matches))
	for i := start; i < end; i++ {
		label := j.options[j.matches[i]].Label
		if i == j.cursor {
			sb.WriteString(theme.Cursor.Render("> " + label))
		} else {
			sb.WriteString("  " + label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(theme.ModalHelp.Render("enter: jump • ↑/↓: select • esc: cancel"))
	return theme.ModalBox.Render(sb.String())
}
