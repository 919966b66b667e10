// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/sorting"
	"github.com/hazadus/go-landscape/internal/track"
	"github.com/hazadus/go-landscape/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	headerStyle       = lipgloss.NewStyle().PaddingLeft(4).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackEditMsg отправляется при выборе трека для редактирования
type TrackEditMsg struct {
	Track *data.Track
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track *data.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.track.Title(), i.track.Writer().Name(), i.track.Performer().Name())
}

// trackItemDelegate отображает трек текущим форматом вывода
type trackItemDelegate struct {
	formatter format.Formatter
	height    int
}

func newDelegate(f format.Formatter) trackItemDelegate {
	// Высота элемента равна числу строк в представлении трека
	lines := strings.Count(f.Format(data.NewTrack()), "\n") + 1
	return trackItemDelegate{formatter: f, height: lines}
}

func (d trackItemDelegate) Height() int                             { return d.height }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	str := fitLines(d.formatter.Format(i.track), m.Width()-itemIndent)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// itemIndent - отступ элемента списка вместе с маркером выбора
const itemIndent = 4

// fitLines обрезает каждую строку представления трека до ширины экрана
func fitLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = utils.TruncateString(line, width)
	}
	return strings.Join(lines, "\n")
}

// Model представляет модель экрана списка треков
type Model struct {
	list      list.Model
	container *track.Container
	formatter format.Formatter
	ordering  sorting.Ordering
	ascending bool
	quitting  bool
}

// NewModel создает новую модель списка треков по текущей выборке контейнера
func NewModel(container *track.Container, formatter format.Formatter, ordering sorting.Ordering, ascending bool) *Model {
	l := list.New(nil, newDelegate(formatter), 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		list:      l,
		container: container,
		formatter: formatter,
		ordering:  ordering,
		ascending: ascending,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData сортирует выборку и обновляет элементы списка
func (m *Model) RefreshData() {
	m.container.Sort(m.ordering, m.ascending)
	selection := m.container.Selection()

	items := make([]list.Item, len(selection))
	for i, t := range selection {
		items[i] = trackItem{track: t}
	}
	m.list.SetItems(items)

	direction := "по возрастанию"
	if !m.ascending {
		direction = "по убыванию"
	}
	m.list.Title = fmt.Sprintf("Выборка: %d из %d • %s, %s • %s",
		len(selection), m.container.Size(), m.ordering, direction,
		utils.FormatDurationFromSeconds(utils.TotalDuration(selection)))
}

// Ordering возвращает текущий порядок сортировки
func (m *Model) Ordering() (sorting.Ordering, bool) {
	return m.ordering, m.ascending
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 6) // Оставляем место для шапки и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши достаются списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "e", "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				return m, func() tea.Msg {
					return TrackEditMsg{Track: item.track}
				}
			}
			return m, nil

		case "s":
			orderings := sorting.All()
			m.ordering = orderings[(int(m.ordering)+1)%len(orderings)]
			m.RefreshData()
			return m, nil

		case "r":
			m.ascending = !m.ascending
			m.RefreshData()
			return m, nil
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	var b strings.Builder
	if header := m.formatter.Header(); header != "" && !strings.Contains(header, "\n") {
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")
		if sep := m.formatter.TopSeparator(); sep != "" {
			b.WriteString(itemStyle.Render(sep))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("e: редактировать • s: сортировка • r: обратный порядок • /: поиск • q: выход"))
	return b.String()
}
