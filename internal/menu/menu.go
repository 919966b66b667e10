// Package menu реализует консольный сеанс работы с каталогом.
//
// Сеанс читает команды построчно из любого io.Reader и пишет в io.Writer,
// поэтому его можно запускать как в терминале, так и по готовому сценарию.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/matcher"
	"github.com/hazadus/go-landscape/internal/sorting"
	"github.com/hazadus/go-landscape/internal/track"
)

const (
	welcomeText = "Добро пожаловать в Landscape"
	goodByeText = "Спасибо, что пользуетесь Landscape"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Item - пункт меню
type Item struct {
	Label  string
	Action func(s *Session)
}

// Options задает начальное состояние сеанса
type Options struct {
	Formatter  format.Formatter
	Ordering   sorting.Ordering
	Descending bool
	// Echo повторяет прочитанные строки в выводе, когда ввод не с терминала
	Echo bool
	// Styled включает оформление заголовков lipgloss
	Styled bool
}

// Session - состояние консольного сеанса
type Session struct {
	container *track.Container
	in        *bufio.Scanner
	out       io.Writer
	opts      Options

	formatters []format.Formatter
	formatter  format.Formatter
	orderings  []sorting.Ordering
	ordering   sorting.Ordering
	ascending  bool
	matchers   []matcher.Matcher

	items []Item
}

// New создает сеанс над контейнером
func New(container *track.Container, in io.Reader, out io.Writer, opts Options) *Session {
	s := &Session{
		container:  container,
		in:         bufio.NewScanner(in),
		out:        out,
		opts:       opts,
		formatters: format.All(),
		formatter:  opts.Formatter,
		orderings:  sorting.All(),
		ordering:   opts.Ordering,
		ascending:  !opts.Descending,
		matchers:   matcher.Defaults(),
	}
	if s.formatter == nil {
		s.formatter = format.Long{}
	}

	s.items = []Item{
		{"show menu", (*Session).showMenu},
		{"display selection", (*Session).displaySelection},
		{"edit", (*Session).edit},
		{"filter", (*Session).filter},
		{"reset", (*Session).reset},
		{"remove selection", (*Session).removeSelection},
		{"add", (*Session).add},
		{"save selection as .csv file", (*Session).saveCSV},
		{"save selection as .xml file", (*Session).saveXML},
		{"load from .csv file", (*Session).loadCSV},
		{"load from .xml file", (*Session).loadXML},
		{"reverse sorting order", (*Session).reverseOrder},
		{"select sorting", (*Session).selectSorting},
		{"select formatting", (*Session).selectFormatting},
	}
	return s
}

// Items возвращает пункты меню в порядке номеров
func (s *Session) Items() []Item {
	return s.items
}

// Formatter возвращает текущий формат вывода
func (s *Session) Formatter() format.Formatter {
	return s.formatter
}

// Ordering возвращает текущий порядок сортировки
func (s *Session) Ordering() (sorting.Ordering, bool) {
	return s.ordering, s.ascending
}

// Run выполняет сеанс до выхода пользователя или конца ввода
func (s *Session) Run() {
	s.banner(welcomeText)
	s.showMenu()

	for {
		line, ok := s.readLine(": ")
		if !ok {
			break
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.rangeHint(len(s.items))
			continue
		}

		if choice >= 0 && choice < len(s.items) {
			s.items[choice].Action(s)
			continue
		}

		answer, ok := s.readLine("exit? (1=yes)")
		if !ok || strings.TrimSpace(answer) == "1" {
			break
		}
	}

	s.banner(goodByeText)
}

func (s *Session) banner(text string) {
	if s.opts.Styled {
		text = bannerStyle.Render(text)
	}
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(msg string, args ...any) {
	fmt.Fprintf(s.out, "\t"+msg+"\n", args...)
}

// readLine выводит приглашение и читает строку.
// Второе значение равно false, если ввод закончился.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	line := s.in.Text()
	if s.opts.Echo {
		fmt.Fprintln(s.out, line)
	}
	return line, true
}

// readChoice читает номер из диапазона [0, n)
func (s *Session) readChoice(prompt string, n int) (int, bool) {
	line, ok := s.readLine("\t" + prompt)
	if !ok {
		return 0, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 0 || choice >= n {
		s.rangeHint(n)
		return 0, false
	}
	return choice, true
}

func (s *Session) rangeHint(n int) {
	s.printf("Введите число от 0 (включительно) до %d (не включительно).", n)
}

func (s *Session) showMenu() {
	for i, item := range s.items {
		line := fmt.Sprintf("%d\t%s", i, item.Label)
		if s.opts.Styled {
			line = itemStyle.Render(line)
		}
		fmt.Fprintln(s.out, line)
	}
}

func (s *Session) displaySelection() {
	s.printf("текущая выборка:")
	s.display()
}

// display выводит выборку текущим форматом
func (s *Session) display() {
	if s.container.Size() == 0 {
		s.printf("в каталоге нет записей.")
		return
	}
	selection := s.container.Selection()
	if len(selection) == 0 {
		s.printf("выборка пуста.")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.formatter.Header())
	fmt.Fprintln(s.out, s.formatter.TopSeparator())
	for _, t := range selection {
		fmt.Fprintln(s.out, s.formatter.Format(t))
	}
	fmt.Fprintln(s.out)

	s.printf("%d из %d записей выбрано", len(selection), s.container.Size())
}

func (s *Session) filter() {
	if s.container.SelectionSize() == 0 {
		s.printf("Выборка пуста. Сначала сбросьте ее (пункт 4).")
		return
	}

	for i, m := range s.matchers {
		s.printf("%d: %s", i, m)
	}
	choice, ok := s.readChoice("выберите фильтр: ", len(s.matchers))
	if !ok {
		return
	}
	pattern, ok := s.readLine("\tвведите шаблон: ")
	if !ok {
		return
	}

	m := s.matchers[choice]
	if err := m.SetPattern(pattern); err != nil {
		s.printf("шаблон отклонен (%v), используется %s", err, m)
	}
	s.printf("%s: отфильтровано записей: %d", m, s.container.Filter(m))
}

func (s *Session) reset() {
	s.container.Reset()
	for _, m := range s.matchers {
		m.Reset()
	}
	s.printf("Выборка сброшена. Выбраны все записи каталога.")
}

func (s *Session) removeSelection() {
	s.printf("Удалено записей из каталога: %d", s.container.Remove())
}

func (s *Session) direction() string {
	if s.ascending {
		return "по возрастанию"
	}
	return "по убыванию"
}

func (s *Session) reverseOrder() {
	s.ascending = !s.ascending
	s.container.Sort(s.ordering, s.ascending)
	s.printf("выборка отсортирована %s (%s)", s.ordering, s.direction())
}

func (s *Session) selectSorting() {
	for i, o := range s.orderings {
		s.printf("%d: %s", i, o)
	}
	choice, ok := s.readChoice("выберите сортировку: ", len(s.orderings))
	if !ok {
		return
	}
	s.ordering = s.orderings[choice]
	s.container.Sort(s.ordering, s.ascending)
	s.printf("выборка отсортирована %s (%s)", s.ordering, s.direction())
}

func (s *Session) selectFormatting() {
	for i, f := range s.formatters {
		s.printf("%d: %s", i, f)
	}
	choice, ok := s.readChoice("выберите формат: ", len(s.formatters))
	if !ok {
		return
	}
	s.formatter = s.formatters[choice]
	s.printf("выбран формат: %s", s.formatter)
}
