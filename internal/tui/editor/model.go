// Package editor содержит модель экрана редактирования трека для TUI
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/track"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// TrackSavedMsg отправляется когда трек успешно сохранен
type TrackSavedMsg struct{}

// GoBackMsg отправляется при выходе из редактора
type GoBackMsg struct{}

// fieldType определяет тип поля для редактирования
type fieldType int

const (
	titleField fieldType = iota
	writerField
	performerField
	durationField
	yearField
	numFields
)

var labels = [numFields]string{"Название:", "Автор:", "Исполнитель:", "Длительность:", "Год:"}

// Model представляет модель экрана редактирования трека
type Model struct {
	container  *track.Container
	track      *data.Track
	inputs     []textinput.Model
	focusIndex int
	err        string
	success    string
	saveFunc   func() error // Функция для сохранения данных в файл
}

// NewModel создает новую модель редактора трека
func NewModel(container *track.Container, trackToEdit *data.Track, saveFunc func() error) *Model {
	inputs := make([]textinput.Model, numFields)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}

	inputs[titleField].Placeholder = "Введите название трека"
	if trackToEdit.HasTitle() {
		inputs[titleField].SetValue(trackToEdit.Title())
	}
	inputs[writerField].Placeholder = "Введите автора"
	inputs[writerField].SetValue(trackToEdit.Writer().Name())
	inputs[performerField].Placeholder = "Введите исполнителя"
	inputs[performerField].SetValue(trackToEdit.Performer().Name())
	inputs[durationField].Placeholder = "Длительность в секундах"
	inputs[durationField].SetValue(strconv.Itoa(trackToEdit.Duration()))
	inputs[yearField].Placeholder = fmt.Sprintf("%d-%d", data.MinYear, data.MaxYear)
	inputs[yearField].SetValue(strconv.Itoa(trackToEdit.Year()))

	inputs[titleField].Focus()
	inputs[titleField].PromptStyle = focusedStyle
	inputs[titleField].TextStyle = focusedStyle

	return &Model{
		container: container,
		track:     trackToEdit,
		inputs:    inputs,
		saveFunc:  saveFunc,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Отменяем редактирование
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.saveTrack()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter на кнопке "Сохранить"
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveTrack()
			}

			// Перемещение фокуса
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i < len(m.inputs); i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle
				} else {
					m.inputs[i].Blur()
					m.inputs[i].PromptStyle = blurredStyle
					m.inputs[i].TextStyle = blurredStyle
				}
			}

			return m, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	// Обновляем активное поле ввода
	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) fail(text string) tea.Cmd {
	m.err = text
	m.success = ""
	return nil
}

// saveTrack проверяет поля и применяет изменения через контейнер
func (m *Model) saveTrack() tea.Cmd {
	title := m.inputs[titleField].Value()
	writer := strings.TrimSpace(m.inputs[writerField].Value())
	performer := strings.TrimSpace(m.inputs[performerField].Value())

	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[durationField].Value()))
	if err != nil || !data.ValidDuration(duration) {
		return m.fail("Длительность должна быть неотрицательным числом")
	}

	year, err := strconv.Atoi(strings.TrimSpace(m.inputs[yearField].Value()))
	if err != nil || !data.ValidYear(year) {
		return m.fail(fmt.Sprintf("Год должен быть в диапазоне %d-%d", data.MinYear, data.MaxYear))
	}

	err = m.container.Edit(m.track, func(t *data.Track) {
		if title != "" || t.HasTitle() {
			t.SetTitle(title)
		}
		t.SetWriter(data.NewArtist(writer))
		t.SetPerformer(data.NewArtist(performer))
		t.SetDuration(duration)
		t.SetYear(year)
	})
	switch {
	case errors.Is(err, track.ErrDuplicate):
		return m.fail("Такой трек уже есть в каталоге")
	case err != nil:
		return m.fail(fmt.Sprintf("Ошибка обновления трека: %v", err))
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(); err != nil {
			return m.fail(fmt.Sprintf("Ошибка сохранения в файл: %v", err))
		}
	}

	m.err = ""
	m.success = "Трек успешно сохранен!"

	// Возвращаемся к списку треков через небольшую задержку
	return tea.Batch(
		func() tea.Msg { return TrackSavedMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg { return GoBackMsg{} }),
	)
}

// Err возвращает текст последней ошибки
func (m *Model) Err() string {
	return m.err
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Редактирование трека: " + m.track.Title()))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	saveButton := "[ Сохранить ]"
	if m.focusIndex == len(m.inputs) {
		saveButton = focusedStyle.Render(saveButton)
	} else {
		saveButton = blurredStyle.Render(saveButton)
	}
	b.WriteString(saveButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.success != "" {
		b.WriteString(successStyle.Render(m.success))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: сохранить • Esc: отмена"))

	return b.String()
}
