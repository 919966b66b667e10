// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/sorting"
	"github.com/hazadus/go-landscape/internal/track"
	"github.com/hazadus/go-landscape/internal/tui/editor"
	"github.com/hazadus/go-landscape/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// EditorScreen - экран редактирования
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	container      *track.Container
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	editorModel    *editor.Model
	saveFunc       func() error // Функция для сохранения данных
}

// NewMainModel создает новую главную модель
func NewMainModel(container *track.Container, formatter format.Formatter, ordering sorting.Ordering, ascending bool, saveFunc func() error) *MainModel {
	return &MainModel{
		container:      container,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(container, formatter, ordering, ascending),
		saveFunc:       saveFunc,
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tracklist.TrackEditMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.container, msg.Track, m.saveFunc)
		return m, m.editorModel.Init()

	case editor.GoBackMsg:
		// Повторный GoBackMsg от таймера после ручного выхода игнорируется
		if m.currentScreen != EditorScreen {
			return m, nil
		}
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		m.tracklistModel.RefreshData()
		return m, nil

	case editor.TrackSavedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
