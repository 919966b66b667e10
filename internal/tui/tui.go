// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/sorting"
	"github.com/hazadus/go-landscape/internal/track"
	"github.com/hazadus/go-landscape/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	container *track.Container
	formatter format.Formatter
	ordering  sorting.Ordering
	ascending bool
	saveFunc  func() error // Функция для сохранения данных
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(container *track.Container, formatter format.Formatter, ordering sorting.Ordering, ascending bool, saveFunc func() error) *App {
	return &App{
		container: container,
		formatter: formatter,
		ordering:  ordering,
		ascending: ascending,
		saveFunc:  saveFunc,
	}
}

// Model создает модель Bubble Tea для приложения
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.container, tuiApp.formatter, tuiApp.ordering, tuiApp.ascending, tuiApp.saveFunc)
}

// Run запускает TUI приложение
func (tuiApp *App) Run(opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(tuiApp.Model(), opts...)
	_, err := p.Run()
	return err
}
