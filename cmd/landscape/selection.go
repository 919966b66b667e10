package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/matcher"
	"github.com/hazadus/go-landscape/internal/sorting"
)

// selectionOptions - флаги, задающие выборку для команды
type selectionOptions struct {
	filters []string
	sort    string
	desc    bool
}

// bind добавляет флаги выборки к команде
func (o *selectionOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.filters, "filter", "f", nil,
		fmt.Sprintf("filter kind=pattern, repeatable (kinds: %s)", strings.Join(matcher.Kinds(), ", ")))
	cmd.Flags().StringVarP(&o.sort, "sort", "s", "", "sort by title, duration, writer, performer or year")
	cmd.Flags().BoolVar(&o.desc, "desc", false, "sort in descending order")
}

// applySelection сбрасывает выборку, применяет фильтры по порядку
// и сортирует результат
func (app *Application) applySelection(o *selectionOptions) (sorting.Ordering, error) {
	name := o.sort
	if name == "" {
		name = app.Config.DefaultSort
	}
	ordering, err := sorting.Parse(name)
	if err != nil {
		return 0, err
	}

	matchers := make([]matcher.Matcher, 0, len(o.filters))
	for _, expr := range o.filters {
		m, err := matcher.Parse(expr)
		if err != nil {
			return 0, err
		}
		matchers = append(matchers, m)
	}

	app.Container.Reset()
	for _, m := range matchers {
		app.Container.Filter(m)
	}
	app.Container.Sort(ordering, !o.desc)

	return ordering, nil
}

// formatter возвращает формат по имени или формат из конфигурации
func (app *Application) formatter(name string) (format.Formatter, error) {
	if name == "" {
		name = app.Config.DefaultFormat
	}
	return format.Parse(name)
}
