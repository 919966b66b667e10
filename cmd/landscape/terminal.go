package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal сообщает, подключен ли поток к терминалу
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
