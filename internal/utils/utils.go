// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"

	"github.com/hazadus/go-landscape/internal/data"
)

// FormatDurationFromSeconds форматирует продолжительность в секундах в формат HH:MM:SS
func FormatDurationFromSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// TotalDuration возвращает суммарную длительность треков в секундах
func TotalDuration(tracks []*data.Track) int {
	total := 0
	for _, t := range tracks {
		total += t.Duration()
	}
	return total
}

// TruncateString обрезает строку до указанной длины в символах,
// добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
