// Package ui renders console output: tables for list pages, key/value
// blocks for detail views, status badges.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Width(18)
)

// Table renders headers and rows as an aligned text table.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(cellStyle.Render(headerStyle.Render(pad(h, widths[i]))))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(cellStyle.Render(pad(cell, widths[i])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Detail renders a key/value block for a single record.
func Detail(pairs [][2]string) string {
	var b strings.Builder
	for _, kv := range pairs {
		b.WriteString(keyStyle.Render(kv[0]))
		b.WriteString(kv[1])
		b.WriteString("\n")
	}
	return b.String()
}

// Status colors a status word by its usual severity in the ERP.
func Status(s string) string {
	switch strings.ToLower(s) {
	case "active", "paid", "completed", "won":
		return goodStyle.Render(s)
	case "expiring", "pending", "draft", "on_hold":
		return warnStyle.Render(s)
	case "expired", "inactive", "lost", "overdue":
		return badStyle.Render(s)
	}
	return s
}

// Alert renders text in the attention color (low stock, overdue items).
func Alert(s string) string {
	return badStyle.Render(s)
}

// PageFooter summarizes list pagination under a table.
func PageFooter(page, totalPages, count int) string {
	if totalPages > 0 {
		return dimStyle.Render(fmt.Sprintf("page %d of %d · %d total", page, totalPages, count))
	}
	return dimStyle.Render(fmt.Sprintf("page %d · %d total", page, count))
}
