package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printSuccess(format string, v ...interface{}) {
	fmt.Println(styleSuccess.Render(checkmark) + " " + fmt.Sprintf(format, v...))
}

func printError(format string, v ...interface{}) {
	fmt.Println(styleError.Render(crossmark) + " " + fmt.Sprintf(format, v...))
}

func printProgress(format string, v ...interface{}) {
	fmt.Println(styleInfo.Render(ellipsis) + " " + fmt.Sprintf(format, v...))
}
