package tui

import "fmt"

// StatusBar renders the top status bar.
func StatusBar(shown, total int, queried bool, width int) string {
	text := fmt.Sprintf("  pizzasearch - %d pizzas  ", total)
	if queried {
		text = fmt.Sprintf("  pizzasearch - %d of %d match  ", shown, total)
	}
	return statusBarStyle.Width(width).Render(text)
}
