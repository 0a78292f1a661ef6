package discord

import "fmt"

// formatCents renders an integer cent amount as dollars, e.g. 1250 -> "$12.50"
func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// positionEmoji
func positionEmoji(position string) string {
	if position == "yes" {
		return "✅"
	}
	return "❌"
}
