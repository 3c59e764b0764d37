// Package format renders market values as display strings for chat replies.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Placeholders used when upstream data is unavailable.
const (
	Loading       = "Loading..."
	NotApplicable = "N/A"
)

// Direction indicators prefixed to percentages.
const (
	Rising  = "📈"
	Falling = "📉"
)

// FormatPrice renders a USD price. Amounts of at least one dollar get thousands
// separators and 2 decimals; smaller amounts get 6 decimals so sub-cent prices
// stay readable.
func FormatPrice(amount float64) string {
	if amount >= 1 {
		return "$" + humanize.FormatFloat("#,###.##", amount)
	}
	return fmt.Sprintf("$%.6f", amount)
}

// FormatPercentage renders a percent change with a direction indicator.
// Positive values carry an explicit plus sign; zero counts as falling.
func FormatPercentage(amount float64) string {
	if amount > 0 {
		return fmt.Sprintf("%s +%.2f%%", Rising, amount)
	}
	return fmt.Sprintf("%s %.2f%%", Falling, amount)
}

// FormatLargeNumber renders market caps and volumes with a T/B/M suffix.
func FormatLargeNumber(amount float64) string {
	switch {
	case amount == 0:
		return NotApplicable
	case amount >= 1e12:
		return fmt.Sprintf("$%.2fT", amount/1e12)
	case amount >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	default:
		return FormatPrice(amount)
	}
}

// FormatRank renders a market-cap rank, or N/A when absent.
func FormatRank(rank *int) string {
	if rank == nil || *rank <= 0 {
		return NotApplicable
	}
	return fmt.Sprintf("#%d", *rank)
}
