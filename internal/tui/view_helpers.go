package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-estate/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return appStyle.Render(b.String())
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// formatPrice renders a price with thousands separators, appending the
// rental period for rent listings.
func formatPrice(listing models.Listing) string {
	price := listing.RegularPrice
	if listing.Offer {
		price = listing.DiscountPrice
	}

	out := "$" + groupDigits(price)
	if listing.Type == models.ListingTypeRent {
		out += " / мес"
	}
	return out
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func listingTypeLabel(t string) string {
	switch t {
	case models.ListingTypeSale:
		return "Продажа"
	case models.ListingTypeRent:
		return "Аренда"
	default:
		return t
	}
}

func boolLabel(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func roomsLabel(listing models.Listing) string {
	return fmt.Sprintf("%d сп. / %d с.у.", listing.Bedrooms, listing.Bathrooms)
}
