package derive

import (
	"fmt"
	"strings"
	"unicode"
)

// Slug builds a URL-safe slug from a title: lowercase, runs of
// non-alphanumerics collapsed to single dashes, no leading/trailing dash.
// Deterministic; slugs end up in route paths that may be cached or shared.
func Slug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// ItemPath composes slug and id into the unique tail of a route path.
// An empty title degenerates to the bare id, which stays unique because ids
// are unique within a feed.
func ItemPath(title, id string) string {
	s := Slug(title)
	if s == "" {
		return id
	}
	return s + "-" + id
}

// EatPath is the route of a restaurant card.
func EatPath(city, title, id string) string {
	return fmt.Sprintf("/eat/%s/%s", city, ItemPath(title, id))
}

// DealPath is the route of a deal card.
func DealPath(sourceTag, title, id string) string {
	return fmt.Sprintf("/deals/%s/%s", sourceTag, ItemPath(title, id))
}

// PostPath is the route of a gossip post card.
func PostPath(sourceTag, title, id string) string {
	return fmt.Sprintf("/posts/%s/%s", sourceTag, ItemPath(title, id))
}

// CityPath is the route of a city landing page.
func CityPath(cityID string) string {
	return "/city/" + cityID
}

var cityNames = map[string]string{
	"sf":        "San Francisco",
	"south-bay": "South Bay",
	"east-bay":  "East Bay",
	"peninsula": "Peninsula",
	"north-bay": "North Bay",
}

// CityName formats a city identifier for display. Unknown ids are title-cased
// with dashes turned into spaces.
func CityName(id string) string {
	if name, ok := cityNames[id]; ok {
		return name
	}
	parts := strings.Split(id, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
