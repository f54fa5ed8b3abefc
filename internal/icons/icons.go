// Package icons maps the icon tags carried by catalog and marketing
// content to Lucide icon names. Tags form a closed set; unknown tags
// fall back to a generic icon instead of failing a render.
package icons

const defaultName = "database"

var lucideNames = map[string]string{
	"Database":      "database",
	"Map":           "map",
	"MapPin":        "map-pin",
	"Home":          "house",
	"Building":      "building-2",
	"TrendingUp":    "trending-up",
	"Users":         "users",
	"UserPlus":      "user-plus",
	"Star":          "star",
	"Calendar":      "calendar",
	"Share2":        "share-2",
	"Shield":        "shield",
	"Zap":           "zap",
	"PieChart":      "pie-chart",
	"Target":        "target",
	"MessageSquare": "message-square",
	"MessageCircle": "message-circle",
	"Globe":         "globe",
	"Facebook":      "facebook",
	"Rocket":        "rocket",
	"FileText":      "file-text",
	"CheckCircle":   "circle-check",
	"ShoppingCart":  "shopping-cart",
	"Clock":         "clock",
	"Search":        "search",
	"Trash":         "trash-2",
	"Mail":          "mail",
	"Phone":         "phone",
}

// NameOrDefault provides a stable Lucide name even for unknown tags.
func NameOrDefault(tag string) string {
	if name, ok := lucideNames[tag]; ok {
		return name
	}
	return defaultName
}
