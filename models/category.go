package models

// Category is the closed set of trades a worker can list under.
type Category string

const (
	CategoryPlumber       Category = "plumber"
	CategoryElectrician   Category = "electrician"
	CategoryPainter       Category = "painter"
	CategoryCarpenter     Category = "carpenter"
	CategoryMason         Category = "mason"
	CategoryLaborer       Category = "laborer"
	CategoryMaid          Category = "maid"
	CategoryCook          Category = "cook"
	CategoryDriver        Category = "driver"
	CategoryGardener      Category = "gardener"
	CategorySecurityGuard Category = "security_guard"
	CategoryOther         Category = "other"
)

// Location is the closed set of districts a worker can be based in or serve.
type Location string

const (
	LocationGilgit   Location = "gilgit"
	LocationSkardu   Location = "skardu"
	LocationHunza    Location = "hunza"
	LocationNagar    Location = "nagar"
	LocationGhizer   Location = "ghizer"
	LocationDiamer   Location = "diamer"
	LocationAstore   Location = "astore"
	LocationGhanche  Location = "ghanche"
	LocationShigar   Location = "shigar"
	LocationKharmang Location = "kharmang"
)

// CategoryInfo holds the display attributes of a category.
type CategoryInfo struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Image string `json:"image"`
}

const DefaultBackgroundImage = "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=1920&q=80&auto=format&fit=crop"

var categories = []Category{
	CategoryPlumber,
	CategoryElectrician,
	CategoryPainter,
	CategoryCarpenter,
	CategoryMason,
	CategoryLaborer,
	CategoryMaid,
	CategoryCook,
	CategoryDriver,
	CategoryGardener,
	CategorySecurityGuard,
	CategoryOther,
}

var locations = []Location{
	LocationGilgit,
	LocationSkardu,
	LocationHunza,
	LocationNagar,
	LocationGhizer,
	LocationDiamer,
	LocationAstore,
	LocationGhanche,
	LocationShigar,
	LocationKharmang,
}

// categoryInfo must have an entry for every value in categories; the
// package tests enforce it.
var categoryInfo = map[Category]CategoryInfo{
	CategoryPlumber:       {Icon: "wrench", Color: "bg-blue-500", Image: "https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=1920&q=80&auto=format&fit=crop"},
	CategoryElectrician:   {Icon: "zap", Color: "bg-yellow-500", Image: "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=1920&q=80&auto=format&fit=crop"},
	CategoryPainter:       {Icon: "paintbrush", Color: "bg-pink-500", Image: "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?w=1920&q=80&auto=format&fit=crop"},
	CategoryCarpenter:     {Icon: "hammer", Color: "bg-amber-700", Image: "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=1920&q=80&auto=format&fit=crop"},
	CategoryMason:         {Icon: "briefcase", Color: "bg-stone-500", Image: "https://images.unsplash.com/photo-1504307651254-35680f784045?w=1920&q=80&auto=format&fit=crop"},
	CategoryLaborer:       {Icon: "hard-hat", Color: "bg-orange-500", Image: "https://images.unsplash.com/photo-1581092160562-40aa08e78837?w=1920&q=80&auto=format&fit=crop"},
	CategoryMaid:          {Icon: "home", Color: "bg-purple-500", Image: "https://images.unsplash.com/photo-1556912172-45b7abe8b7e1?w=1920&q=80&auto=format&fit=crop"},
	CategoryCook:          {Icon: "chef-hat", Color: "bg-red-500", Image: "https://images.unsplash.com/photo-1556911220-e15b29be8c8f?w=1920&q=80&auto=format&fit=crop"},
	CategoryDriver:        {Icon: "car", Color: "bg-slate-600", Image: "https://images.unsplash.com/photo-1502877338535-766e1452684a?w=1920&q=80&auto=format&fit=crop"},
	CategoryGardener:      {Icon: "trees", Color: "bg-green-500", Image: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=1920&q=80&auto=format&fit=crop"},
	CategorySecurityGuard: {Icon: "shield", Color: "bg-indigo-500", Image: "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=1920&q=80&auto=format&fit=crop"},
	CategoryOther:         {Icon: "more-horizontal", Color: "bg-gray-500", Image: DefaultBackgroundImage},
}

// GetWorkerCategories returns all categories in display order
func GetWorkerCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// GetLocations returns all locations in display order
func GetLocations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns the display attributes; unknown categories get the "other" entry.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}

func (l Location) Valid() bool {
	for _, known := range locations {
		if l == known {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input to a Category. ok is false for unknown values.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	return c, c.Valid()
}

// ParseLocation converts raw input to a Location. ok is false for unknown values.
func ParseLocation(raw string) (Location, bool) {
	l := Location(raw)
	return l, l.Valid()
}
