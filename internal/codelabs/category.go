package codelabs

// Category is a top-level grouping label codelabs are filed under.
type Category string

const (
	CategoryAndroid   Category = "android"
	CategoryFirebase  Category = "firebase"
	CategoryCloud     Category = "cloud"
	CategoryFlutter   Category = "flutter"
	CategoryAIML      Category = "ai-ml"
	CategoryWeb       Category = "web"
	CategoryMaps      Category = "maps"
	CategoryAds       Category = "ads"
	CategoryWorkspace Category = "workspace"
	CategoryGeneral   Category = "general"
)

// Categories is the fixed, ordered list of categories the copy step visits.
// Directories under codelabs/ that are not listed here are never copied.
var Categories = []Category{
	CategoryAndroid,
	CategoryFirebase,
	CategoryCloud,
	CategoryFlutter,
	CategoryAIML,
	CategoryWeb,
	CategoryMaps,
	CategoryAds,
	CategoryWorkspace,
	CategoryGeneral,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
