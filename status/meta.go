package status

// DisplayMeta carries the presentation attributes for a status chip.
type DisplayMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var metaTable = map[Status]DisplayMeta{
	Pending:    {Label: "Pending", Color: "#FFA500", Icon: "clock"},
	Processing: {Label: "In Process", Color: "#1E90FF", Icon: "refresh"},
	Shipped:    {Label: "Shipped", Color: "#9370DB", Icon: "truck"},
	Delivered:  {Label: "Delivered", Color: "#32CD32", Icon: "package"},
	Completed:  {Label: "Completed", Color: "#228B22", Icon: "check"},
	Cancelled:  {Label: "Cancelled", Color: "#DC143C", Icon: "x"},
	Returned:   {Label: "Returned", Color: "#8B4513", Icon: "rotate-ccw"},
}

// neutral fallback for unknown or missing statuses
var defaultMeta = DisplayMeta{Label: "Unknown", Color: "#808080", Icon: "shopping-cart"}

// Meta returns the display attributes for s. Unknown statuses get a neutral
// grey chip with a generic cart icon instead of an error.
func Meta(s Status) DisplayMeta {
	if m, ok := metaTable[Canonical(string(s))]; ok {
		return m
	}
	return defaultMeta
}

// Label returns the human-facing label for s ("In Process" for processing).
func Label(s Status) string {
	return Meta(s).Label
}
