package host

import "github.com/blipradar/blipradar/pkg/radar"

// CustomizationObject is the object name under which sector colours are
// surfaced to the host's settings UI.
const CustomizationObject = "sectors"

// Customization describes one user-editable property group: a sector and
// its current fill colour. The host renders these in its settings pane and
// writes chosen colours back into its colour store under Selector.
type Customization struct {
	ObjectName  string `json:"objectName"`
	DisplayName string `json:"displayName"`
	Fill        string `json:"fill"`
	Selector    string `json:"selector"`
}

// EnumerateCustomizations reports one customization per sector of the
// current radar, in sector order.
func EnumerateCustomizations(r *radar.Radar) []Customization {
	out := make([]Customization, 0, len(r.Sectors))
	for _, s := range r.Sectors {
		out = append(out, Customization{
			ObjectName:  CustomizationObject,
			DisplayName: s.Name,
			Fill:        s.Colour,
			Selector:    s.ID,
		})
	}
	return out
}
