// Package host defines the contract between the radar core and whatever
// application embeds it: the tabular dataset the host supplies on each
// update, the colour store it persists user customizations in, and the
// customization descriptors the core reports back so the host can present
// per-sector colour editing.
//
// The core never persists anything itself. The radar model is rebuilt from
// scratch on every update pass; colours chosen by the user are the only
// state that must survive a rebuild, and keeping them is the host's job.
// blipradar's own CLI (internal/cli) is one host implementation; an
// HTTP caller of the serve mode is another.
package host

// Role names for dataset columns. Column order is not guaranteed, so the
// transformer maps roles to column indexes on every update.
const (
	RoleName        = "name"
	RoleDescription = "description"
	RoleSector      = "sector"
	RoleRing        = "ring"
	RoleIsNew       = "isNew"
)

// Column describes one column of the dataset: its display name and the role
// it plays. Roles outside the known set are ignored.
type Column struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Dataset is one update's worth of input: ordered rows over named-role
// columns. Row values are loosely typed the way hosts deliver them; the
// transformer coerces them per role.
type Dataset struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Empty reports whether the dataset has no rows. An empty dataset is not an
// error; it renders as an empty radar.
func (d Dataset) Empty() bool {
	return len(d.Rows) == 0
}
