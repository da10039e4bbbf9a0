package transform

import (
	"fmt"
	"strings"

	"github.com/blipradar/blipradar/pkg/host"
)

// schema maps dataset roles to column indexes for one update. Column order
// is not guaranteed by the host, so the mapping is recomputed every pass.
// Optional roles resolve to -1 when absent.
type schema struct {
	name        int
	description int
	sector      int
	ring        int
	isNew       int
}

// requiredRoles are the roles the geometry cannot do without. description
// and isNew only affect presentation and default to zero values.
var requiredRoles = []string{host.RoleName, host.RoleSector, host.RoleRing}

// resolveSchema computes the role → index mapping, failing fast with a
// SchemaError when a required role is absent. The first column claiming a
// role wins.
func resolveSchema(columns []host.Column) (schema, error) {
	s := schema{name: -1, description: -1, sector: -1, ring: -1, isNew: -1}

	for i, col := range columns {
		switch col.Role {
		case host.RoleName:
			if s.name < 0 {
				s.name = i
			}
		case host.RoleDescription:
			if s.description < 0 {
				s.description = i
			}
		case host.RoleSector:
			if s.sector < 0 {
				s.sector = i
			}
		case host.RoleRing:
			if s.ring < 0 {
				s.ring = i
			}
		case host.RoleIsNew:
			if s.isNew < 0 {
				s.isNew = i
			}
		}
	}

	var missing []string
	for _, role := range requiredRoles {
		switch role {
		case host.RoleName:
			if s.name < 0 {
				missing = append(missing, role)
			}
		case host.RoleSector:
			if s.sector < 0 {
				missing = append(missing, role)
			}
		case host.RoleRing:
			if s.ring < 0 {
				missing = append(missing, role)
			}
		}
	}
	if len(missing) > 0 {
		return schema{}, &SchemaError{Missing: missing}
	}
	return s, nil
}

// stringAt coerces the value at idx to a string. Out-of-range or negative
// indexes (optional roles) yield the empty string.
func stringAt(row []any, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// boolAt coerces the value at idx to a bool, accepting the spellings hosts
// actually deliver: native bools, "true"/"false", "yes"/"no", "1"/"0".
func boolAt(row []any, idx int) bool {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return false
	}
	switch v := row[idx].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			return true
		}
		return false
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
