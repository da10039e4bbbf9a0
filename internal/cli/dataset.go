package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/blipradar/blipradar/pkg/errors"
	"github.com/blipradar/blipradar/pkg/host"
)

// headerRoles maps header spellings (lowercased) to dataset column roles.
// Datasets come from many tools, so the common synonyms are accepted.
var headerRoles = map[string]string{
	"name":        host.RoleName,
	"title":       host.RoleName,
	"description": host.RoleDescription,
	"desc":        host.RoleDescription,
	"sector":      host.RoleSector,
	"category":    host.RoleSector,
	"quadrant":    host.RoleSector,
	"ring":        host.RoleRing,
	"status":      host.RoleRing,
	"maturity":    host.RoleRing,
	"isnew":       host.RoleIsNew,
	"is_new":      host.RoleIsNew,
	"new":         host.RoleIsNew,
}

// roleForHeader resolves a header name to a column role, or "" when the
// header is not recognised. Unrecognised columns are carried along but
// never read.
func roleForHeader(header string) string {
	return headerRoles[strings.ToLower(strings.TrimSpace(header))]
}

// loadDataset reads a dataset file, dispatching on the file extension.
// TOML and CSV are supported.
func loadDataset(path string) (host.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return loadTOML(path)
	case ".csv":
		return loadCSV(path)
	default:
		return host.Dataset{}, errors.New(errors.ErrCodeInvalidInput,
			"unsupported dataset format: %q (expected .toml or .csv)", filepath.Ext(path))
	}
}

// tomlEntry is one [[entries]] table in a TOML dataset.
type tomlEntry struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Sector      string `toml:"sector"`
	Ring        string `toml:"ring"`
	IsNew       bool   `toml:"isNew"`
}

// tomlDataset is the root of a TOML dataset file.
type tomlDataset struct {
	Entries []tomlEntry `toml:"entries"`
}

// loadTOML reads a TOML dataset of [[entries]] tables.
func loadTOML(path string) (host.Dataset, error) {
	var doc tomlDataset
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if os.IsNotExist(err) {
			return host.Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", path)
		}
		return host.Dataset{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "parsing %s", path)
	}

	ds := host.Dataset{
		Columns: []host.Column{
			{Name: "Name", Role: host.RoleName},
			{Name: "Description", Role: host.RoleDescription},
			{Name: "Sector", Role: host.RoleSector},
			{Name: "Ring", Role: host.RoleRing},
			{Name: "New", Role: host.RoleIsNew},
		},
	}
	for _, e := range doc.Entries {
		ds.Rows = append(ds.Rows, []any{e.Name, e.Description, e.Sector, e.Ring, e.IsNew})
	}
	return ds, nil
}

// loadCSV reads a CSV dataset. The first record is the header row; its
// cells are matched against the known role synonyms.
func loadCSV(path string) (host.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return host.Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", path)
		}
		return host.Dataset{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return host.Dataset{}, errors.Wrap(errors.ErrCodeInvalidDataset, err, "parsing %s", path)
	}
	if len(records) == 0 {
		return host.Dataset{}, nil
	}

	var ds host.Dataset
	for _, header := range records[0] {
		ds.Columns = append(ds.Columns, host.Column{
			Name: strings.TrimSpace(header),
			Role: roleForHeader(header),
		})
	}
	for _, record := range records[1:] {
		row := make([]any, len(ds.Columns))
		for i := range ds.Columns {
			if i < len(record) {
				row[i] = strings.TrimSpace(record[i])
			} else {
				row[i] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}
