// Package writer renders mapped rows into the activity log workbook
// and saves it under a versioned filename.
package writer

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed template.yaml
var templateYAML []byte

// TemplateColumn describes the presentation of one Data sheet column.
type TemplateColumn struct {
	Name    string   `yaml:"name"`
	Display string   `yaml:"display"`
	Width   float64  `yaml:"width"`
	Values  []string `yaml:"values"`
}

// MetadataField describes one row of the Metadata sheet.
type MetadataField struct {
	Name    string `yaml:"name"`
	Display string `yaml:"display"`
}

// Template is the embedded, fixed workbook layout.
type Template struct {
	Data struct {
		Name      string           `yaml:"name"`
		Title     string           `yaml:"title"`
		PasteHint string           `yaml:"paste_hint"`
		Columns   []TemplateColumn `yaml:"columns"`
	} `yaml:"data_sheet"`
	Metadata struct {
		Name   string          `yaml:"name"`
		Fields []MetadataField `yaml:"fields"`
	} `yaml:"metadata_sheet"`
	Conversion struct {
		Name string `yaml:"name"`
	} `yaml:"conversion_sheet"`
}

// LoadTemplate parses the embedded workbook layout.
func LoadTemplate() (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(templateYAML, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing embedded template: %w", err)
	}
	return &tmpl, nil
}

// column finds the presentation entry for a destination column name.
func (t *Template) column(name string) (TemplateColumn, bool) {
	for _, col := range t.Data.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return TemplateColumn{}, false
}
