package gstin

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Unknown is the region name for state codes missing from the table.
const Unknown = "Unknown"

//go:embed regions.yaml
var regionsYAML []byte

var regions = mustLoadRegions(regionsYAML)

func mustLoadRegions(data []byte) map[string]string {
	m, err := loadRegions(data)
	if err != nil {
		panic(fmt.Sprintf("gstin: %v", err))
	}
	return m
}

func loadRegions(data []byte) (map[string]string, error) {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse region table: %w", err)
	}
	for code, name := range m {
		if len(code) != 2 || !Digit.Accepts(code[0]) || !Digit.Accepts(code[1]) {
			return nil, fmt.Errorf("region table: bad state code %q", code)
		}
		if name == "" {
			return nil, fmt.Errorf("region table: empty name for %q", code)
		}
	}
	return m, nil
}

// RegionName maps a two-digit state code to its state or territory name.
func RegionName(code string) string {
	if name, ok := regions[code]; ok {
		return name
	}
	return Unknown
}
