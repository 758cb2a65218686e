package decode

// Format identifies a configuration-document format.
type Format uint8

const (
	// FormatJSON covers encoding/json decode failures.
	FormatJSON Format = iota
	// FormatTOML covers BurntSushi and go-toml/v2 decode failures.
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatTOML:
		return "TOML"
	case FormatYAML:
		return "YAML"
	}
	return "UNKNOWN"
}

// Facility identifies a concrete decoding library. Every normalized failure
// carries the tag of the facility that produced it.
type Facility uint8

const (
	// FacilityEncodingJSON is the standard library JSON decoder.
	FacilityEncodingJSON Facility = iota
	// FacilityBurntSushiTOML is github.com/BurntSushi/toml.
	FacilityBurntSushiTOML
	// FacilityGoTOMLv2 is github.com/pelletier/go-toml/v2.
	FacilityGoTOMLv2
	FacilityYAMLv3
)

func (f Facility) String() string {
	switch f {
	case FacilityEncodingJSON:
		return "encoding/json"
	case FacilityBurntSushiTOML:
		return "github.com/BurntSushi/toml"
	case FacilityGoTOMLv2:
		return "github.com/pelletier/go-toml/v2"
	case FacilityYAMLv3:
		return "gopkg.in/yaml.v3"
	}
	return "unknown"
}

// formatFacilities enumerates the facilities that can serve each format.
// The table is fixed; the renderer's interface never changes with it.
var formatFacilities = map[Format][]Facility{
	FormatJSON: {FacilityEncodingJSON},
	FormatTOML: {FacilityBurntSushiTOML, FacilityGoTOMLv2},
	FormatYAML: {FacilityYAMLv3},
}

// enabledFacilities is the capability table, decided at startup. Tests flip
// entries to exercise the missing-facility path.
var enabledFacilities = map[Facility]bool{
	FacilityEncodingJSON:   true,
	FacilityBurntSushiTOML: true,
	FacilityGoTOMLv2:       true,
	FacilityYAMLv3:         true,
}

// available returns the enabled facilities for a format, in table order.
func available(format Format) []Facility {
	all := formatFacilities[format]
	out := make([]Facility, 0, len(all))
	for _, f := range all {
		if enabledFacilities[f] {
			out = append(out, f)
		}
	}
	return out
}
