// Package decode translates format-specific decode failures into the generic
// (message, line, column) contract of the diagnostic renderer.
//
// Each supported format can be served by more than one decoding facility
// (encoding/json for JSON, BurntSushi and go-toml/v2 for TOML, yaml.v3 for
// YAML). The set of available facilities is a fixed capability table decided
// at startup, and classification dispatches on the concrete error type of
// each facility — never on ad hoc field probing. Two structurally different
// failure values with the same extracted fields render identically.
//
// Failures that carry no usable location are reported at line 1 with an
// upgrade recommendation instead of fabricated coordinates. Errors not
// produced by any known facility are returned to the caller unchanged.
package decode
