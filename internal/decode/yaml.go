package decode

import (
	"errors"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const yamlUpgradeHint = "gopkg.in/yaml.v3 reported no position for this failure; " +
	"upgrade to a YAML facility that reports line numbers to better display the exception"

// yaml.v3 reports positions only inside its message strings.
var (
	yamlLineRe     = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)
	yamlTypeLineRe = regexp.MustCompile(`^(?:yaml: )?line (\d+): (.*)$`)
)

// YAMLDump renders a YAML decode failure against the offending document.
// Errors not produced by the YAML facility are returned unchanged.
func YAMLDump(err error, path string, opts Options) error {
	if len(available(FormatYAML)) == 0 {
		return renderMissingFacility(FormatYAML, err, path, opts)
	}

	f, ok := classifyYAML(err)
	if !ok {
		return err
	}
	if !f.located() {
		return renderUnlocated(f, path, yamlUpgradeHint, opts)
	}
	return render(f, path, opts)
}

// classifyYAML recognizes the two error shapes of yaml.v3: TypeError for
// unmarshal mismatches and plain errors for syntax failures. Both bury the
// line number in the message text; neither carries a column.
func classifyYAML(err error) (failure, bool) {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		f := failure{facility: FacilityYAMLv3, message: typeErr.Error()}
		if len(typeErr.Errors) > 0 {
			if m := yamlTypeLineRe.FindStringSubmatch(typeErr.Errors[0]); m != nil {
				f.message = m[2]
				f.line = atoiSafe(m[1])
			}
		}
		return f, true
	}

	msg := err.Error()
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		return failure{
			facility: FacilityYAMLv3,
			message:  m[2],
			line:     atoiSafe(m[1]),
		}, true
	}
	if rest, ok := strings.CutPrefix(msg, "yaml: "); ok {
		// Recognized facility, no position in the message.
		return failure{facility: FacilityYAMLv3, message: rest}, true
	}

	return failure{}, false
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
