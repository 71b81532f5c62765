package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/types"
)

// maxParkingAttempts bounds the search for a free parking slot
const maxParkingAttempts = 100

// TemporaryPath returns the sibling the original folder at anchor is moved
// to during init
func TemporaryPath(anchor, suffix string) string {
	if suffix == "" {
		suffix = DefaultTempSuffix
	}
	return filepath.Clean(anchor) + suffix
}

// ParkingSlot returns the first absent path among <anchor><suffix>,
// <anchor><suffix>-1, <anchor><suffix>-2, ...
func ParkingSlot(fsys types.FS, anchor, suffix string) (string, error) {
	if suffix == "" {
		suffix = DefaultParkingSuffix
	}
	base := filepath.Clean(anchor) + suffix

	for i := 0; i < maxParkingAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		st, err := status.Classify(fsys, candidate)
		if err != nil {
			return "", err
		}
		if st == types.PathAbsent {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrUnexpectedState,
		"no free parking slot next to %s after %d attempts, remove stale %s* entries",
		anchor, maxParkingAttempts, base)
}

var (
	percentVar = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%`)
	dollarVar  = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// ExpandPlaceholders replaces %VAR%, ${VAR} and $VAR with the value of the
// environment variable. A reference to an unset variable is an error.
func ExpandPlaceholders(s string) (string, error) {
	var missing []string

	lookup := func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return v
	}

	out := percentVar.ReplaceAllStringFunc(s, func(m string) string {
		return lookup(m[1 : len(m)-1])
	})
	out = dollarVar.ReplaceAllStringFunc(out, func(m string) string {
		name := strings.TrimPrefix(m, "$")
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
		return lookup(name)
	})

	if len(missing) > 0 {
		return "", errors.Newf(errors.ErrInvalidInput,
			"cannot expand %q: undefined variable %s", s, strings.Join(missing, ", ")).
			WithDetail("path", s).
			WithDetail("missing", missing)
	}
	return out, nil
}
