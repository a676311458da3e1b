// Package reasons maintains the pool of death reasons that predictions
// choose from.
package reasons

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/ossian/death/logging"
)

// Reasons scoring at least this similar to one already in the list are
// treated as restatements and skipped.
const similarityThreshold = 0.9

// Default is the built-in list of death reasons, used whenever no usable
// custom list is supplied.
var Default = []string{
	"cars", "illness", "height", "darkness", "fire", "water", "nature",
	"building", "electricity", "explosions", "food", "animals", "temperature",
	"weapons",
}

// Load reads death reasons from the named file, one per line. Blank lines
// and lines starting with "#" are skipped, as are near duplicates of reasons
// already read. The returned list may be empty if the file contains no
// usable lines.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reasons file: %w", err)
	}

	oc := metrics.NewOverlapCoefficient()

	var rs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dup := false
		for _, existing := range rs {
			if strutil.Similarity(line, existing, oc) >= similarityThreshold {
				logging.Debug("skipping near duplicate reason", "reason", line, "existing", existing)
				dup = true
				break
			}
		}
		if !dup {
			rs = append(rs, line)
		}
	}

	return rs, nil
}

// FromFile returns the reasons read from path, or the default list when path
// is empty or yields no usable reasons. The returned list is never empty.
func FromFile(path string) []string {
	if path == "" {
		return Default
	}

	rs, err := Load(path)
	if err != nil {
		logging.Warn("falling back to default death reasons", "error", err.Error())
		return Default
	}
	if len(rs) == 0 {
		logging.Warn("no usable death reasons in file, falling back to default list", "file", path)
		return Default
	}
	return rs
}
