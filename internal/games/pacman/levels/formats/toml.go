package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLLevel represents the TOML structure for a maze file.
// Ghost overrides are written as [[ghosts]] tables.
type TOMLLevel struct {
	ID     string  `toml:"id"`
	Name   string  `toml:"name"`
	Layout string  `toml:"layout"`
	Ghosts []Ghost `toml:"ghosts"`
}

// ParseTOML parses a TOML maze file. Unknown keys are rejected.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	meta, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Level{}, fmt.Errorf("toml decode: unknown keys %s", strings.Join(keys, ", "))
	}
	if !meta.IsDefined("layout") {
		return Level{}, fmt.Errorf("toml decode: missing layout")
	}
	return Level{
		ID:     tl.ID,
		Name:   tl.Name,
		Rows:   splitLayout(tl.Layout),
		Ghosts: tl.Ghosts,
	}, nil
}
