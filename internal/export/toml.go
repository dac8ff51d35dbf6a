package export

import (
	"io"

	"github.com/BurntSushi/toml"
)

type TOML struct{}

func (TOML) Export(w io.Writer, sh Sheet) error {
	return toml.NewEncoder(w).Encode(sh)
}
