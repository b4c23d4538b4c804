package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is looked up in the search root when --config is not given
const DefaultConfigFile = "fontinst.toml"

// File is the optional TOML configuration stored next to the archives
type File struct {
	Dest         string   `toml:"dest"`
	Temp         string   `toml:"temp"`
	Extensions   []string `toml:"extensions"`
	Decompressor string   `toml:"decompressor"`
}

// LoadFile reads a TOML config file. Unknown keys are rejected. A missing file
// returns an error wrapping fs.ErrNotExist.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer f.Close()

	var cfg File
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, goerr.Wrap(err, "unknown keys in config file",
				goerr.V("path", path),
				goerr.V("detail", strictErr.String()))
		}
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
