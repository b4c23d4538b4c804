package config

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/utils/selfpath"
)

// Install holds archive scanning and installation configuration
type Install struct {
	Root         string
	Dest         string
	Temp         string
	Extensions   []string
	Decompressor string
	ConfigFile   string
}

// Flag names shared between Flags and Resolve
const (
	flagRoot         = "root"
	flagDest         = "dest"
	flagTemp         = "temp"
	flagExt          = "ext"
	flagDecompressor = "decompressor"
	flagConfig       = "config"
)

// Flags returns CLI flags for installation configuration
func (c *Install) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagRoot,
			Usage:       "Directory scanned for zip archives (default: directory of the fontinst binary)",
			Destination: &c.Root,
			Sources:     cli.EnvVars("FONTINST_ROOT"),
		},
		&cli.StringFlag{
			Name:        flagDest,
			Usage:       "Destination directory for fonts, relative to the root unless absolute",
			Value:       model.DefaultDestName,
			Destination: &c.Dest,
			Sources:     cli.EnvVars("FONTINST_DEST"),
		},
		&cli.StringFlag{
			Name:        flagTemp,
			Usage:       "Temporary extraction directory, relative to the root unless absolute",
			Value:       model.DefaultTempName,
			Destination: &c.Temp,
			Sources:     cli.EnvVars("FONTINST_TEMP"),
		},
		&cli.StringSliceFlag{
			Name:        flagExt,
			Usage:       "Font file extensions to install",
			Value:       []string(model.DefaultFontExtensions()),
			Destination: &c.Extensions,
			Sources:     cli.EnvVars("FONTINST_EXT"),
		},
		&cli.StringFlag{
			Name:        flagDecompressor,
			Usage:       "Archive extractor (native, unzip)",
			Value:       "native",
			Destination: &c.Decompressor,
			Sources:     cli.EnvVars("FONTINST_DECOMPRESSOR"),
		},
		&cli.StringFlag{
			Name:        flagConfig,
			Usage:       "TOML config file, relative to the root unless absolute",
			Value:       DefaultConfigFile,
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("FONTINST_CONFIG"),
		},
	}
}

// Resolve merges flags, the optional config file and defaults into a Layout and
// returns it with the decompressor name. isSet reports whether a flag was given
// explicitly (by argument or environment); explicit flags win over the file.
func (c *Install) Resolve(isSet func(name string) bool) (*model.Layout, string, error) {
	root := c.Root
	if root == "" {
		root = selfpath.Dir()
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to resolve root directory", goerr.V("root", c.Root))
	}

	dest, temp, exts, kind := c.Dest, c.Temp, c.Extensions, c.Decompressor

	if c.ConfigFile != "" {
		file, err := LoadFile(underRoot(root, c.ConfigFile))
		switch {
		case err == nil:
			if !isSet(flagDest) && file.Dest != "" {
				dest = file.Dest
			}
			if !isSet(flagTemp) && file.Temp != "" {
				temp = file.Temp
			}
			if !isSet(flagExt) && len(file.Extensions) > 0 {
				exts = file.Extensions
			}
			if !isSet(flagDecompressor) && file.Decompressor != "" {
				kind = file.Decompressor
			}
		case isNotExist(err) && !isSet(flagConfig):
			// the default config file is optional
		default:
			return nil, "", err
		}
	}

	layout := model.NewLayout(root)
	if dest != "" {
		layout.DestDir = underRoot(root, dest)
	}
	if temp != "" {
		layout.TempDir = underRoot(root, temp)
	}
	layout.Extensions = model.NewFontExtensions(exts)

	if len(layout.Extensions) == 0 {
		return nil, "", goerr.New("no font extensions configured")
	}
	if layout.TempDir == layout.SearchRoot || layout.TempDir == layout.DestDir {
		return nil, "", goerr.New("temporary directory must differ from root and destination",
			goerr.V("temp_dir", layout.TempDir),
			goerr.V("dest_dir", layout.DestDir))
	}

	return layout, kind, nil
}

func underRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
