package archive

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

// Decompressor names accepted by New
const (
	KindNative = "native"
	KindUnzip  = "unzip"
)

// New returns the decompressor registered under kind
func New(kind string) (interfaces.Decompressor, error) {
	switch kind {
	case KindNative, "":
		return NewZip(), nil
	case KindUnzip:
		return NewCommand(), nil
	default:
		return nil, goerr.New("unknown decompressor", goerr.V("kind", kind))
	}
}
