package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagDirectoryCreate marks failures to create the temporary or destination directory
	ErrTagDirectoryCreate = goerr.NewTag("directory_create")
	// ErrTagExtraction marks corrupt, encrypted, unsupported or unsafe archives
	ErrTagExtraction = goerr.NewTag("extraction")
	// ErrTagCopy marks failures writing a font into the destination
	ErrTagCopy = goerr.NewTag("copy")
)
