package model

import "time"

// InstalledFont is a single font copied into the destination
type InstalledFont struct {
	Source string // Path inside the extraction directory
	Dest   string // Path in the destination directory
	Size   int64  // Bytes written
}

// ArchiveResult represents the outcome of processing one archive
type ArchiveResult struct {
	Archive    string          // Absolute path of the archive
	Fonts      []InstalledFont // Fonts copied, in walk order
	Err        error           // Directory or extraction failure; nil when extraction succeeded
	CopyErrors []error         // Per-file copy failures
}

// Failed reports whether the archive could not be extracted
func (r *ArchiveResult) Failed() bool {
	return r.Err != nil
}

// InstallReport summarizes a whole run
type InstallReport struct {
	Layout     *Layout
	Archives   []*ArchiveResult
	SetupErr   error // Destination preparation failure, if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// InstalledCount returns the number of font copies that succeeded
func (r *InstallReport) InstalledCount() int {
	n := 0
	for _, a := range r.Archives {
		n += len(a.Fonts)
	}
	return n
}

// FailedArchives returns archives that could not be extracted
func (r *InstallReport) FailedArchives() []*ArchiveResult {
	var failed []*ArchiveResult
	for _, a := range r.Archives {
		if a.Failed() {
			failed = append(failed, a)
		}
	}
	return failed
}

// Errors returns every error recorded during the run in processing order
func (r *InstallReport) Errors() []error {
	var errs []error
	if r.SetupErr != nil {
		errs = append(errs, r.SetupErr)
	}
	for _, a := range r.Archives {
		if a.Err != nil {
			errs = append(errs, a.Err)
		}
		errs = append(errs, a.CopyErrors...)
	}
	return errs
}

// ArchiveListing is the set of font entries an archive would install
type ArchiveListing struct {
	Archive string
	Fonts   []string // Entry names inside the archive
	Err     error
}
