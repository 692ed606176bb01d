// Package pipeline runs the extraction core: one full scan of the export
// document, then duration resolution over everything it matched. Sink
// selection, prompts, and reporting stay with the callers.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/aweller/bloomport/internal/bloom"
	"github.com/aweller/bloomport/internal/parse"
)

// Extract scans the whole document from r and resolves every matching
// record. The first malformed element or bad timestamp fails the run; a
// zero-length result is the empty outcome, not an error.
func Extract(r io.Reader) ([]bloom.Record, error) {
	raws, err := parse.ScanHealthExport(r)
	if err != nil {
		return nil, err
	}
	return bloom.ResolveAll(raws)
}

// ExtractFile runs Extract over the export at path.
func ExtractFile(path string) ([]bloom.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open health export: %w", err)
	}
	defer f.Close()
	return Extract(f)
}
