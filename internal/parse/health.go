package parse

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// MindfulSessionType is the activity type Apple Health assigns to
// meditation records in export.xml.
const MindfulSessionType = "HKCategoryTypeIdentifierMindfulSession"

const recordElement = "Record"

// TokenSource is the slice of xml.Decoder the scanner consumes, so tests
// can feed a synthetic token stream instead of a real document.
type TokenSource interface {
	Token() (xml.Token, error)
}

// Scanner yields mindful-session records from a health export one at a
// time. Forward-only, not restartable.
type Scanner struct {
	src TokenSource
}

func NewScanner(src TokenSource) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next mindful-session record, or io.EOF once the
// document is exhausted. Any other error means malformed markup and the
// scan cannot continue.
func (s *Scanner) Next() (*MindfulSession, error) {
	for {
		tok, err := s.src.Token()
		if err != nil {
			return nil, err
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != recordElement {
			// dominant case: workout/heart-rate/etc. elements, skipped
			// before any attribute work
			continue
		}
		if rec, ok := matchRecord(el); ok {
			return &rec, nil
		}
	}
}

// matchRecord decodes the attributes of one Record element and reports
// whether it is a mindful session. Attributes are unordered and optional;
// absent ones stay empty.
func matchRecord(el xml.StartElement) (MindfulSession, bool) {
	var activity string
	var rec MindfulSession
	for _, attr := range el.Attr {
		switch attr.Name.Local {
		case "type":
			activity = attr.Value
		case "sourceName":
			rec.App = attr.Value
		case "startDate":
			rec.Start = attr.Value
		case "endDate":
			rec.End = attr.Value
		}
	}
	if activity != MindfulSessionType {
		return MindfulSession{}, false
	}
	return rec, true
}

// ScanHealthExport reads a whole export document from r and returns every
// mindful-session record in document order. Zero matches is a valid empty
// result, not an error.
func ScanHealthExport(r io.Reader) ([]MindfulSession, error) {
	sc := NewScanner(xml.NewDecoder(r))
	var sessions []MindfulSession
	for {
		rec, err := sc.Next()
		if errors.Is(err, io.EOF) {
			return sessions, nil
		}
		if err != nil {
			return nil, fmt.Errorf("scan health export: %w", err)
		}
		sessions = append(sessions, *rec)
	}
}
