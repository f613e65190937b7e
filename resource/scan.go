package resource

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type LastScanKind int

const (
	// LastScanNone means no scan has been run since the bridge started.
	LastScanNone LastScanKind = iota
	// LastScanActive means a scan is running.
	LastScanActive
	// LastScanAt means the last scan finished at LastScan.At.
	LastScanAt
)

// LastScan is the "lastscan" value of a light or sensor search.
type LastScan struct {
	Kind LastScanKind
	At   time.Time
}

func (l LastScan) String() string {
	switch l.Kind {
	case LastScanActive:
		return "active"
	case LastScanAt:
		return l.At.Format(TimeFormat)
	default:
		return "none"
	}
}

func (l *LastScan) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "none":
		*l = LastScan{Kind: LastScanNone}
	case "active":
		*l = LastScan{Kind: LastScanActive}
	default:
		at, err := time.ParseInLocation(TimeFormat, s, time.Local)
		if err != nil {
			return fmt.Errorf("invalid lastscan %q: %w", s, err)
		}
		*l = LastScan{Kind: LastScanAt, At: at}
	}
	return nil
}

// ScanResource is a light or sensor found by the last search.
type ScanResource struct {
	ID   string
	Name string
}

// Scan is the result of a light or sensor search.
type Scan struct {
	LastScan  LastScan
	Resources []ScanResource
}

func (s *Scan) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	scan := Scan{Resources: []ScanResource{}}
	seen := false
	for key, value := range raw {
		if key == "lastscan" {
			if err := json.Unmarshal(value, &scan.LastScan); err != nil {
				return err
			}
			seen = true
			continue
		}
		var found struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(value, &found); err != nil {
			return fmt.Errorf("invalid scan entry %q: %w", key, err)
		}
		scan.Resources = append(scan.Resources, ScanResource{ID: key, Name: found.Name})
	}
	if !seen {
		return fmt.Errorf("missing field lastscan")
	}
	sort.Slice(scan.Resources, func(i, j int) bool {
		return LessID(scan.Resources[i].ID, scan.Resources[j].ID)
	})

	*s = scan
	return nil
}

// LessID orders bridge ids, shorter ids first so numeric ids sort by value.
func LessID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
