// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"fmt"
	"github.com/onosproject/v2x-scenario/pkg/utils"
	"io"
)

// Summary is the aggregate view of a mobility trace
type Summary struct {
	Nodes     uint32  `yaml:"nodes"`
	StartTime float64 `yaml:"start_time"`
	EndTime   float64 `yaml:"end_time"`
	// Events is the number of well-formed event time markers
	Events int `yaml:"events"`
}

// Duration returns the span of time covered by the trace events
func (s *Summary) Duration() float64 {
	return s.EndTime - s.StartTime
}

func (s *Summary) String() string {
	return fmt.Sprintf("Nodes: %d\nStart time: %g\nEnd time: %g\n", s.Nodes, s.StartTime, s.EndTime)
}

// SummarizeTrace scans the specified mobility trace file; - for stdin.
// Only a failure to open the file is returned as an error; malformed lines are reported
// as diagnostics and skipped.
func SummarizeTrace(path string, opts ...Option) (*Summary, error) {
	log.Infof("Loading node mobility from %s", path)
	input, err := utils.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	return ScanTrace(input, append([]Option{WithSource(path)}, opts...)...)
}

// ScanTrace scans mobility trace lines from the given reader
func ScanTrace(r io.Reader, opts ...Option) (*Summary, error) {
	o := newOptions(opts)
	summary := &Summary{}
	ids := make(map[uint32]struct{})
	startSet := false

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		ref, found, err := findNodeRef(line)
		if err != nil {
			o.report(scanner.Line(), err)
		} else if found {
			ids[ref.ID] = struct{}{}
		}

		t, found, err := findEventTime(line)
		if err != nil {
			o.report(scanner.Line(), err)
			continue
		}
		if !found {
			continue
		}
		summary.Events++
		if o.explicitStartTime {
			if !startSet || t < summary.StartTime {
				summary.StartTime = t
				startSet = true
			}
		} else if summary.StartTime == 0.0 || t < summary.StartTime {
			summary.StartTime = t
		}
		if t > summary.EndTime {
			summary.EndTime = t
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	summary.Nodes = uint32(len(ids))
	log.Debugf("Trace %s: %d nodes, %d events", o.source, summary.Nodes, summary.Events)
	return summary, nil
}
