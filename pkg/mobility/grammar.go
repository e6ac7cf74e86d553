// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"bufio"
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	nodeMarker    = "$node_("
	timeMarker    = "$ns_ at "
	setdestMarker = "setdest"
)

var (
	nodeRefPattern   = regexp.MustCompile(`\$node_\((?P<id>[^)]*)\)`)
	eventTimePattern = regexp.MustCompile(`\$ns_ at (?P<time>\S+)\s`)
	axisPattern      = regexp.MustCompile(`(?P<axis>[^_])_(?P<value>[^_]*)$`)

	nodeIDGroup    = nodeRefPattern.SubexpIndex("id")
	eventTimeGroup = eventTimePattern.SubexpIndex("time")
	axisGroup      = axisPattern.SubexpIndex("axis")
	axisValueGroup = axisPattern.SubexpIndex("value")
)

// Fixed diagnostic messages
const (
	errNodeID       = "Error parsing node ID"
	errTime         = "Error parsing time"
	errNodePosition = "Error parsing node position"
)

// nodeRef is a parsed $node_(<id>) reference
type nodeRef struct {
	ID uint32
	// End is the index of the closing parenthesis
	End int
}

// findNodeRef locates the first node reference on the line.
func findNodeRef(line string) (nodeRef, bool, error) {
	if !strings.Contains(line, nodeMarker) {
		return nodeRef{}, false, nil
	}
	m := nodeRefPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return nodeRef{}, true, errors.NewInvalid(errNodeID)
	}
	raw := strings.TrimSpace(line[m[2*nodeIDGroup]:m[2*nodeIDGroup+1]])
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nodeRef{}, true, errors.NewInvalid(errNodeID)
	}
	return nodeRef{ID: uint32(id), End: m[1] - 1}, true, nil
}

// findEventTime locates the "$ns_ at <time> " event marker and parses the time token.
func findEventTime(line string) (float64, bool, error) {
	if !strings.Contains(line, timeMarker) {
		return 0, false, nil
	}
	m := eventTimePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, true, errors.NewInvalid(errTime)
	}
	t, err := strconv.ParseFloat(m[eventTimeGroup], 64)
	if err != nil {
		return 0, true, errors.NewInvalid(errTime)
	}
	return t, true, nil
}

// findAxisAssignment parses the axis assignment following the node reference
// that closes at index from. The selector is the character just before the last
// underscore; the value is the rest of the line.
func findAxisAssignment(line string, from int) (byte, float64, error) {
	if !strings.Contains(line[from+1:], "_") {
		return 0, 0, errors.NewInvalid(errNodePosition)
	}
	m := axisPattern.FindStringSubmatch(line[from:])
	if m == nil {
		return 0, 0, errors.NewInvalid(errNodePosition)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(m[axisValueGroup]), 64)
	if err != nil {
		return 0, 0, errors.NewInvalid(errNodePosition)
	}
	return m[axisGroup][0], value, nil
}

// lineScanner iterates over the lines of a scenario script keeping track of the line number.
// Lines have no length limit.
type lineScanner struct {
	reader *bufio.Reader
	line   string
	number int
	err    error
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{reader: bufio.NewReader(r)}
}

func (s *lineScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.err = err
		if len(line) == 0 {
			return false
		}
	}
	s.number++
	s.line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	return true
}

func (s *lineScanner) Text() string {
	return s.line
}

func (s *lineScanner) Line() int {
	return s.number
}

// Err returns the first non-EOF error encountered while reading
func (s *lineScanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
