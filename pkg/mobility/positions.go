// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/v2x-scenario/pkg/utils"
	"io"
	"strings"
)

// LoadPositions scans the specified static position script; - for stdin.
// Only a failure to open the file is returned as an error.
func LoadPositions(path string, opts ...Option) (NodeMap, error) {
	log.Infof("Loading node positions from %s", path)
	input, err := utils.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	return ScanPositions(input, append([]Option{WithSource(path)}, opts...)...)
}

// ScanPositions builds the node map from static position lines read from the given reader
func ScanPositions(r io.Reader, opts ...Option) (NodeMap, error) {
	o := newOptions(opts)
	nodes := make(NodeMap)

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, setdestMarker) {
			continue
		}

		ref, found, err := findNodeRef(line)
		if err != nil {
			o.report(scanner.Line(), err)
			continue
		}
		if !found {
			continue
		}
		node := nodes.getOrCreate(ref.ID)

		axis, value, err := findAxisAssignment(line, ref.End)
		if err != nil {
			o.report(scanner.Line(), err)
			continue
		}
		switch axis {
		case 'X':
			node.X = value
		case 'Y':
			node.Y = value
		case 'Z':
			node.Z = value
		default:
			if o.axisDiagnostics {
				o.report(scanner.Line(), errors.NewInvalid("unknown axis %q for node %d", axis, ref.ID))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Debugf("Positions %s: %d nodes", o.source, len(nodes))
	return nodes, nil
}
