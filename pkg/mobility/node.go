// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package mobility parses ns-2 style mobility traces and static position scripts
// into node summaries and position maps.
package mobility

import (
	"fmt"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"sort"
	"strings"
)

var log = logging.GetLogger("mobility")

// Node is a scenario node and its position
type Node struct {
	ID uint32  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	Z  float64 `yaml:"z"`
}

func (n Node) String() string {
	return fmt.Sprintf("node{id:%d, x:%g, y:%g, z:%g}", n.ID, n.X, n.Y, n.Z)
}

// NodeMap holds nodes keyed by their identifier
type NodeMap map[uint32]*Node

// getOrCreate returns the node with the given ID, inserting one with zero coordinates if absent
func (m NodeMap) getOrCreate(id uint32) *Node {
	node, ok := m[id]
	if !ok {
		node = &Node{ID: id}
		m[id] = node
	}
	return node
}

// Nodes returns a copy of the nodes in the map, in no particular order
func (m NodeMap) Nodes() []Node {
	nodes := make([]Node, 0, len(m))
	for _, node := range m {
		nodes = append(nodes, *node)
	}
	return nodes
}

// Ordered returns the nodes sorted by ascending identifier
func (m NodeMap) Ordered() []Node {
	nodes := m.Nodes()
	SortNodes(nodes)
	return nodes
}

func (m NodeMap) String() string {
	sb := strings.Builder{}
	sb.WriteString("[\n")
	nodes := m.Ordered()
	for i, node := range nodes {
		sb.WriteString("  ")
		sb.WriteString(node.String())
		if i < len(nodes)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]")
	return sb.String()
}

// SortNodes sorts the given nodes in place by ascending identifier
func SortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})
}
