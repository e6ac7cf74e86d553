// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("scratch", "mob", "urban-low.tcl"), ResolvePath("./scratch/mob", "urban-low.tcl"))
	assert.Equal(t, "/data/urban-low.tcl", ResolvePath("./scratch/mob", "/data/urban-low.tcl"))
	assert.Equal(t, "urban-low.tcl", ResolvePath("", "urban-low.tcl"))
	assert.Equal(t, StdStream, ResolvePath("./scratch/mob", StdStream))
}
