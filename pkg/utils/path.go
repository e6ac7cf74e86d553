// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"path/filepath"
)

// ResolvePath joins the scenario directory and the given file name; absolute names,
// empty directories and the - stream are returned unchanged
func ResolvePath(dir string, name string) string {
	if dir == "" || name == StdStream || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
