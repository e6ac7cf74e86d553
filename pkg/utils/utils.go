// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package utils contains various utilities for working with scenario input and output files
package utils

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"io"
	"os"
)

// StdStream is the path denoting stdin for inputs and stdout for outputs
const StdStream = "-"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenInput opens the specified file for reading; stdin if -
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewNotFound("Error opening file: %s: %v", path, err)
	}
	return file, nil
}

// CreateOutput creates the specified file for writing; stdout if -
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == StdStream {
		return nopCloser{Writer: os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.NewInvalid("Error creating file: %s: %v", path, err)
	}
	return file, nil
}
