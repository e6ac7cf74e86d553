// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"strings"
	"testing"
)

// diagnostics collects reported line numbers for assertions
type diagnostics struct {
	lines []int
}

func (d *diagnostics) option() Option {
	return WithDiagnostics(func(source string, line int, err error) {
		d.lines = append(d.lines, line)
	})
}

func TestSummarizeTrace(t *testing.T) {
	summary, err := SummarizeTrace("testdata/urban-low.tcl")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), summary.Nodes)
	assert.Equal(t, 1.5, summary.StartTime)
	assert.Equal(t, 40.0, summary.EndTime)
	assert.Equal(t, 5, summary.Events)
	assert.Equal(t, 38.5, summary.Duration())
	assert.Equal(t, "Nodes: 3\nStart time: 1.5\nEnd time: 40\n", summary.String())
}

func TestSummarizeMissingTrace(t *testing.T) {
	summary, err := SummarizeTrace("testdata/no-such-trace.tcl")
	assert.Nil(t, summary)
	assert.True(t, errors.IsNotFound(err))
}

func TestSummarizeTraceIdempotent(t *testing.T) {
	first, err := SummarizeTrace("testdata/urban-low.tcl")
	require.NoError(t, err)
	second, err := SummarizeTrace("testdata/urban-low.tcl")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScanEmptyTrace(t *testing.T) {
	summary, err := ScanTrace(strings.NewReader("# nothing to see here\n\n"))
	require.NoError(t, err)
	assert.Equal(t, &Summary{}, summary)
}

func TestScanTraceNodesWithoutEvents(t *testing.T) {
	summary, err := ScanTrace(strings.NewReader("$node_(3) set X_ 1.0\n$node_(3) set Y_ 2.0\n$node_(8) set X_ 1.0\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), summary.Nodes)
	assert.Equal(t, 0.0, summary.StartTime)
	assert.Equal(t, 0.0, summary.EndTime)
}

func TestScanTraceMalformedLines(t *testing.T) {
	trace := strings.Join([]string{
		`$ns_ at 5.0 "$node_(1) setdest 1 2 3"`,
		`$ns_ at 7.0 "$node_(4 setdest 1 2 3"`,
		`$ns_ at 9.0`,
		`$ns_ at abc "$node_(2) setdest 1 2 3"`,
		`$ns_ at 6.0 "$node_(1) setdest 1 2 3"`,
	}, "\n")
	d := &diagnostics{}
	summary, err := ScanTrace(strings.NewReader(trace), d.option())
	require.NoError(t, err)

	// Node 4 is dropped but its event time still counts; line 3 has no terminator after the time
	assert.Equal(t, []int{2, 3, 4}, d.lines)
	assert.Equal(t, uint32(2), summary.Nodes)
	assert.Equal(t, 5.0, summary.StartTime)
	assert.Equal(t, 7.0, summary.EndTime)
	assert.Equal(t, 3, summary.Events)
}

func TestScanTraceZeroStartTime(t *testing.T) {
	trace := `$ns_ at 0.0 "$node_(0) setdest 1 2 3"
$ns_ at 5.0 "$node_(0) setdest 1 2 3"
$ns_ at 3.0 "$node_(1) setdest 1 2 3"
`
	// The zero sentinel forgets the event at 0.0
	summary, err := ScanTrace(strings.NewReader(trace))
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.StartTime)
	assert.Equal(t, 5.0, summary.EndTime)

	summary, err = ScanTrace(strings.NewReader(trace), WithExplicitStartTime())
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.StartTime)
	assert.Equal(t, 5.0, summary.EndTime)
	assert.Equal(t, 3, summary.Events)
}

func TestScanTraceMinMax(t *testing.T) {
	trace := `$ns_ at 8.25 "$node_(0) setdest 1 2 3"
$ns_ at 2.0 "$node_(0) setdest 1 2 3"
$ns_ at 19.5 "$node_(0) setdest 1 2 3"
$ns_ at 4.0 "$node_(0) setdest 1 2 3"
`
	for _, opts := range [][]Option{nil, {WithExplicitStartTime()}} {
		summary, err := ScanTrace(strings.NewReader(trace), opts...)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), summary.Nodes)
		assert.Equal(t, 2.0, summary.StartTime)
		assert.Equal(t, 19.5, summary.EndTime)
		assert.LessOrEqual(t, summary.StartTime, summary.EndTime)
	}
}

func TestScanTraceLongLine(t *testing.T) {
	trace := `$ns_ at 2.0 "$node_(0) setdest 1 2 3"` + "\n" +
		"# " + strings.Repeat("x", 2*1024*1024) + "\n" +
		`$ns_ at 5.0 "$node_(1) setdest 1 2 3"` + "\n"
	summary, err := ScanTrace(strings.NewReader(trace))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), summary.Nodes)
	assert.Equal(t, 2.0, summary.StartTime)
	assert.Equal(t, 5.0, summary.EndTime)
}

func TestScanTraceLeadingSpaceBeforeTime(t *testing.T) {
	d := &diagnostics{}
	summary, err := ScanTrace(strings.NewReader(`$ns_ at  5.0 "$node_(0) setdest 1 2 3"`+"\n"), d.option())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, d.lines)
	assert.Equal(t, 0, summary.Events)
	assert.Equal(t, uint32(1), summary.Nodes)
}

// withStdin replaces stdin with a pipe carrying the given content for the duration of the test
func withStdin(t *testing.T, content string) {
	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	stdin := os.Stdin
	os.Stdin = reader
	t.Cleanup(func() {
		os.Stdin = stdin
		_ = reader.Close()
	})
	go func() {
		_, _ = writer.WriteString(content)
		_ = writer.Close()
	}()
}

func TestSummarizeTraceStdin(t *testing.T) {
	data, err := os.ReadFile("testdata/urban-low.tcl")
	require.NoError(t, err)
	withStdin(t, string(data))

	summary, err := SummarizeTrace("-")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), summary.Nodes)
	assert.Equal(t, 1.5, summary.StartTime)
	assert.Equal(t, 40.0, summary.EndTime)
}
