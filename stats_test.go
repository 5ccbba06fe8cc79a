package qcmdpc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRecordAndTotal(t *testing.T) {
	p := Params{BlockLength: 100, BlockWeight: 10, ErrorWeight: 20, TTLSaturate: 5}
	var out bytes.Buffer
	rec := NewRecorder(p, 10, &out)

	rec.Record(true, 3)
	rec.Record(true, 3)
	rec.Record(true, 7)
	rec.Record(false, 10)

	assert.Equal(t, uint32(4), rec.Total())
}

func TestRecorderReportFormat(t *testing.T) {
	p := Params{BlockLength: 100, BlockWeight: 10, ErrorWeight: 20, TTLSaturate: 5}
	var out bytes.Buffer
	rec := NewRecorder(p, 5, &out)
	rec.Record(true, 2)
	rec.Record(true, 2)
	rec.Record(false, 5)

	rec.Report()
	logged := out.String()
	assert.Contains(t, logged, "2:2")
	assert.Contains(t, logged, ">5:1")
	assert.True(t, strings.Contains(logged, "3")) // total trial count
}

func TestRecorderSnapshotRoundTrip(t *testing.T) {
	p := Params{BlockLength: 100, BlockWeight: 10, ErrorWeight: 20, TTLSaturate: 5}
	var out bytes.Buffer
	rec := NewRecorder(p, 5, &out)
	rec.Record(true, 1)
	rec.Record(true, 1)
	rec.Record(true, 4)
	rec.Record(false, 5)

	snap := rec.Snapshot()

	restored := NewRecorder(p, 5, &out)
	require.NoError(t, restored.LoadSnapshot(snap))
	assert.Equal(t, rec.byIter, restored.byIter)
	assert.Equal(t, rec.failures, restored.failures)
}
