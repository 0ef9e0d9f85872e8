package ioformat_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/ioformat"
)

func TestReadQueriesParsesOptionalColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queries.csv")
	content := "id,start,target,min_consumption,max_consumption,rank\n" +
		"1,0,5,,,\n" +
		"2,3,9,10.5,200.25,7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	qs, err := ioformat.ReadQueries(path)
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, uint32(1), qs[0].ID)
	assert.Equal(t, int32(0), qs[0].Start)
	assert.Equal(t, int32(5), qs[0].Target)
	assert.Equal(t, float64(0), qs[0].MinConsumption)

	assert.Equal(t, uint32(2), qs[1].ID)
	assert.InDelta(t, 10.5, qs[1].MinConsumption, 1e-9)
	assert.InDelta(t, 200.25, qs[1].MaxConsumption, 1e-9)
	assert.Equal(t, uint32(7), qs[1].Rank)
}

func TestWriteResultsRendersInfinityAsString(t *testing.T) {
	var buf bytes.Buffer
	err := ioformat.WriteResults(&buf, []ioformat.ResultRecord{
		ioformat.InfeasibleResult(1, 0, 5),
	})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), `"min_duration":"Infinity"`))
}

func TestWriteResultsFeasibleRecord(t *testing.T) {
	var buf bytes.Buffer
	rec := ioformat.ResultRecord{
		ID: 2, Start: 0, Target: 1,
		MinDuration: 1000, MinConsumption: 500,
		Path: []uint32{0, 1}, Times: []float64{0, 1000}, Consumptions: []float64{0, 500},
	}
	require.NoError(t, ioformat.WriteResults(&buf, []ioformat.ResultRecord{rec}))
	assert.True(t, strings.Contains(buf.String(), `"min_duration":1000`))
}
