package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sugawarayuuta/sonnet"
	"github.com/zeebo/assert"

	"github.com/zeebo/tscskew/report"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunFatal(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"1", "2"},
		{"abc"},
		{"0"},
		{"33"},
		{"-limit", "2", "3"},
		{"-cpus", "0,x", "2"},
		{"-cpus", "0,0", "2"},
	} {
		code, stdout, stderr := runArgs(args...)
		assert.Equal(t, code, 1)
		assert.Equal(t, stdout, "")
		assert.That(t, stderr != "")
	}
}

func TestRunSingle(t *testing.T) {
	code, stdout, stderr := runArgs("1")
	assert.Equal(t, code, 0)
	assert.That(t, strings.Contains(stderr, "warning: single worker"))
	assert.That(t, strings.Contains(stdout, "Stamp-mp"))
	assert.That(t, strings.Contains(stdout, "1 workers"))
}

func TestRunJSON(t *testing.T) {
	code, stdout, _ := runArgs("-json", "2")
	assert.Equal(t, code, 0)

	var rep report.Report
	assert.NoError(t, sonnet.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, rep.Workers, 2)
	assert.Equal(t, len(rep.Rows), 2)

	zeros := 0
	for _, row := range rep.Rows {
		if row.Stamp == 0 {
			zeros++
		}
	}
	assert.That(t, zeros >= 1)
}

func TestParseCPUs(t *testing.T) {
	cpus, err := parseCPUs("")
	assert.NoError(t, err)
	assert.That(t, cpus == nil)

	cpus, err = parseCPUs("3, 1,2")
	assert.NoError(t, err)
	assert.DeepEqual(t, cpus, []int{3, 1, 2})

	_, err = parseCPUs("1,,2")
	assert.Error(t, err)
}
