package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/cfmt/internal/cases"
	"github.com/bjaus/cfmt/internal/report"
)

func sampleResults() []cases.Result {
	return []cases.Result{
		{Suite: "ints", Case: "hex", Format: "%#x", Want: "0x10", Got: "0x10", Pass: true},
		{Suite: "ints", Case: "pad", Format: "%5d", Want: "1", Got: "    1", Diff: "-\"1\"\n+\"    1\"\n"},
		{Suite: "errs", Case: "short", Format: "%d|%d", WantErr: "not-enough-args", Err: "not enough arguments", Pass: true},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range report.Formats() {
		got, err := report.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}

func TestWriteGoTemplate(t *testing.T) {
	t.Parallel()
	f, err := report.ParseFormat("go-template={{.Status}} {{.Suite}}/{{.Case}}")
	require.NoError(t, err)
	assert.Equal(t, report.GoTemplate("{{.Status}} {{.Suite}}/{{.Case}}"), f)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, f, sampleResults()))
	assert.Equal(t, "PASS ints/hex\nFAIL ints/pad\nPASS errs/short\n", buf.String())

	err = report.Write(&buf, report.GoTemplate("{{.Suite"), sampleResults())
	assert.ErrorIs(t, err, report.ErrInvalidTemplate)
}

func TestWriteUnsupported(t *testing.T) {
	t.Parallel()
	err := report.Write(&bytes.Buffer{}, report.Format("xml"), sampleResults())
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}

func TestSummary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2 passed, 1 failed", report.Summary(sampleResults()))
	assert.Equal(t, "0 passed, 0 failed", report.Summary(nil))
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, sampleResults()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "Suite")
	assert.True(t, strings.HasPrefix(lines[2], "├"))
	assert.Contains(t, lines[3], `"0x10"`)
	assert.Contains(t, lines[4], " FAIL ")
	assert.Contains(t, lines[4], `"    1"`)
	assert.Contains(t, lines[5], "error: not-enough-args")
	assert.True(t, strings.HasPrefix(lines[6], "╰"))
	assert.Equal(t, "2 passed, 1 failed", lines[7])

	// Every bordered line has the same display width.
	for _, l := range lines[1:7] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)), l)
	}
}

func TestWriteTableTruncatesLongCells(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 100)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, []cases.Result{
		{Suite: "s", Case: "c", Format: "%s", Want: long, Got: long, Pass: true},
	}))
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), long)
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Markdown, sampleResults()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "| Suite"))
	assert.Contains(t, lines[1], ":----:")
	assert.Contains(t, lines[4], `"%d\|%d"`)
}

func TestColumnAlignment(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Markdown, sampleResults()))

	lines := strings.Split(buf.String(), "\n")
	sep := strings.Split(strings.Trim(lines[1], "| "), " | ")
	require.Len(t, sep, 6)
	for i, cell := range sep {
		if i == 2 {
			assert.Regexp(t, `^:-+:$`, cell)
			continue
		}
		assert.Regexp(t, `^-+$`, cell, "column %d", i)
	}

	buf.Reset()
	require.NoError(t, report.Write(&buf, report.HTML, sampleResults()))
	// Only the Status cell of the header and of each result row is styled.
	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "text-align"))
	assert.Equal(t, 4, strings.Count(out, `style="text-align: center">`))
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.CSV, sampleResults()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Suite", "Case", "Status", "Format", "Want", "Got"}, records[0])
	assert.Equal(t, []string{"ints", "pad", "FAIL", `"%5d"`, `"1"`, `"    1"`}, records[2])
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.TSV, sampleResults()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Suite\tCase\tStatus\tFormat\tWant\tGot", lines[0])
	assert.Equal(t, "ints\thex\tPASS\t\"%#x\"\t\"0x10\"\t\"0x10\"", lines[1])
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.HTML, []cases.Result{
		{Suite: "s", Case: "<b>", Format: "%s", Want: "&", Got: "&", Pass: true},
		{Suite: "s", Case: "bad", Format: "%d", Want: "1", Got: "2"},
	}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<table class="cfmt-check">`))
	assert.Contains(t, out, "  <thead>\n    <tr>\n      <th>Suite</th>")
	assert.Contains(t, out, `<th style="text-align: center">Status</th>`)
	assert.Contains(t, out, "<td>&lt;b&gt;</td>")
	assert.Contains(t, out, "<td>&#34;&amp;&#34;</td>")
	assert.Contains(t, out, `<tr class="fail">`)
	assert.Contains(t, out, `<td colspan="6">1 passed, 1 failed</td>`)
	assert.True(t, strings.HasSuffix(out, "</table>\n"))
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.JSON, sampleResults()))

	var got []cases.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleResults(), got)

	buf.Reset()
	require.NoError(t, report.Write(&buf, report.JSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.JSONL, sampleResults()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	var r cases.Result
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &r))
	assert.Equal(t, "pad", r.Case)
	assert.False(t, r.Pass)
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.YAML, sampleResults()))

	var got []cases.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleResults(), got)
}

func TestWritePlain(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Plain, sampleResults()))
	assert.Equal(t, strings.Join([]string{
		"PASS ints/hex",
		"FAIL ints/pad",
		`    -"1"`,
		`    +"    1"`,
		"PASS errs/short",
		"2 passed, 1 failed",
		"",
	}, "\n"), buf.String())
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()
	for _, f := range []report.Format{report.Table, report.Markdown, report.CSV, report.TSV, report.HTML, report.JSONL} {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, f, nil))
		assert.Empty(t, buf.String(), f)
	}
}
