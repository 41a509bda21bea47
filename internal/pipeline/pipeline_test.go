package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hualiu-nbu/entryform/internal/exporter"
	"github.com/hualiu-nbu/entryform/internal/importer"
	"github.com/hualiu-nbu/entryform/internal/schema"
	"github.com/hualiu-nbu/entryform/internal/validation"
)

func writeInputCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const subsetCSV = "访问形式*,访客姓名*,手机号*\n" +
	"公务拜访,张三,13800138000\n" +
	"入校参观,李四,13900139000\n" +
	"公务拜访,王五,13700137000\n"

func TestRunSubsetFile(t *testing.T) {
	input := writeInputCSV(t, subsetCSV)
	output := filepath.Join(t.TempDir(), "out.csv")

	result := New(input, output, exporter.Options{Banner: false}).Run()

	require.True(t, result.Success, "run failed: %v", result.Error)
	assert.Equal(t, 3, result.Stats.RecordsImported)
	assert.Equal(t, 0, result.Stats.RecordsFilled)
	assert.Equal(t, 3, result.Stats.RecordsExported)
	assert.Equal(t, output, result.OutputPath)
	assert.Greater(t, result.Stats.ProcessingTime.Nanoseconds(), int64(0))

	// Re-import the output: all twelve columns exist, the absent ones empty,
	// and the suffixed values round-trip.
	records, err := importer.CSV(output)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "张三", records[0][schema.KeyVisitorName])
	assert.Equal(t, "13900139000", records[1][schema.KeyPhone])
	for _, r := range records {
		assert.Len(t, r, schema.FieldCount)
		assert.Equal(t, "", r[schema.KeyVehicle])
	}
}

func TestRunWithFill(t *testing.T) {
	input := writeInputCSV(t, subsetCSV)
	output := filepath.Join(t.TempDir(), "out.json")

	fill := map[string]string{
		schema.KeyApproverName: "赵老师",
		schema.KeyLocations:    "东区@图书馆",
	}
	result := New(input, output, exporter.Options{}).
		WithFill(fill, 1). // skip the first record
		Run()

	require.True(t, result.Success, "run failed: %v", result.Error)
	assert.Equal(t, 2, result.Stats.RecordsFilled)

	records, err := importer.CSV(input)
	require.NoError(t, err)
	assert.Equal(t, "", records[0][schema.KeyApproverName], "input file is untouched")
}

func TestRunValidationFailure(t *testing.T) {
	input := writeInputCSV(t, subsetCSV)
	output := filepath.Join(t.TempDir(), "out.csv")

	result := New(input, output, exporter.Options{Validate: true}).Run()

	assert.False(t, result.Success)
	assert.Equal(t, "", result.OutputPath)
	assert.Equal(t, 3, result.Stats.RecordsImported)

	var recordErr *validation.RecordError
	require.ErrorAs(t, result.Error, &recordErr)
	assert.Equal(t, 0, recordErr.Index, "the first incomplete record fails")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output file is left behind")
}

func TestRunMissingInput(t *testing.T) {
	result := New(filepath.Join(t.TempDir(), "nope.csv"), "out.csv", exporter.Options{}).Run()

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "import failed")
	assert.Greater(t, result.Stats.ProcessingTime.Nanoseconds(), int64(0),
		"failed runs record their duration too")
}

func TestRunFillOutOfRange(t *testing.T) {
	input := writeInputCSV(t, subsetCSV)
	output := filepath.Join(t.TempDir(), "out.csv")

	result := New(input, output, exporter.Options{}).
		WithFill(map[string]string{schema.KeyApproverName: "赵老师"}, 10).
		Run()

	assert.False(t, result.Success)
	assert.Contains(t, result.Error.Error(), "batch fill failed")
}

func TestRunEmptyFillValuesTolerated(t *testing.T) {
	input := writeInputCSV(t, subsetCSV)
	output := filepath.Join(t.TempDir(), "out.csv")

	// A fill whose values are all empty is a no-op, not a failure.
	result := New(input, output, exporter.Options{Banner: false}).
		WithFill(map[string]string{schema.KeyApproverName: ""}, 0).
		Run()

	require.True(t, result.Success, "run failed: %v", result.Error)
	assert.Equal(t, 0, result.Stats.RecordsFilled)
}
