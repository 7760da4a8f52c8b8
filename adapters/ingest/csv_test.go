package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardrails/domain/dataset"
)

func TestDecodeCSV_TypedCells(t *testing.T) {
	input := "age,name,active\n25,ada,true\n30,lin,false\n,grace,true\n"

	ds, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, ds.ColumnCount())
	assert.Equal(t, []string{"age", "name", "active"}, ds.ColumnNames())
	assert.Equal(t, 3, ds.RowCount())

	age := ds.ColumnByName("age")
	require.NotNil(t, age)
	assert.True(t, age.Values[0].IsNumeric())
	assert.Equal(t, 25.0, age.Values[0].AsFloat64())
	assert.True(t, age.Values[2].IsMissing)

	name := ds.ColumnByName("name")
	require.NotNil(t, name)
	assert.Equal(t, dataset.ValueTypeString, name.Values[0].Type)

	active := ds.ColumnByName("active")
	require.NotNil(t, active)
	assert.True(t, active.Values[0].IsBoolean(), "uniform true/false column should upgrade to boolean cells")
	assert.True(t, *active.Values[0].BooleanVal)
	assert.False(t, *active.Values[1].BooleanVal)
}

func TestDecodeCSV_MixedColumnStaysUntyped(t *testing.T) {
	input := "flag\ntrue\nfalse\nmaybe\n"

	ds, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	flag := ds.ColumnByName("flag")
	require.NotNil(t, flag)
	for _, v := range flag.Values {
		assert.Equal(t, dataset.ValueTypeString, v.Type)
	}
}

func TestDecodeCSV_NATokens(t *testing.T) {
	input := "v\nNA\nn/a\nnull\nNaN\n7\n"

	ds, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	col := ds.ColumnByName("v")
	require.NotNil(t, col)
	missing := 0
	for _, v := range col.Values {
		if v.IsMissing {
			missing++
		}
	}
	assert.Equal(t, 4, missing)
	assert.True(t, col.Values[4].IsNumeric())
}

func TestDecodeCSV_RaggedRowsRejected(t *testing.T) {
	input := "a,b\n1,2\n3\n"

	_, err := DecodeCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestDecodeCSV_Empty(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDecodeCSV_HeaderOnly(t *testing.T) {
	ds, err := DecodeCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.RowCount())
	assert.Equal(t, 2, ds.ColumnCount())
}

func TestDecodeCSV_DuplicateHeaders(t *testing.T) {
	ds, err := DecodeCSV(strings.NewReader("x,x,x\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x.1", "x.2"}, ds.ColumnNames())
}

func TestDecode_DispatchesOnExtension(t *testing.T) {
	ds, err := Decode("data.CSV", strings.NewReader("a\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, ds.RowCount())

	_, err = Decode("data.parquet", strings.NewReader(""))
	assert.Error(t, err)
}

func TestCoerceCell(t *testing.T) {
	tests := []struct {
		raw  string
		want dataset.ValueType
	}{
		{"42", dataset.ValueTypeNumeric},
		{"-3.5", dataset.ValueTypeNumeric},
		{"1e3", dataset.ValueTypeNumeric},
		{"", dataset.ValueTypeMissing},
		{"  ", dataset.ValueTypeMissing},
		{"NULL", dataset.ValueTypeMissing},
		{"hello", dataset.ValueTypeString},
		{"2024-01-01", dataset.ValueTypeString},
		{"true", dataset.ValueTypeString},
	}
	for _, tt := range tests {
		got := CoerceCell(tt.raw)
		if got.Type != tt.want {
			t.Errorf("CoerceCell(%q) type = %s, want %s", tt.raw, got.Type, tt.want)
		}
	}
}
