package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salesconv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadRawRowsCommaDelimited(t *testing.T) {
	path := writeInput(t, "SKU,Description,Qty\nX1,Widget,2\nX2,Gadget,1\n")

	headers, rows, err := ReadRawRows(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SKU", "Description", "Qty"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget", rows[0]["Description"])
	assert.Equal(t, "1", rows[1]["Qty"])
}

func TestReadRawRowsSemicolonDetected(t *testing.T) {
	path := writeInput(t, "SKU;Description;Qty\nX1;Widget;2\n")

	headers, rows, err := ReadRawRows(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SKU", "Description", "Qty"}, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, "X1", rows[0]["SKU"])
}

func TestReadRawRowsShortAndLongRows(t *testing.T) {
	path := writeInput(t, "SKU,Description,Qty\nX1,Widget\nX2,Gadget,1,EXTRA\n")

	_, rows, err := ReadRawRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Short row: trailing field absent.
	_, present := rows[0]["Qty"]
	assert.False(t, present)

	// Long row: extra field dropped.
	assert.Equal(t, "1", rows[1]["Qty"])
	assert.Len(t, rows[1], 3)
}

func TestReadRawRowsMissingFile(t *testing.T) {
	_, _, err := ReadRawRows(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadRawRowsEmptyFile(t *testing.T) {
	path := writeInput(t, "")
	headers, rows, err := ReadRawRows(path)
	require.NoError(t, err)
	assert.Nil(t, headers)
	assert.Nil(t, rows)
}

func TestWriteTemplateCSVFixedSchema(t *testing.T) {
	rows := []models.TemplateRow{
		{
			Name:      "O1001",
			PartnerID: "Acme",
			LineName:  "[X1] Widget",
			LineQty:   "2.00",
			LinePrice: "10.00",
		},
	}

	out := filepath.Join(t.TempDir(), "out", "converted.csv")
	require.NoError(t, WriteTemplateCSV(rows, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"name,partner_id,user_id,Cust #,Salesperson,activity_ids,"+
			"order_line/name,order_line/product_uom_qty,order_line/price_unit,"+
			"order_line/product_id,order_line/product_template_id/name,order_line/product_template_id",
		lines[0])

	// Unpopulated columns are written as empty strings, never omitted.
	assert.Equal(t, "O1001,Acme,,,,,[X1] Widget,2.00,10.00,,,", lines[1])
}

func TestWriteLegacyTemplateCSVNarrowSchema(t *testing.T) {
	rows := []models.LegacyTemplateRow{{Name: "O1", LineName: "[A] a"}}

	out := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, WriteLegacyTemplateCSV(rows, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	header := strings.Split(strings.TrimSpace(string(data)), "\n")[0]
	assert.NotContains(t, header, "Cust #")
	assert.NotContains(t, header, "Salesperson")
}

func TestMarshalTemplateCSVHeaderOnlyWhenEmpty(t *testing.T) {
	data, err := MarshalTemplateCSV(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "name,partner_id,user_id"))
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 1)
}
