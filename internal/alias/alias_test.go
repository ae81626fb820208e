package alias

import (
	"testing"

	"salesconv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePicksFirstAliasPresent(t *testing.T) {
	table := DefaultTable()

	cols := table.Resolve([]string{"Doc #", "DOC#", "Customer Name", "SKU", "Qty"})

	assert.Equal(t, "Doc #", cols[FieldDocNumber])
	assert.Equal(t, "Customer Name", cols[FieldCustomer])
	assert.Equal(t, "SKU", cols[FieldSKU])
	assert.Equal(t, "Qty", cols[FieldQuantity])
}

func TestResolveRespectsPriorityOrder(t *testing.T) {
	table := DefaultTable()

	// "Doc #" outranks "Doc" even when both are present.
	cols := table.Resolve([]string{"Doc", "Doc #"})
	assert.Equal(t, "Doc #", cols[FieldDocNumber])
}

func TestResolveIsCaseSensitive(t *testing.T) {
	table := DefaultTable()

	// "doc #" is not in the alias list; only literal variants match.
	cols := table.Resolve([]string{"doc #", "qty"})
	assert.False(t, cols.Has(FieldDocNumber))
	assert.False(t, cols.Has(FieldQuantity))
}

func TestResolveAbsenceIsNotAnError(t *testing.T) {
	table := DefaultTable()

	cols := table.Resolve([]string{"SKU", "Description"})
	assert.True(t, cols.Has(FieldSKU))
	assert.False(t, cols.Has(FieldDocNumber))
	assert.False(t, cols.Has(FieldSalesperson))
}

func TestGetTrimsAndHandlesMissing(t *testing.T) {
	table := DefaultTable()
	cols := table.Resolve([]string{"SKU", "Qty"})

	row := models.RawRow{"SKU": "  X1 ", "Qty": "2"}
	assert.Equal(t, "X1", cols.Get(row, FieldSKU))
	assert.Equal(t, "2", cols.Get(row, FieldQuantity))

	// Field resolved to no column at all.
	assert.Equal(t, "", cols.Get(row, FieldDocNumber))

	// Column resolved but value absent from this row.
	assert.Equal(t, "", cols.Get(models.RawRow{}, FieldSKU))
}

func TestDefaultTableCoversAllFields(t *testing.T) {
	table := DefaultTable()
	for _, field := range Fields {
		require.NotEmpty(t, table[field], "field %s has no aliases", field)
	}
}
