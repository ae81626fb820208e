// Package alias maps the semantic fields of a sales order (document number,
// customer, SKU, ...) to whichever literal column names a given export file
// happens to use. The alias lists are ordinary data tried in priority order,
// which keeps resolution extensible and unit-testable on its own.
package alias

import (
	"strings"

	"salesconv/internal/models"
)

// Field names a semantic sales-order field resolved from the input header.
type Field string

const (
	FieldDocNumber   Field = "doc_number"
	FieldCustomer    Field = "customer"
	FieldSKU         Field = "sku"
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldPrice       Field = "price"
	FieldSalesperson Field = "salesperson"
	FieldCustCode    Field = "cust_code"
)

// Fields lists all semantic fields in a stable order.
var Fields = []Field{
	FieldDocNumber,
	FieldCustomer,
	FieldSKU,
	FieldDescription,
	FieldQuantity,
	FieldPrice,
	FieldSalesperson,
	FieldCustCode,
}

// Table maps each semantic field to an ordered list of literal header names,
// tried in priority order. Matching is case-sensitive: the lists enumerate
// the case variants seen in the wild rather than case-folding at runtime.
type Table map[Field][]string

// DefaultTable returns the built-in alias table covering the header variants
// observed in Epicor exports.
func DefaultTable() Table {
	return Table{
		FieldDocNumber:   {"Doc #", "DOC #", "Doc#", "DOC#", "Doc No", "DOC NO", "Doc"},
		FieldCustomer:    {"Customer Name", "CUSTOMER NAME", "Customer", "CLIENTE", "Cust #"},
		FieldSKU:         {"SKU", "Sku", "sku", "Item", "ITEM"},
		FieldDescription: {"Description", "DESCRIPTION", "description", "DESCRIPCION", "DESCRIPCIÓN"},
		FieldQuantity:    {"Qty", "QTY", "Quantity"},
		FieldPrice:       {"Price", "PRICE", "Unit Price", "UnitPrice"},
		FieldSalesperson: {"Salesperson", "SALESPERSON", "Sales Person", "Sales_Person"},
		FieldCustCode:    {"Cust #"},
	}
}

// Columns is the per-file resolution result: semantic field to the literal
// header name actually present in that file. Absent fields are simply not in
// the map; downstream logic treats them as always-empty.
type Columns map[Field]string

// Resolve scans each field's alias list against the file's header names and
// takes the first literal match. Absence of a field is a legitimate outcome,
// not an error.
func (t Table) Resolve(headers []string) Columns {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	columns := make(Columns)
	for field, aliases := range t {
		for _, a := range aliases {
			if present[a] {
				columns[field] = a
				break
			}
		}
	}
	return columns
}

// Has reports whether the file resolved a column for the given field.
func (c Columns) Has(field Field) bool {
	_, ok := c[field]
	return ok
}

// Get returns the trimmed value of the given semantic field from a raw row,
// or the empty string when the field resolved to no column or the row has no
// value for it.
func (c Columns) Get(row models.RawRow, field Field) string {
	name, ok := c[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[name])
}
