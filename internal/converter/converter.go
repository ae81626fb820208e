// Package converter implements the row-transformation engine that turns
// loosely-structured ERP sales-order exports into the fixed-schema template
// consumed by the downstream order-management import.
//
// The engine groups flat line-item rows into orders by document number and
// emits one header-bearing line per order followed by plain line-item rows.
// It never fails on dirty data: rows without a SKU are skipped, unparseable
// numbers become 0.00, and missing columns read as permanently empty. The
// only error it surfaces is a file that cannot be read at all.
package converter

import (
	"strings"
	"time"

	"salesconv/internal/alias"
	"salesconv/internal/common"
	"salesconv/internal/directory"
	"salesconv/internal/logging"
	"salesconv/internal/models"
)

// quotationTimeLayout generates the MMDDhhmm suffix for quotation names when
// a file has no document-number column.
const quotationTimeLayout = "01021504"

// Engine converts raw input rows to template rows. It holds no per-file
// state; one Engine may serve any number of conversions, concurrently, since
// the directory and alias table are read-only after construction.
type Engine struct {
	directory *directory.Directory
	aliases   alias.Table
	logger    logging.Logger
	now       func() time.Time
}

// New creates an Engine using the given salesperson directory. A nil
// directory behaves as an empty one (all lookups miss).
func New(dir *directory.Directory, logger logging.Logger) *Engine {
	if dir == nil {
		dir = directory.New(nil)
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		directory: dir,
		aliases:   alias.DefaultTable(),
		logger:    logger,
		now:       time.Now,
	}
}

// SetAliasTable replaces the built-in alias table, typically with one
// extended from an alias override file.
func (e *Engine) SetAliasTable(t alias.Table) {
	if t != nil {
		e.aliases = t
	}
}

// SetClock replaces the time source used for generated quotation names.
// Tests inject a fixed clock here.
func (e *Engine) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// ConvertFile reads the file at path and converts it to template rows.
func (e *Engine) ConvertFile(path string) ([]models.TemplateRow, error) {
	headers, rows, err := common.ReadRawRows(path)
	if err != nil {
		return nil, err
	}
	return e.Convert(headers, rows), nil
}

// ConvertToCSV converts the input file and writes the result to outputFile
// in the fixed template schema. No partial output is written when reading
// fails.
func (e *Engine) ConvertToCSV(inputFile, outputFile string) error {
	rows, err := e.ConvertFile(inputFile)
	if err != nil {
		return err
	}
	return common.WriteTemplateCSV(rows, outputFile)
}

// Convert transforms raw rows into ordered template rows. headers is the
// literal header row of the file and decides, via alias resolution, which
// semantic fields exist for this file at all.
func (e *Engine) Convert(headers []string, rows []models.RawRow) []models.TemplateRow {
	cols := e.aliases.Resolve(headers)

	if cols.Has(alias.FieldDocNumber) {
		return e.convertGrouped(cols, rows)
	}
	return e.convertSingleOrder(cols, rows)
}

// convertGrouped handles files with a document-number column: consecutive
// rows sharing a document number form one order, and only the first row of
// each order carries the header fields.
func (e *Engine) convertGrouped(cols alias.Columns, rows []models.RawRow) []models.TemplateRow {
	var out []models.TemplateRow
	tracker := orderTracker{}

	for _, row := range rows {
		sku := cols.Get(row, alias.FieldSKU)
		if sku == "" {
			// Note/comment line, never emitted.
			continue
		}

		tr := e.lineFields(cols, row, sku)

		doc := cols.Get(row, alias.FieldDocNumber)
		if tracker.begin(doc) {
			customer := cols.Get(row, alias.FieldCustomer)
			custCode := cols.Get(row, alias.FieldCustCode)
			spName := e.salespersonFor(cols.Get(row, alias.FieldSalesperson))

			tr.Name = models.OrderNamePrefix + stripWhitespace(doc)
			tr.PartnerID = orDefault(customer, models.DefaultPartner)
			tr.UserID = spName
			tr.CustCode = orDefault(custCode, orDefault(customer, models.DefaultPartner))
			tr.Salesperson = spName
		}

		out = append(out, tr)
	}

	e.logger.Info("Converted rows",
		logging.Field{Key: "input", Value: len(rows)},
		logging.Field{Key: "output", Value: len(out)})
	return out
}

// convertSingleOrder handles files with no resolvable document-number
// column: the whole file is one implicit order under a generated quotation
// name, with the header fields on the first surviving row only. No
// salesperson lookup is attempted in this mode.
func (e *Engine) convertSingleOrder(cols alias.Columns, rows []models.RawRow) []models.TemplateRow {
	var out []models.TemplateRow
	quotation := models.QuotationNamePrefix + e.now().Format(quotationTimeLayout)
	first := true

	for _, row := range rows {
		sku := cols.Get(row, alias.FieldSKU)
		if sku == "" {
			continue
		}

		tr := e.lineFields(cols, row, sku)

		if first {
			tr.Name = quotation
			tr.PartnerID = models.DefaultPartner
			tr.UserID = models.DefaultSalesperson
			tr.CustCode = models.DefaultPartner
			tr.Salesperson = models.DefaultSalesperson
			first = false
		}

		out = append(out, tr)
	}

	e.logger.Info("Converted rows as single order",
		logging.Field{Key: "order", Value: quotation},
		logging.Field{Key: "input", Value: len(rows)},
		logging.Field{Key: "output", Value: len(out)})
	return out
}

// lineFields builds the order-line fields every surviving row carries. The
// composite "[SKU] description" identifier is used for the line name, the
// product id and the product template id; the bare description fills the
// template name column.
func (e *Engine) lineFields(cols alias.Columns, row models.RawRow, sku string) models.TemplateRow {
	description := cols.Get(row, alias.FieldDescription)
	product := "[" + sku + "] " + description

	return models.TemplateRow{
		LineName:         product,
		LineQty:          models.FormatAmount(models.ParseAmount(cols.Get(row, alias.FieldQuantity))),
		LinePrice:        models.FormatAmount(models.ParseAmount(cols.Get(row, alias.FieldPrice))),
		LineProductID:    product,
		LineTemplateName: description,
		LineTemplateID:   product,
	}
}

// salespersonFor resolves a raw salesperson code through the directory,
// falling back to the fixed default name when the code is empty or unmapped.
func (e *Engine) salespersonFor(code string) string {
	if name, ok := e.directory.Lookup(code); ok {
		return name
	}
	return models.DefaultSalesperson
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
