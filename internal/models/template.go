package models

// TemplateRow is one line of the fixed-schema output CSV. Header fields
// (Name through Salesperson) are populated only on the first line of each
// order group and left empty on the group's remaining lines; the downstream
// importer depends on that sparse-header convention. Order-line fields are
// populated on every line.
//
// The csv tags define the output column order; gocsv serializes the struct
// fields in declaration order, so this struct is the schema.
type TemplateRow struct {
	Name             string `csv:"name"`
	PartnerID        string `csv:"partner_id"`
	UserID           string `csv:"user_id"`
	CustCode         string `csv:"Cust #"`
	Salesperson      string `csv:"Salesperson"`
	ActivityIDs      string `csv:"activity_ids"`
	LineName         string `csv:"order_line/name"`
	LineQty          string `csv:"order_line/product_uom_qty"`
	LinePrice        string `csv:"order_line/price_unit"`
	LineProductID    string `csv:"order_line/product_id"`
	LineTemplateName string `csv:"order_line/product_template_id/name"`
	LineTemplateID   string `csv:"order_line/product_template_id"`
}

// LegacyTemplateRow is the narrower output schema that predates the
// Cust #/Salesperson columns. Some consumers still import this shape.
type LegacyTemplateRow struct {
	Name             string `csv:"name"`
	PartnerID        string `csv:"partner_id"`
	UserID           string `csv:"user_id"`
	ActivityIDs      string `csv:"activity_ids"`
	LineName         string `csv:"order_line/name"`
	LineQty          string `csv:"order_line/product_uom_qty"`
	LinePrice        string `csv:"order_line/price_unit"`
	LineProductID    string `csv:"order_line/product_id"`
	LineTemplateName string `csv:"order_line/product_template_id/name"`
	LineTemplateID   string `csv:"order_line/product_template_id"`
}

// Legacy converts a TemplateRow to the narrow schema by dropping the
// Cust # and Salesperson columns.
func (r TemplateRow) Legacy() LegacyTemplateRow {
	return LegacyTemplateRow{
		Name:             r.Name,
		PartnerID:        r.PartnerID,
		UserID:           r.UserID,
		ActivityIDs:      r.ActivityIDs,
		LineName:         r.LineName,
		LineQty:          r.LineQty,
		LinePrice:        r.LinePrice,
		LineProductID:    r.LineProductID,
		LineTemplateName: r.LineTemplateName,
		LineTemplateID:   r.LineTemplateID,
	}
}

// ToLegacy converts a slice of TemplateRows to the narrow schema.
func ToLegacy(rows []TemplateRow) []LegacyTemplateRow {
	legacy := make([]LegacyTemplateRow, len(rows))
	for i, r := range rows {
		legacy[i] = r.Legacy()
	}
	return legacy
}
