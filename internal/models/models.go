// Package models provides the data structures used throughout the application.
package models

// RawRow is one data line of an input file, keyed by the literal column names
// from the file's header row. Values are untrimmed; readers pass rows through
// as-is and the conversion engine is responsible for defensive coercion.
type RawRow map[string]string

// Default values written into header fields when the source file carries no
// usable customer or salesperson information. These literals match what the
// downstream import expects for unattributed orders.
const (
	DefaultPartner     = "Default User"
	DefaultSalesperson = "Jabes Omar De La Cruz"
)

// Order name prefixes. Document-numbered orders get "O<doc>", files without a
// document column get a generated "QO<MMDDhhmm>" quotation name.
const (
	OrderNamePrefix     = "O"
	QuotationNamePrefix = "QO"
)
