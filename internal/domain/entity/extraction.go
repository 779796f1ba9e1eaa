// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Categorization is the validated result of a categorization call: a label
// from the closed category enumeration and the model's confidence in it.
type Categorization struct {
	Category   Category
	Confidence float64 // In [0, 1].
}

// ReceiptImage is an inline receipt photo submitted for parsing.
type ReceiptImage struct {
	MIMEType string
	Data     []byte // Raw image bytes, already base64-decoded.
}

// ReceiptFields is the best-effort result of parsing a receipt image.
// Every field is optional: the model may fail to locate any one of them
// without the parse as a whole failing.
type ReceiptFields struct {
	Merchant *string
	Date     *string // "YYYY-MM-DD" as printed on the receipt.
	Total    *decimal.Decimal
}

// EmailTransaction is a transaction record extracted from an email body.
// All four fields are mandatory in the gateway's output schema. Category is
// free text here, not a member of the closed enumeration; see the scan and
// email-parse use cases for how callers are expected to treat it.
type EmailTransaction struct {
	Date        string // ISO date.
	Amount      decimal.Decimal
	Description string
	Category    string
}
