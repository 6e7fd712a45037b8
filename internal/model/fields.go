package model

// Portfolio fields.
const (
	FieldCurrentValue  = "Current_Value_EUR"
	FieldDividend2026  = "Total_Dividend_2026_EUR"
	FieldTicker        = "Ticker"
	FieldBucket        = "Bucket"
	FieldBuySignal     = "Buy_Signal"
	FieldCompany       = "Company"
	FieldRegion        = "Region"
	FieldSector        = "Sector"
	FieldDividendYield = "Dividend_Yield_%"
	FieldPriorityToAdd = "Priority_to_Add"
)

// Transaction fields.
const (
	FieldType        = "Type"
	FieldTotalAmount = "Total Amount"
	FieldDate        = "Date"
)

// MissingKey labels groups whose key field is absent.
const MissingKey = "NA"

// Bucket is one group of an aggregation: a key and its accumulated sum.
type Bucket struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// ProjectionPoint is one monthly sample of a projection run.
type ProjectionPoint struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}
