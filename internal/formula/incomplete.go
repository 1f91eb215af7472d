package formula

// StatementOfAffairsInput compares capital at the start and end of a period.
type StatementOfAffairsInput struct {
	OpeningCapital    float64
	ClosingCapital    float64
	Drawings          float64
	AdditionalCapital float64
}

// StatementOfAffairsResult holds the profit ascertained from capital movement.
type StatementOfAffairsResult struct {
	OpeningCapital    float64
	ClosingCapital    float64
	Drawings          float64
	AdditionalCapital float64
	Profit            float64
}

// StatementOfAffairs ascertains profit as closing − opening + drawings − fresh capital.
func StatementOfAffairs(in StatementOfAffairsInput) StatementOfAffairsResult {
	return StatementOfAffairsResult{
		OpeningCapital:    in.OpeningCapital,
		ClosingCapital:    in.ClosingCapital,
		Drawings:          in.Drawings,
		AdditionalCapital: in.AdditionalCapital,
		Profit:            in.ClosingCapital - in.OpeningCapital + in.Drawings - in.AdditionalCapital,
	}
}

// Result lists the outputs in display order.
func (r StatementOfAffairsResult) Result() Result {
	return Result{Lines: []Line{
		money("openingCapital", "Opening Capital", r.OpeningCapital),
		money("closingCapital", "Closing Capital", r.ClosingCapital),
		money("drawings", "Add: Drawings", r.Drawings),
		money("additionalCapital", "Less: Additional Capital", r.AdditionalCapital),
		money("profit", "Profit for the Period", r.Profit),
	}}
}

// ConversionInput summarizes the cash book of a single-entry business.
type ConversionInput struct {
	TotalReceipts float64
	TotalPayments float64
	OpeningCash   float64
	ClosingCash   float64
}

// ConversionResult holds the profit derived from cash movements.
type ConversionResult struct {
	TotalReceipts float64
	TotalPayments float64
	NetCashFlow   float64
	CashIncrease  float64
	Profit        float64
}

// Conversion derives profit as (receipts − payments) − (closing − opening cash).
func Conversion(in ConversionInput) ConversionResult {
	netFlow := in.TotalReceipts - in.TotalPayments
	increase := in.ClosingCash - in.OpeningCash
	return ConversionResult{
		TotalReceipts: in.TotalReceipts,
		TotalPayments: in.TotalPayments,
		NetCashFlow:   netFlow,
		CashIncrease:  increase,
		Profit:        netFlow - increase,
	}
}

// Result lists the outputs in display order.
func (r ConversionResult) Result() Result {
	return Result{Lines: []Line{
		money("totalReceipts", "Total Receipts", r.TotalReceipts),
		money("totalPayments", "Total Payments", r.TotalPayments),
		money("netCashFlow", "Net Cash Flow", r.NetCashFlow),
		money("cashIncrease", "Increase in Cash", r.CashIncrease),
		money("profit", "Profit", r.Profit),
	}}
}

// CapitalInput lists the totals from a statement of affairs.
type CapitalInput struct {
	TotalAssets      float64
	TotalLiabilities float64
}

// CapitalResult holds the capital balancing the statement of affairs.
type CapitalResult struct {
	Assets      float64
	Liabilities float64
	Capital     float64
}

// Capital computes capital as assets − liabilities.
func Capital(in CapitalInput) CapitalResult {
	return CapitalResult{
		Assets:      in.TotalAssets,
		Liabilities: in.TotalLiabilities,
		Capital:     in.TotalAssets - in.TotalLiabilities,
	}
}

// Result lists the outputs in display order.
func (r CapitalResult) Result() Result {
	return Result{Lines: []Line{
		money("assets", "Total Assets", r.Assets),
		money("liabilities", "Total Liabilities", r.Liabilities),
		money("capital", "Capital", r.Capital),
	}}
}
