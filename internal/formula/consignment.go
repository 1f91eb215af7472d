package formula

import "github.com/iwvelando/accounting-tutor/pkg/mathutil"

// ConsignmentInput describes goods sent on consignment and the agent's sales.
type ConsignmentInput struct {
	GoodsSent      float64
	Expenses       float64
	UnitsSold      float64
	SellingPrice   float64
	CommissionRate float64 // ordinary commission, % of sales
	DelCredereRate float64 // del-credere commission, % of sales
}

// ConsignmentResult holds the consignor's view of the agent's account sales.
type ConsignmentResult struct {
	TotalCost            float64
	Sales                float64
	Commission           float64
	DelCredereCommission float64
	TotalCommission      float64
	NetSales             float64
	GrossProfit          float64
}

// Consignment computes sales, commissions and profit on a consignment.
// Goods sent are treated as a lot of 100 units when costing the units sold.
func Consignment(in ConsignmentInput) ConsignmentResult {
	sales := in.UnitsSold * in.SellingPrice
	commission := mathutil.ApplyPercentage(sales, in.CommissionRate)
	delCredere := mathutil.ApplyPercentage(sales, in.DelCredereRate)
	totalCommission := commission + delCredere
	netSales := sales - totalCommission
	return ConsignmentResult{
		TotalCost:            in.GoodsSent + in.Expenses,
		Sales:                sales,
		Commission:           commission,
		DelCredereCommission: delCredere,
		TotalCommission:      totalCommission,
		NetSales:             netSales,
		GrossProfit:          netSales - (in.GoodsSent * (in.UnitsSold / 100)),
	}
}

// Result lists the outputs in display order.
func (r ConsignmentResult) Result() Result {
	return Result{Lines: []Line{
		money("totalCost", "Total Cost", r.TotalCost),
		money("sales", "Sales", r.Sales),
		money("commissionAmount", "Commission", r.Commission),
		money("delCredereCommission", "Del-Credere Commission", r.DelCredereCommission),
		money("totalCommission", "Total Commission", r.TotalCommission),
		money("netSales", "Net Sales", r.NetSales),
		money("grossProfit", "Gross Profit", r.GrossProfit),
	}}
}

// LossInput describes units lost in transit or in the consignee's godown.
type LossInput struct {
	TotalUnits        float64
	NormalLossPercent float64
	AbnormalLossUnits float64
	CostPerUnit       float64
}

// LossResult holds the loss quantities and the cost re-spread over good units.
type LossResult struct {
	NormalLossUnits     float64
	TotalLoss           float64
	AvailableForSale    float64
	AdjustedCostPerUnit float64
	AbnormalLossValue   float64
}

// Losses spreads the cost of normal loss over the units still available.
// When every unit is lost, AdjustedCostPerUnit is left as the IEEE result of
// dividing by zero.
func Losses(in LossInput) LossResult {
	normal := mathutil.ApplyPercentage(in.TotalUnits, in.NormalLossPercent)
	totalLoss := normal + in.AbnormalLossUnits
	available := in.TotalUnits - totalLoss
	return LossResult{
		NormalLossUnits:     normal,
		TotalLoss:           totalLoss,
		AvailableForSale:    available,
		AdjustedCostPerUnit: (in.TotalUnits * in.CostPerUnit) / available,
		AbnormalLossValue:   in.AbnormalLossUnits * in.CostPerUnit,
	}
}

// Result lists the outputs in display order.
func (r LossResult) Result() Result {
	return Result{Lines: []Line{
		quantity("normalLossUnits", "Normal Loss (Units)", r.NormalLossUnits),
		quantity("totalLoss", "Total Loss (Units)", r.TotalLoss),
		quantity("availableForSale", "Units Available for Sale", r.AvailableForSale),
		money("costPerUnitAfterNormalLoss", "Cost per Unit after Normal Loss", r.AdjustedCostPerUnit),
		money("abnormalLossValue", "Abnormal Loss Value", r.AbnormalLossValue),
	}}
}

// StockValuationInput describes closing stock left with the consignee.
type StockValuationInput struct {
	TotalUnits           float64
	UnitsSold            float64
	CostPrice            float64
	NonRecurringExpenses float64
	LoadingPercent       float64 // loading included in the invoice price
	InvoicePrice         float64
}

// StockValuationResult values the unsold stock under both methods.
type StockValuationResult struct {
	UnsoldUnits           float64
	ProportionateExpenses float64
	CostMethodValue       float64
	LoadingOnUnsold       float64
	InvoiceMethodValue    float64
}

// StockValuation values consignment stock at cost and at invoice price.
// Zero total units leaves the proportion of expenses as NaN.
func StockValuation(in StockValuationInput) StockValuationResult {
	unsold := in.TotalUnits - in.UnitsSold
	propExpenses := (unsold / in.TotalUnits) * in.NonRecurringExpenses
	loading := (unsold * in.InvoicePrice * in.LoadingPercent) / 100
	return StockValuationResult{
		UnsoldUnits:           unsold,
		ProportionateExpenses: propExpenses,
		CostMethodValue:       (unsold * in.CostPrice) + propExpenses,
		LoadingOnUnsold:       loading,
		InvoiceMethodValue:    (unsold * in.InvoicePrice) - loading + propExpenses,
	}
}

// Result lists the outputs in display order.
func (r StockValuationResult) Result() Result {
	return Result{Lines: []Line{
		units("unsoldUnits", "Unsold Units", r.UnsoldUnits),
		money("proportionateExpenses", "Proportionate Expenses", r.ProportionateExpenses),
		money("stockValueCostMethod", "Stock Value (Cost Price Method)", r.CostMethodValue),
		money("loadingOnUnsold", "Loading on Unsold Stock", r.LoadingOnUnsold),
		money("stockValueInvoiceMethod", "Stock Value (Invoice Price Method)", r.InvoiceMethodValue),
	}}
}
