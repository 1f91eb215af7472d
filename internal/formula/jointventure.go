package formula

import "github.com/iwvelando/accounting-tutor/pkg/mathutil"

// JointVentureInput describes a two-party venture recorded in one set of books.
type JointVentureInput struct {
	PartnerAContribution float64
	PartnerBContribution float64
	Expenses             float64
	Sales                float64
	PartnerARatio        float64 // partner A's share of profit, %
}

// JointVentureResult holds the venture profit and its division.
type JointVentureResult struct {
	TotalContribution float64
	TotalCost         float64
	Profit            float64
	PartnerAShare     float64
	PartnerBShare     float64
}

// JointVenture computes the venture profit and each partner's share.
func JointVenture(in JointVentureInput) JointVentureResult {
	contribution := in.PartnerAContribution + in.PartnerBContribution
	totalCost := contribution + in.Expenses
	profit := in.Sales - totalCost
	shareA := mathutil.ApplyPercentage(profit, in.PartnerARatio)
	return JointVentureResult{
		TotalContribution: contribution,
		TotalCost:         totalCost,
		Profit:            profit,
		PartnerAShare:     shareA,
		PartnerBShare:     profit - shareA,
	}
}

// Result lists the outputs in display order.
func (r JointVentureResult) Result() Result {
	return Result{Lines: []Line{
		money("totalContribution", "Total Contribution", r.TotalContribution),
		money("totalCost", "Total Cost", r.TotalCost),
		money("profit", "Profit", r.Profit),
		money("partnerAShare", "Partner A's Share", r.PartnerAShare),
		money("partnerBShare", "Partner B's Share", r.PartnerBShare),
	}}
}

// SeparateBooksInput describes a venture where each co-venturer keeps a
// record of their own purchases, expenses and sales.
type SeparateBooksInput struct {
	PurchasesByA float64
	PurchasesByB float64
	ExpensesByA  float64
	ExpensesByB  float64
	SalesByA     float64
	SalesByB     float64
}

// SeparateBooksResult holds the combined venture totals.
type SeparateBooksResult struct {
	TotalPurchases float64
	TotalExpenses  float64
	TotalSales     float64
	TotalCost      float64
	Profit         float64
}

// SeparateBooks combines both parties' records into the venture result.
func SeparateBooks(in SeparateBooksInput) SeparateBooksResult {
	purchases := in.PurchasesByA + in.PurchasesByB
	expenses := in.ExpensesByA + in.ExpensesByB
	sales := in.SalesByA + in.SalesByB
	totalCost := purchases + expenses
	return SeparateBooksResult{
		TotalPurchases: purchases,
		TotalExpenses:  expenses,
		TotalSales:     sales,
		TotalCost:      totalCost,
		Profit:         sales - totalCost,
	}
}

// Result lists the outputs in display order.
func (r SeparateBooksResult) Result() Result {
	return Result{Lines: []Line{
		money("totalPurchases", "Total Purchases", r.TotalPurchases),
		money("totalExpenses", "Total Expenses", r.TotalExpenses),
		money("totalSales", "Total Sales", r.TotalSales),
		money("totalCost", "Total Cost", r.TotalCost),
		money("profit", "Profit", r.Profit),
	}}
}

// MemorandumInput describes one co-venturer's side under the memorandum method.
type MemorandumInput struct {
	GoodsContributed        float64
	ExpensesPaid            float64
	SalesMade               float64
	CoVenturerShareReceived float64
	OwnRatio                float64 // own share of profit, %
}

// MemorandumResult holds the memorandum joint venture account and settlement.
type MemorandumResult struct {
	TotalCost             float64
	TotalProfit           float64
	OwnProfitShare        float64
	CoVenturerProfitShare float64
	NetSettlement         float64
}

// Memorandum computes the venture profit and the amount left to settle.
func Memorandum(in MemorandumInput) MemorandumResult {
	totalCost := in.GoodsContributed + in.ExpensesPaid
	profit := in.SalesMade - totalCost
	own := mathutil.ApplyPercentage(profit, in.OwnRatio)
	return MemorandumResult{
		TotalCost:             totalCost,
		TotalProfit:           profit,
		OwnProfitShare:        own,
		CoVenturerProfitShare: profit - own,
		NetSettlement:         own - in.CoVenturerShareReceived,
	}
}

// Result lists the outputs in display order.
func (r MemorandumResult) Result() Result {
	return Result{Lines: []Line{
		money("totalCost", "Total Cost", r.TotalCost),
		money("totalProfit", "Total Profit", r.TotalProfit),
		money("ownProfitShare", "Your Profit Share", r.OwnProfitShare),
		money("coVenturerProfitShare", "Co-venturer's Profit Share", r.CoVenturerProfitShare),
		money("netAmount", "Net Settlement", r.NetSettlement),
	}}
}
