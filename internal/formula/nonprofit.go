package formula

import (
	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/format"
)

// BalancedFlag names the balance-sheet outcome in Result.Flags.
const BalancedFlag = "balanced"

// ReceiptsPaymentsInput summarizes a club's cash and bank transactions.
type ReceiptsPaymentsInput struct {
	OpeningCash   float64
	Subscriptions float64
	Donations     float64
	OtherReceipts float64
	Salaries      float64
	Rent          float64
	OtherPayments float64
}

// ReceiptsPaymentsResult holds the receipts and payments account totals.
type ReceiptsPaymentsResult struct {
	TotalReceipts float64
	TotalPayments float64
	ClosingCash   float64
}

// ReceiptsPayments computes the closing cash and bank balance.
func ReceiptsPayments(in ReceiptsPaymentsInput) ReceiptsPaymentsResult {
	receipts := in.OpeningCash + in.Subscriptions + in.Donations + in.OtherReceipts
	payments := in.Salaries + in.Rent + in.OtherPayments
	return ReceiptsPaymentsResult{
		TotalReceipts: receipts,
		TotalPayments: payments,
		ClosingCash:   receipts - payments,
	}
}

// Result lists the outputs in display order.
func (r ReceiptsPaymentsResult) Result() Result {
	return Result{Lines: []Line{
		money("totalReceipts", "Total Receipts (incl. opening balance)", r.TotalReceipts),
		money("totalPayments", "Total Payments", r.TotalPayments),
		money("closingCash", "Closing Cash & Bank Balance", r.ClosingCash),
	}}
}

// IncomeExpenditureInput lists revenue items of the accounting period.
type IncomeExpenditureInput struct {
	SubscriptionIncome float64
	DonationIncome     float64
	OtherIncome        float64
	SalaryExpense      float64
	RentExpense        float64
	OtherExpenses      float64
}

// IncomeExpenditureResult holds the surplus or deficit for the period.
type IncomeExpenditureResult struct {
	TotalIncome      float64
	TotalExpenditure float64
	SurplusDeficit   float64
}

// IncomeExpenditure computes surplus as income − expenditure; negative is a deficit.
func IncomeExpenditure(in IncomeExpenditureInput) IncomeExpenditureResult {
	income := in.SubscriptionIncome + in.DonationIncome + in.OtherIncome
	expenditure := in.SalaryExpense + in.RentExpense + in.OtherExpenses
	return IncomeExpenditureResult{
		TotalIncome:      income,
		TotalExpenditure: expenditure,
		SurplusDeficit:   income - expenditure,
	}
}

// Result lists the outputs in display order.
func (r IncomeExpenditureResult) Result() Result {
	return Result{Lines: []Line{
		money("totalIncome", "Total Income", r.TotalIncome),
		money("totalExpenditure", "Total Expenditure", r.TotalExpenditure),
		money("surplusDeficit", "Surplus / (Deficit)", r.SurplusDeficit),
	}}
}

// BalanceSheetInput lists the closing position of a non-profit organization.
type BalanceSheetInput struct {
	FixedAssets        float64
	CurrentAssets      float64
	CurrentLiabilities float64
	CapitalFund        float64 // capital fund including the period's surplus
}

// BalanceSheetResult holds both sides of the balance sheet.
type BalanceSheetResult struct {
	TotalAssets             float64
	TotalLiabilitiesAndFund float64
	Balanced                bool
}

// BalanceSheet totals both sides. The sheet balances when the two totals
// read the same at two decimals; there is no further tolerance.
func BalanceSheet(in BalanceSheetInput) BalanceSheetResult {
	assets := in.FixedAssets + in.CurrentAssets
	fund := in.CurrentLiabilities + in.CapitalFund
	r := BalanceSheetResult{TotalAssets: assets, TotalLiabilitiesAndFund: fund}
	r.Balanced = format.Fixed(assets, constants.DisplayDecimals) == format.Fixed(fund, constants.DisplayDecimals)
	return r
}

// Result lists the outputs in display order.
func (r BalanceSheetResult) Result() Result {
	return Result{
		Lines: []Line{
			money("totalAssets", "Total Assets", r.TotalAssets),
			money("totalLiabilitiesAndFund", "Total Liabilities & Capital Fund", r.TotalLiabilitiesAndFund),
		},
		Flags: map[string]bool{BalancedFlag: r.Balanced},
	}
}
