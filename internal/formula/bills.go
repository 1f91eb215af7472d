package formula

import (
	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/mathutil"
)

// TradeBillInput describes a trade bill discounted with a bank.
type TradeBillInput struct {
	Amount         float64
	PeriodDays     float64
	DiscountRate   float64 // % p.a.
	CommissionRate float64 // % of the bill amount
}

// TradeBillResult holds the proceeds of discounting a trade bill.
type TradeBillResult struct {
	BillAmount float64
	Discount   float64
	Commission float64
	Net        float64
}

// TradeBill computes the bank discount, the commission and the net proceeds.
func TradeBill(in TradeBillInput) TradeBillResult {
	discount := mathutil.SimpleInterest(in.Amount, in.DiscountRate, in.PeriodDays, constants.DaysPerYear)
	commission := mathutil.ApplyPercentage(in.Amount, in.CommissionRate)
	return TradeBillResult{
		BillAmount: in.Amount,
		Discount:   discount,
		Commission: commission,
		Net:        in.Amount - discount - commission,
	}
}

// Result lists the outputs in display order.
func (r TradeBillResult) Result() Result {
	return Result{Lines: []Line{
		money("billAmount", "Bill Amount", r.BillAmount),
		money("discountAmount", "Discount Amount", r.Discount),
		money("commissionAmount", "Commission", r.Commission),
		money("netAmount", "Net Amount Received", r.Net),
	}}
}

// RenewalInput describes a bill renewed for a further period.
type RenewalInput struct {
	OriginalAmount float64
	InterestRate   float64 // % p.a.
	PeriodMonths   float64
	CashPaid       float64
}

// RenewalResult holds the amount of the replacement bill.
type RenewalResult struct {
	OriginalAmount float64
	Interest       float64
	CashPaid       float64
	NewBillAmount  float64
}

// Renewal computes interest for the extension and the new bill amount.
func Renewal(in RenewalInput) RenewalResult {
	interest := mathutil.SimpleInterest(in.OriginalAmount, in.InterestRate, in.PeriodMonths, constants.MonthsPerYear)
	return RenewalResult{
		OriginalAmount: in.OriginalAmount,
		Interest:       interest,
		CashPaid:       in.CashPaid,
		NewBillAmount:  in.OriginalAmount + interest - in.CashPaid,
	}
}

// Result lists the outputs in display order.
func (r RenewalResult) Result() Result {
	return Result{Lines: []Line{
		money("originalAmount", "Original Bill Amount", r.OriginalAmount),
		money("interest", "Interest", r.Interest),
		money("cashPaid", "Cash Paid", r.CashPaid),
		money("newBillAmount", "New Bill Amount", r.NewBillAmount),
	}}
}

// AccommodationInput describes an accommodation bill discounted for cash.
type AccommodationInput struct {
	Amount       float64
	PeriodDays   float64
	DiscountRate float64 // % p.a.
	Expenses     float64 // bank charges and other expenses
}

// AccommodationResult holds the cost and cash raised by the bill.
type AccommodationResult struct {
	Discount        float64
	Expenses        float64
	TotalCost       float64
	NetCashReceived float64
}

// Accommodation computes the cost of raising funds through an accommodation bill.
func Accommodation(in AccommodationInput) AccommodationResult {
	discount := mathutil.SimpleInterest(in.Amount, in.DiscountRate, in.PeriodDays, constants.DaysPerYear)
	return AccommodationResult{
		Discount:        discount,
		Expenses:        in.Expenses,
		TotalCost:       discount + in.Expenses,
		NetCashReceived: in.Amount - discount - in.Expenses,
	}
}

// Result lists the outputs in display order.
func (r AccommodationResult) Result() Result {
	return Result{Lines: []Line{
		money("discountAmount", "Discount Amount", r.Discount),
		money("expenses", "Expenses", r.Expenses),
		money("totalCost", "Total Cost", r.TotalCost),
		money("netCashReceived", "Net Cash Received", r.NetCashReceived),
	}}
}
