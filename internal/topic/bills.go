package topic

import "github.com/iwvelando/accounting-tutor/internal/formula"

func billsOfExchange() Module {
	return Module{
		ID:          "bills",
		Name:        "Bills of Exchange",
		Icon:        "file-text",
		Description: "Trade bills, honour/dishonour, renewal & accommodation bills",
		Reference: Reference{
			Title: "Bills of Exchange - Key Concepts",
			Definition: "A bill of exchange is an unconditional written order, signed by the drawer, " +
				"directing the drawee to pay a certain sum of money on demand or at a fixed or " +
				"determinable future time to a specified person, to their order, or to the bearer.",
			KeyTerms: []Term{
				{Term: "Honour of Bill", Detail: "The acceptor pays the bill on its due date."},
				{Term: "Dishonour of Bill", Detail: "The bill is not paid on its due date."},
				{Term: "Renewal of Bill", Detail: "The bill period is extended against interest."},
				{Term: "Accommodation Bill", Detail: "A bill drawn to raise funds without any underlying trade."},
				{Term: "Discounting", Detail: "Encashing a bill with a bank before maturity, less interest for the unexpired period."},
			},
			Tables: []Table{{
				Title:   "Promissory Note vs Bill of Exchange",
				Columns: []string{"Basis", "Promissory Note", "Bill of Exchange"},
				Rows: [][]string{
					{"Nature", "Promise to pay", "Order to pay"},
					{"Parties", "Two (maker and payee)", "Three (drawer, drawee and payee)"},
					{"Acceptance", "Not required", "Required, except for sight bills"},
					{"Liability", "Maker is primarily liable", "Acceptor is primarily liable"},
				},
			}},
		},
		SubModes: []SubMode{
			NewSubMode("trade-bills", "Trade Bills", "Discount a trade bill with a bank",
				[]Field{
					{Name: "billAmount", Label: "Bill Amount (₹)", Placeholder: "Enter bill amount"},
					{Name: "periodDays", Label: "Period (days)", Placeholder: "Enter period in days"},
					{Name: "discountRate", Label: "Discount Rate (% p.a.)", Placeholder: "Enter discount rate"},
					{Name: "commissionRate", Label: "Commission Rate (%)", Placeholder: "Enter commission rate"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.TradeBill(formula.TradeBillInput{
						Amount:         in.Float("billAmount"),
						PeriodDays:     in.Float("periodDays"),
						DiscountRate:   in.Float("discountRate"),
						CommissionRate: in.Float("commissionRate"),
					}).Result()
				}),
			NewSubMode("renewal", "Renewal", "Extend a bill's period against interest",
				[]Field{
					{Name: "originalAmount", Label: "Original Bill Amount (₹)", Placeholder: "Enter original amount"},
					{Name: "interestRate", Label: "Interest Rate (% p.a.)", Placeholder: "Enter interest rate"},
					{Name: "periodMonths", Label: "Renewal Period (months)", Placeholder: "Enter renewal period"},
					{Name: "cashPaid", Label: "Cash Paid (₹)", Placeholder: "Enter cash paid"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Renewal(formula.RenewalInput{
						OriginalAmount: in.Float("originalAmount"),
						InterestRate:   in.Float("interestRate"),
						PeriodMonths:   in.Float("periodMonths"),
						CashPaid:       in.Float("cashPaid"),
					}).Result()
				}),
			NewSubMode("accommodation", "Accommodation", "Raise funds through an accommodation bill",
				[]Field{
					{Name: "billAmount", Label: "Bill Amount (₹)", Placeholder: "Enter accommodation bill amount"},
					{Name: "periodDays", Label: "Period (days)", Placeholder: "Enter period in days"},
					{Name: "discountRate", Label: "Discount Rate (% p.a.)", Placeholder: "Enter discount rate"},
					{Name: "expenses", Label: "Bank Charges & Expenses (₹)", Placeholder: "Enter bank charges and expenses"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Accommodation(formula.AccommodationInput{
						Amount:       in.Float("billAmount"),
						PeriodDays:   in.Float("periodDays"),
						DiscountRate: in.Float("discountRate"),
						Expenses:     in.Float("expenses"),
					}).Result()
				}),
		},
	}
}
