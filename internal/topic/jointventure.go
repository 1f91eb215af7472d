package topic

import (
	"github.com/iwvelando/accounting-tutor/internal/formula"
	"github.com/iwvelando/accounting-tutor/pkg/constants"
)

func jointVenture() Module {
	return Module{
		ID:          "joint-venture",
		Name:        "Joint Venture",
		Icon:        "users",
		Description: "Temporary partnerships, profit sharing & memorandum accounts",
		Reference: Reference{
			Title: "Joint Venture - Key Concepts",
			Definition: "A joint venture is a temporary partnership in which two or more persons " +
				"combine resources to carry out a specific business undertaking, sharing its " +
				"profit or loss in an agreed ratio. It ends once the undertaking is complete.",
			KeyTerms: []Term{
				{Term: "Temporary Nature", Detail: "Limited to a specific project or venture."},
				{Term: "Profit/Loss Sharing", Detail: "Shared between co-venturers in the agreed ratio."},
				{Term: "Joint Control", Detail: "Every co-venturer has a say in the venture."},
				{Term: "No Separate Entity", Detail: "The venture is not a separate legal entity."},
				{Term: "No Books Method", Detail: "Each co-venturer records only their own transactions in a personal account."},
				{Term: "Separate Books Method", Detail: "A dedicated set of books is kept for the venture."},
				{Term: "Joint Bank Account Method", Detail: "All venture receipts and payments flow through a shared bank account."},
				{Term: "Memorandum Method", Detail: "Each party keeps a personal account and a memorandum account computes the overall result."},
			},
			Tables: []Table{{
				Title:   "Joint Venture vs Consignment",
				Columns: []string{"Basis", "Joint Venture", "Consignment"},
				Rows: [][]string{
					{"Relationship", "Co-venturers", "Principal and agent"},
					{"Risk", "Shared by co-venturers", "Borne by the consignor"},
					{"Profit/Loss", "Shared in agreed ratio", "Belongs to the consignor"},
					{"Decision Making", "Joint", "Consignor decides"},
				},
			}},
		},
		SubModes: []SubMode{
			NewSubMode("basic", "Basic Joint Venture", "Venture profit and its division between two partners",
				[]Field{
					{Name: "partnerAContribution", Label: "Partner A Contribution (₹)", Placeholder: "Enter Partner A contribution"},
					{Name: "partnerBContribution", Label: "Partner B Contribution (₹)", Placeholder: "Enter Partner B contribution"},
					{Name: "expenses", Label: "Total Expenses (₹)", Placeholder: "Enter total expenses"},
					{Name: "sales", Label: "Total Sales (₹)", Placeholder: "Enter total sales"},
					{Name: "profitRatio", Label: "Partner A Profit Ratio (%)", Placeholder: "Enter profit sharing ratio"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.JointVenture(formula.JointVentureInput{
						PartnerAContribution: in.Float("partnerAContribution"),
						PartnerBContribution: in.Float("partnerBContribution"),
						Expenses:             in.Float("expenses"),
						Sales:                in.Float("sales"),
						PartnerARatio:        in.FloatOr("profitRatio", constants.DefaultProfitRatio),
					}).Result()
				}),
			NewSubMode("separate", "Separate Books", "Combine both co-venturers' records",
				[]Field{
					{Name: "purchasesByA", Label: "Purchases by A (₹)", Placeholder: "Enter purchases by A"},
					{Name: "purchasesByB", Label: "Purchases by B (₹)", Placeholder: "Enter purchases by B"},
					{Name: "expensesByA", Label: "Expenses by A (₹)", Placeholder: "Enter expenses by A"},
					{Name: "expensesByB", Label: "Expenses by B (₹)", Placeholder: "Enter expenses by B"},
					{Name: "salesByA", Label: "Sales by A (₹)", Placeholder: "Enter sales by A"},
					{Name: "salesByB", Label: "Sales by B (₹)", Placeholder: "Enter sales by B"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.SeparateBooks(formula.SeparateBooksInput{
						PurchasesByA: in.Float("purchasesByA"),
						PurchasesByB: in.Float("purchasesByB"),
						ExpensesByA:  in.Float("expensesByA"),
						ExpensesByB:  in.Float("expensesByB"),
						SalesByA:     in.Float("salesByA"),
						SalesByB:     in.Float("salesByB"),
					}).Result()
				}),
			NewSubMode("memorandum", "Memorandum", "One co-venturer's view under the memorandum method",
				[]Field{
					{Name: "goodsContributed", Label: "Goods Contributed (₹)", Placeholder: "Enter goods contributed"},
					{Name: "expensesPaid", Label: "Expenses Paid (₹)", Placeholder: "Enter expenses paid"},
					{Name: "salesMade", Label: "Sales Made (₹)", Placeholder: "Enter sales made"},
					{Name: "coVenturerShareReceived", Label: "Co-venturer's Share Received (₹)", Placeholder: "Enter co-venturer's share"},
					{Name: "profitRatio", Label: "Your Profit Ratio (%)", Placeholder: "Enter your profit ratio"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Memorandum(formula.MemorandumInput{
						GoodsContributed:        in.Float("goodsContributed"),
						ExpensesPaid:            in.Float("expensesPaid"),
						SalesMade:               in.Float("salesMade"),
						CoVenturerShareReceived: in.Float("coVenturerShareReceived"),
						OwnRatio:                in.FloatOr("profitRatio", constants.DefaultProfitRatio),
					}).Result()
				}),
		},
	}
}
