package topic

import "github.com/iwvelando/accounting-tutor/internal/formula"

func consignmentAccounts() Module {
	return Module{
		ID:          "consignment",
		Name:        "Consignment Accounts",
		Icon:        "trending-up",
		Description: "Consignor & consignee books, stock valuation & losses",
		Reference: Reference{
			Title: "Consignment Accounts - Key Concepts",
			Definition: "Under a consignment the owner of goods (consignor) sends them to an agent " +
				"(consignee) who sells them on the consignor's behalf and earns a commission. " +
				"Ownership and risk stay with the consignor until the goods are sold.",
			KeyTerms: []Term{
				{Term: "No Sale Transaction", Detail: "Goods are sent to, not sold to, the consignee."},
				{Term: "Agency Relationship", Detail: "The consignee acts as the consignor's agent."},
				{Term: "Proforma Invoice", Detail: "Lists the goods sent; not a true invoice because no sale took place."},
				{Term: "Account Sales", Detail: "The consignee's statement of sales, expenses and commission."},
				{Term: "Normal Loss", Detail: "Unavoidable loss, absorbed by raising the cost of the remaining units."},
				{Term: "Abnormal Loss", Detail: "Avoidable loss, valued at cost and written off separately."},
			},
			Tables: []Table{{
				Title:   "Types of Commission",
				Columns: []string{"Type", "Description", "Calculation"},
				Rows: [][]string{
					{"Ordinary Commission", "Basic commission on sales", "% of gross sales"},
					{"Del-Credere Commission", "Extra commission for bearing bad-debt risk", "% of credit sales"},
					{"Over-riding Commission", "Extra commission for exceeding targets", "% of sales above target"},
				},
			}},
		},
		SubModes: []SubMode{
			NewSubMode("basic", "Basic Consignment", "Account sales with ordinary and del-credere commission",
				[]Field{
					{Name: "goodsSent", Label: "Cost of Goods Sent (₹)", Placeholder: "Cost of goods sent"},
					{Name: "expenses", Label: "Consignment Expenses (₹)", Placeholder: "Consignment expenses"},
					{Name: "unitsSold", Label: "Units Sold", Placeholder: "Units sold"},
					{Name: "sellingPrice", Label: "Selling Price per Unit (₹)", Placeholder: "Selling price per unit"},
					{Name: "commissionRate", Label: "Commission Rate (%)", Placeholder: "Commission rate"},
					{Name: "delCredereRate", Label: "Del-Credere Rate (%)", Placeholder: "Del-credere rate"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Consignment(formula.ConsignmentInput{
						GoodsSent:      in.Float("goodsSent"),
						Expenses:       in.Float("expenses"),
						UnitsSold:      in.Float("unitsSold"),
						SellingPrice:   in.Float("sellingPrice"),
						CommissionRate: in.Float("commissionRate"),
						DelCredereRate: in.Float("delCredereRate"),
					}).Result()
				}),
			NewSubMode("losses", "Losses", "Normal and abnormal loss of consigned goods",
				[]Field{
					{Name: "totalUnits", Label: "Total Units Sent", Placeholder: "Total units sent"},
					{Name: "normalLossPercent", Label: "Normal Loss (%)", Placeholder: "Normal loss percentage"},
					{Name: "abnormalLossUnits", Label: "Abnormal Loss (Units)", Placeholder: "Abnormal loss units"},
					{Name: "costPerUnit", Label: "Cost per Unit (₹)", Placeholder: "Cost per unit"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Losses(formula.LossInput{
						TotalUnits:        in.Float("totalUnits"),
						NormalLossPercent: in.Float("normalLossPercent"),
						AbnormalLossUnits: in.Float("abnormalLossUnits"),
						CostPerUnit:       in.Float("costPerUnit"),
					}).Result()
				}),
			NewSubMode("valuation", "Stock Valuation", "Value unsold stock at cost and at invoice price",
				[]Field{
					{Name: "totalUnits", Label: "Total Units Sent", Placeholder: "Total units sent"},
					{Name: "unitsSold", Label: "Units Sold", Placeholder: "Units sold"},
					{Name: "costPrice", Label: "Cost Price per Unit (₹)", Placeholder: "Cost price per unit"},
					{Name: "nonRecurringExpenses", Label: "Non-recurring Expenses (₹)", Placeholder: "Non-recurring expenses"},
					{Name: "invoicePrice", Label: "Invoice Price per Unit (₹)", Placeholder: "Invoice price per unit"},
					{Name: "loadingPercent", Label: "Loading Percentage (%)", Placeholder: "Loading percentage"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.StockValuation(formula.StockValuationInput{
						TotalUnits:           in.Float("totalUnits"),
						UnitsSold:            in.Float("unitsSold"),
						CostPrice:            in.Float("costPrice"),
						NonRecurringExpenses: in.Float("nonRecurringExpenses"),
						LoadingPercent:       in.Float("loadingPercent"),
						InvoicePrice:         in.Float("invoicePrice"),
					}).Result()
				}),
		},
	}
}
