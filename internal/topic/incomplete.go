package topic

import "github.com/iwvelando/accounting-tutor/internal/formula"

func incompleteRecords() Module {
	return Module{
		ID:          "incomplete",
		Name:        "Incomplete Records",
		Icon:        "calculator",
		Description: "Single entry system, statement of affairs & conversion",
		Reference: Reference{
			Title: "Incomplete Records - Key Concepts",
			Definition: "Under the single entry system only cash transactions and personal accounts " +
				"are kept in an orderly way. It falls short of double entry because not every " +
				"book of account is maintained, so profit has to be ascertained indirectly.",
			KeyTerms: []Term{
				{Term: "Not Scientific", Detail: "Does not follow double entry principles."},
				{Term: "No Trial Balance", Detail: "A trial balance cannot be prepared."},
				{Term: "Simple to Maintain", Detail: "Suits small businesses."},
				{Term: "Less Expensive", Detail: "Needs less skilled staff."},
				{Term: "Statement of Affairs Method", Detail: "Profit is the change in capital, adjusted for drawings and fresh capital. Also called the net worth method."},
				{Term: "Conversion Method", Detail: "Missing figures are rebuilt from the cash book to prepare proper final accounts."},
			},
			Tables: []Table{{
				Title:   "Single Entry vs Double Entry",
				Columns: []string{"Basis", "Single Entry", "Double Entry"},
				Rows: [][]string{
					{"Principle", "Incomplete recording", "Every debit has a matching credit"},
					{"Books Maintained", "Cash book and personal accounts only", "All books of account"},
					{"Trial Balance", "Cannot be prepared", "Can be prepared"},
					{"Accuracy", "Low", "High"},
				},
			}},
		},
		SubModes: []SubMode{
			NewSubMode("statement", "Statement of Affairs", "Profit from the change in capital",
				[]Field{
					{Name: "openingCapital", Label: "Opening Capital (₹)", Placeholder: "Enter opening capital"},
					{Name: "closingCapital", Label: "Closing Capital (₹)", Placeholder: "Enter closing capital"},
					{Name: "drawings", Label: "Drawings (₹)", Placeholder: "Enter drawings"},
					{Name: "additionalCapital", Label: "Additional Capital (₹)", Placeholder: "Enter additional capital"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.StatementOfAffairs(formula.StatementOfAffairsInput{
						OpeningCapital:    in.Float("openingCapital"),
						ClosingCapital:    in.Float("closingCapital"),
						Drawings:          in.Float("drawings"),
						AdditionalCapital: in.Float("additionalCapital"),
					}).Result()
				}),
			NewSubMode("conversion", "Conversion Method", "Profit rebuilt from cash movements",
				[]Field{
					{Name: "totalReceipts", Label: "Total Receipts (₹)", Placeholder: "Enter total receipts"},
					{Name: "totalPayments", Label: "Total Payments (₹)", Placeholder: "Enter total payments"},
					{Name: "openingCash", Label: "Opening Cash (₹)", Placeholder: "Enter opening cash"},
					{Name: "closingCash", Label: "Closing Cash (₹)", Placeholder: "Enter closing cash"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Conversion(formula.ConversionInput{
						TotalReceipts: in.Float("totalReceipts"),
						TotalPayments: in.Float("totalPayments"),
						OpeningCash:   in.Float("openingCash"),
						ClosingCash:   in.Float("closingCash"),
					}).Result()
				}),
			NewSubMode("capital", "Capital", "Capital as assets less liabilities",
				[]Field{
					{Name: "totalAssets", Label: "Total Assets (₹)", Placeholder: "Enter total assets"},
					{Name: "totalLiabilities", Label: "Total Liabilities (₹)", Placeholder: "Enter total liabilities"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.Capital(formula.CapitalInput{
						TotalAssets:      in.Float("totalAssets"),
						TotalLiabilities: in.Float("totalLiabilities"),
					}).Result()
				}),
		},
	}
}
