package topic

import "github.com/iwvelando/accounting-tutor/internal/formula"

func nonProfitOrganizations() Module {
	return Module{
		ID:          "non-profit",
		Name:        "Non-Profit Organizations",
		Icon:        "building-2",
		Description: "Receipts & payments, income & expenditure, balance sheet",
		Reference: Reference{
			Title: "Non-Profit Organizations - Key Concepts",
			Definition: "A non-profit organization is formed to promote art, science, sport, " +
				"education, social welfare, religion or charity rather than to earn profit. " +
				"Any surplus it generates is applied to its own objects.",
			KeyTerms: []Term{
				{Term: "Service Motive", Detail: "The primary aim is service to society."},
				{Term: "Surplus Utilization", Detail: "Surplus is used for the organization's purposes."},
				{Term: "Membership Based", Detail: "Members usually contribute through subscriptions."},
				{Term: "Tax Exemptions", Detail: "Often eligible for tax benefits."},
				{Term: "Receipts and Payments Account", Detail: "A summary of the cash book: both capital and revenue items, on a cash basis."},
				{Term: "Income and Expenditure Account", Detail: "The revenue items of the period on an accrual basis, showing a surplus or deficit."},
				{Term: "Balance Sheet", Detail: "Assets against liabilities and the capital fund at the period end."},
			},
			Tables: []Table{{
				Title:   "Non-Profit vs Commercial Organizations",
				Columns: []string{"Basis", "Non-Profit", "Commercial"},
				Rows: [][]string{
					{"Objective", "Service to society", "Profit maximization"},
					{"Result", "Surplus or Deficit", "Profit or Loss"},
					{"Capital", "Funds from donations and subscriptions", "Paid-up capital from shareholders"},
					{"Main Statement", "Income & Expenditure Account", "Profit & Loss Account"},
				},
			}},
		},
		SubModes: []SubMode{
			NewSubMode("receipts", "Receipts & Payments", "Cash summary of the period",
				[]Field{
					{Name: "openingCash", Label: "Opening Cash & Bank (₹)", Placeholder: "Enter opening balance"},
					{Name: "subscriptions", Label: "Subscriptions (₹)", Placeholder: "Subscriptions received"},
					{Name: "donations", Label: "Donations (₹)", Placeholder: "Donations received"},
					{Name: "otherReceipts", Label: "Other Receipts (₹)", Placeholder: "Other receipts"},
					{Name: "salaries", Label: "Salaries (₹)", Placeholder: "Salaries paid"},
					{Name: "rent", Label: "Rent (₹)", Placeholder: "Rent paid"},
					{Name: "otherPayments", Label: "Other Payments (₹)", Placeholder: "Other payments"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.ReceiptsPayments(formula.ReceiptsPaymentsInput{
						OpeningCash:   in.Float("openingCash"),
						Subscriptions: in.Float("subscriptions"),
						Donations:     in.Float("donations"),
						OtherReceipts: in.Float("otherReceipts"),
						Salaries:      in.Float("salaries"),
						Rent:          in.Float("rent"),
						OtherPayments: in.Float("otherPayments"),
					}).Result()
				}),
			NewSubMode("income", "Income & Expenditure", "Surplus or deficit of the period",
				[]Field{
					{Name: "subscriptionIncome", Label: "Subscription Income (₹)", Placeholder: "Subscription income"},
					{Name: "donationIncome", Label: "Donation Income (₹)", Placeholder: "Donation income"},
					{Name: "otherIncome", Label: "Other Income (₹)", Placeholder: "Other income"},
					{Name: "salaryExpense", Label: "Salary Expense (₹)", Placeholder: "Salary expenses"},
					{Name: "rentExpense", Label: "Rent Expense (₹)", Placeholder: "Rent expenses"},
					{Name: "otherExpenses", Label: "Other Expenses (₹)", Placeholder: "Other expenses"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.IncomeExpenditure(formula.IncomeExpenditureInput{
						SubscriptionIncome: in.Float("subscriptionIncome"),
						DonationIncome:     in.Float("donationIncome"),
						OtherIncome:        in.Float("otherIncome"),
						SalaryExpense:      in.Float("salaryExpense"),
						RentExpense:        in.Float("rentExpense"),
						OtherExpenses:      in.Float("otherExpenses"),
					}).Result()
				}),
			NewSubMode("balance", "Balance Sheet", "Check that assets equal liabilities plus fund",
				[]Field{
					{Name: "fixedAssets", Label: "Fixed Assets (₹)", Placeholder: "Fixed assets value"},
					{Name: "currentAssets", Label: "Current Assets (₹)", Placeholder: "Current assets value"},
					{Name: "currentLiabilities", Label: "Current Liabilities (₹)", Placeholder: "Current liabilities"},
					{Name: "surplus", Label: "Capital Fund (₹)", Placeholder: "Capital fund/surplus"},
				},
				func(in formula.Inputs) formula.Result {
					return formula.BalanceSheet(formula.BalanceSheetInput{
						FixedAssets:        in.Float("fixedAssets"),
						CurrentAssets:      in.Float("currentAssets"),
						CurrentLiabilities: in.Float("currentLiabilities"),
						CapitalFund:        in.Float("surplus"),
					}).Result()
				}),
		},
	}
}
