package formula

import (
	"math"
	"testing"
)

func assertDisplay(t *testing.T, r Result, name, expected string) {
	t.Helper()
	if got := r.Display(name); got != expected {
		t.Errorf("%s = %q, expected %q", name, got, expected)
	}
}

func TestTradeBill(t *testing.T) {
	r := TradeBill(TradeBillInput{Amount: 10000, PeriodDays: 90, DiscountRate: 12, CommissionRate: 1}).Result()

	assertDisplay(t, r, "billAmount", "10000.00")
	assertDisplay(t, r, "discountAmount", "295.89")
	assertDisplay(t, r, "commissionAmount", "100.00")
	assertDisplay(t, r, "netAmount", "9604.11")

	discount, _ := r.Value("discountAmount")
	if expected := 10000.0 * 12 * 90 / (100 * 365); discount != expected {
		t.Errorf("discount = %v, expected unrounded %v", discount, expected)
	}
}

func TestRenewal(t *testing.T) {
	r := Renewal(RenewalInput{OriginalAmount: 5000, InterestRate: 12, PeriodMonths: 3, CashPaid: 1000}).Result()

	assertDisplay(t, r, "interest", "150.00")
	assertDisplay(t, r, "newBillAmount", "4150.00")
	assertDisplay(t, r, "cashPaid", "1000.00")
}

func TestAccommodation(t *testing.T) {
	r := Accommodation(AccommodationInput{Amount: 20000, PeriodDays: 73, DiscountRate: 10, Expenses: 150}).Result()

	// 20000 × 10 × 73 / 36500 = 400
	assertDisplay(t, r, "discountAmount", "400.00")
	assertDisplay(t, r, "totalCost", "550.00")
	assertDisplay(t, r, "netCashReceived", "19450.00")
}

func TestConsignment(t *testing.T) {
	r := Consignment(ConsignmentInput{
		GoodsSent:      50000,
		Expenses:       2000,
		UnitsSold:      80,
		SellingPrice:   800,
		CommissionRate: 5,
		DelCredereRate: 2,
	}).Result()

	assertDisplay(t, r, "totalCost", "52000.00")
	assertDisplay(t, r, "sales", "64000.00")
	assertDisplay(t, r, "commissionAmount", "3200.00")
	assertDisplay(t, r, "delCredereCommission", "1280.00")
	assertDisplay(t, r, "totalCommission", "4480.00")
	assertDisplay(t, r, "netSales", "59520.00")
	// 59520 − 50000 × 0.8
	assertDisplay(t, r, "grossProfit", "19520.00")
}

func TestLosses(t *testing.T) {
	r := Losses(LossInput{TotalUnits: 1000, NormalLossPercent: 5, AbnormalLossUnits: 50, CostPerUnit: 90}).Result()

	assertDisplay(t, r, "normalLossUnits", "50.00")
	assertDisplay(t, r, "totalLoss", "100.00")
	assertDisplay(t, r, "availableForSale", "900.00")
	assertDisplay(t, r, "costPerUnitAfterNormalLoss", "100.00")
	assertDisplay(t, r, "abnormalLossValue", "4500.00")
}

func TestLossesAllUnitsLost(t *testing.T) {
	r := Losses(LossInput{TotalUnits: 100, NormalLossPercent: 50, AbnormalLossUnits: 50, CostPerUnit: 10})

	if !math.IsInf(r.AdjustedCostPerUnit, 1) {
		t.Fatalf("expected +Inf cost per unit when nothing is left, got %v", r.AdjustedCostPerUnit)
	}
	assertDisplay(t, r.Result(), "costPerUnitAfterNormalLoss", "Infinity")
}

func TestStockValuation(t *testing.T) {
	r := StockValuation(StockValuationInput{
		TotalUnits:           100,
		UnitsSold:            60,
		CostPrice:            50,
		NonRecurringExpenses: 1000,
		LoadingPercent:       20,
		InvoicePrice:         62.5,
	}).Result()

	assertDisplay(t, r, "unsoldUnits", "40")
	assertDisplay(t, r, "proportionateExpenses", "400.00")
	assertDisplay(t, r, "stockValueCostMethod", "2400.00")
	assertDisplay(t, r, "loadingOnUnsold", "500.00")
	assertDisplay(t, r, "stockValueInvoiceMethod", "2400.00")
}

func TestStockValuationZeroUnits(t *testing.T) {
	r := StockValuation(StockValuationInput{})

	if !math.IsNaN(r.ProportionateExpenses) {
		t.Fatalf("expected NaN proportionate expenses for zero units, got %v", r.ProportionateExpenses)
	}
	if !math.IsNaN(r.CostMethodValue) || !math.IsNaN(r.InvoiceMethodValue) {
		t.Fatalf("expected NaN stock values, got %v and %v", r.CostMethodValue, r.InvoiceMethodValue)
	}
	if r.UnsoldUnits != 0 || r.LoadingOnUnsold != 0 {
		t.Fatalf("expected zero unsold units and loading, got %v and %v", r.UnsoldUnits, r.LoadingOnUnsold)
	}
}

func TestJointVenture(t *testing.T) {
	tests := []struct {
		name   string
		input  JointVentureInput
		profit string
		shareA string
		shareB string
	}{
		{
			name:   "Sixty forty split",
			input:  JointVentureInput{PartnerAContribution: 30000, PartnerBContribution: 20000, Expenses: 5000, Sales: 70000, PartnerARatio: 60},
			profit: "15000.00",
			shareA: "9000.00",
			shareB: "6000.00",
		},
		{
			name:   "Loss is shared too",
			input:  JointVentureInput{PartnerAContribution: 10000, Sales: 8000, PartnerARatio: 50},
			profit: "-2000.00",
			shareA: "-1000.00",
			shareB: "-1000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := JointVenture(tt.input).Result()
			assertDisplay(t, r, "profit", tt.profit)
			assertDisplay(t, r, "partnerAShare", tt.shareA)
			assertDisplay(t, r, "partnerBShare", tt.shareB)
		})
	}
}

func TestSeparateBooks(t *testing.T) {
	r := SeparateBooks(SeparateBooksInput{
		PurchasesByA: 10000, PurchasesByB: 8000,
		ExpensesByA: 500, ExpensesByB: 700,
		SalesByA: 12000, SalesByB: 11000,
	}).Result()

	assertDisplay(t, r, "totalPurchases", "18000.00")
	assertDisplay(t, r, "totalExpenses", "1200.00")
	assertDisplay(t, r, "totalSales", "23000.00")
	assertDisplay(t, r, "totalCost", "19200.00")
	assertDisplay(t, r, "profit", "3800.00")
}

func TestMemorandum(t *testing.T) {
	r := Memorandum(MemorandumInput{
		GoodsContributed:        40000,
		ExpensesPaid:            2000,
		SalesMade:               52000,
		CoVenturerShareReceived: 3000,
		OwnRatio:                60,
	}).Result()

	assertDisplay(t, r, "totalCost", "42000.00")
	assertDisplay(t, r, "totalProfit", "10000.00")
	assertDisplay(t, r, "ownProfitShare", "6000.00")
	assertDisplay(t, r, "coVenturerProfitShare", "4000.00")
	assertDisplay(t, r, "netAmount", "3000.00")
}

func TestStatementOfAffairs(t *testing.T) {
	r := StatementOfAffairs(StatementOfAffairsInput{
		OpeningCapital:    10000,
		ClosingCapital:    15000,
		Drawings:          2000,
		AdditionalCapital: 1000,
	}).Result()

	assertDisplay(t, r, "profit", "6000.00")
}

func TestConversion(t *testing.T) {
	r := Conversion(ConversionInput{TotalReceipts: 50000, TotalPayments: 42000, OpeningCash: 3000, ClosingCash: 5000}).Result()

	assertDisplay(t, r, "netCashFlow", "8000.00")
	assertDisplay(t, r, "cashIncrease", "2000.00")
	assertDisplay(t, r, "profit", "6000.00")
}

func TestCapital(t *testing.T) {
	r := Capital(CapitalInput{TotalAssets: 85000, TotalLiabilities: 25000}).Result()
	assertDisplay(t, r, "capital", "60000.00")
}

func TestReceiptsPayments(t *testing.T) {
	r := ReceiptsPayments(ReceiptsPaymentsInput{
		OpeningCash: 5000, Subscriptions: 20000, Donations: 3000, OtherReceipts: 1000,
		Salaries: 12000, Rent: 6000, OtherPayments: 2500,
	}).Result()

	assertDisplay(t, r, "totalReceipts", "29000.00")
	assertDisplay(t, r, "totalPayments", "20500.00")
	assertDisplay(t, r, "closingCash", "8500.00")
}

func TestIncomeExpenditure(t *testing.T) {
	r := IncomeExpenditure(IncomeExpenditureInput{
		SubscriptionIncome: 18000, DonationIncome: 2000, OtherIncome: 500,
		SalaryExpense: 15000, RentExpense: 6000, OtherExpenses: 1000,
	}).Result()

	assertDisplay(t, r, "totalIncome", "20500.00")
	assertDisplay(t, r, "totalExpenditure", "22000.00")
	assertDisplay(t, r, "surplusDeficit", "-1500.00")
}

func TestBalanceSheet(t *testing.T) {
	tests := []struct {
		name     string
		input    BalanceSheetInput
		balanced bool
	}{
		{
			name:     "Balanced",
			input:    BalanceSheetInput{FixedAssets: 8000, CurrentAssets: 2000, CurrentLiabilities: 1000, CapitalFund: 9000},
			balanced: true,
		},
		{
			name:     "Off by one rupee",
			input:    BalanceSheetInput{FixedAssets: 8000, CurrentAssets: 2000, CurrentLiabilities: 1000, CapitalFund: 8999},
			balanced: false,
		},
		{
			name:     "Off by a cent",
			input:    BalanceSheetInput{FixedAssets: 100, CurrentLiabilities: 99.99},
			balanced: false,
		},
		{
			name:     "Empty sheet balances",
			input:    BalanceSheetInput{},
			balanced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BalanceSheet(tt.input).Result()
			if r.Flag(BalancedFlag) != tt.balanced {
				t.Errorf("balanced = %v, expected %v", r.Flag(BalancedFlag), tt.balanced)
			}
		})
	}

	r := BalanceSheet(tests[0].input).Result()
	assertDisplay(t, r, "totalAssets", "10000.00")
	assertDisplay(t, r, "totalLiabilitiesAndFund", "10000.00")
}

func TestResultLookupMissing(t *testing.T) {
	r := Capital(CapitalInput{}).Result()
	if _, ok := r.Value("nope"); ok {
		t.Error("expected missing output to be reported absent")
	}
	if r.Display("nope") != "" {
		t.Error("expected empty display for a missing output")
	}
	if r.Flag(BalancedFlag) {
		t.Error("expected unset flag to read false")
	}
}

func TestInputsParsing(t *testing.T) {
	in := Inputs{"amount": "1200abc", "ratio": "0", "blank": ""}

	if got := in.Float("amount"); got != 1200 {
		t.Errorf("Float(amount) = %v, expected 1200", got)
	}
	if got := in.Float("missing"); got != 0 {
		t.Errorf("Float(missing) = %v, expected 0", got)
	}
	if got := in.FloatOr("ratio", 50); got != 50 {
		t.Errorf("FloatOr(ratio) = %v, expected fallback 50", got)
	}
	if got := in.FloatOr("blank", 50); got != 50 {
		t.Errorf("FloatOr(blank) = %v, expected fallback 50", got)
	}
}
