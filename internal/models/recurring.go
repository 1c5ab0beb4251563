package models

import (
	"github.com/shopspring/decimal"
)

// Recurring holds the fields shared by recurring incomes and expenses.
//
// A recurring resource is a template that repeats every month on
// ChargeDay, it is never materialized into single transactions.
type Recurring struct {
	Name      string          `json:"name" example:"Salary"`
	Amount    decimal.Decimal `json:"amount" example:"2500"`
	ChargeDay int             `json:"chargeDay" example:"25" minimum:"1" maximum:"31"` // Day of the month
	Active    bool            `json:"active" example:"true"`
}

func (r *Recurring) normalize() error {
	trim(&r.Name)

	if r.Name == "" {
		return required("name")
	}

	if r.ChargeDay < 1 || r.ChargeDay > 31 {
		return ErrChargeDayInvalid
	}

	return checkAmount(r.Amount)
}

type RecurringIncome struct {
	DefaultModel
	Recurring
}

func (RecurringIncome) Self() string {
	return "Recurring Income"
}

func (RecurringIncome) Collection() Collection {
	return RecurringIncomes
}

func (r *RecurringIncome) Normalize() error {
	return r.Recurring.normalize()
}

type RecurringExpense struct {
	DefaultModel
	Recurring
	CancellationURL string `json:"cancellationUrl" example:"https://example.com/account/cancel"` // Where the subscription can be cancelled
}

func (RecurringExpense) Self() string {
	return "Recurring Expense"
}

func (RecurringExpense) Collection() Collection {
	return RecurringExpenses
}

func (r *RecurringExpense) Normalize() error {
	trim(&r.CancellationURL)
	return r.Recurring.normalize()
}
