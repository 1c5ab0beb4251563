package models_test

import (
	"testing"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSetMetaUTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, berlin)

	var tr models.Transaction
	tr.SetMeta(models.DefaultModel{ID: uuid.New(), CreatedAt: created, UpdatedAt: created})

	assert.Equal(t, time.UTC, tr.CreatedAt.Location())
	assert.True(t, created.Equal(tr.CreatedAt))
	assert.Equal(t, tr.DefaultModel, tr.Meta())
}

func TestNotFound(t *testing.T) {
	err := models.NotFound(models.Wish{})
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
	assert.Equal(t, "there is no Wish matching your query", err.Error())
}

func TestRegistryUnique(t *testing.T) {
	seen := map[models.Collection]bool{}
	for _, c := range models.Registry {
		assert.False(t, seen[c], "collection %s registered twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 7)
}

func TestCollections(t *testing.T) {
	tests := []struct {
		model      models.Model
		collection models.Collection
		self       string
	}{
		{models.Transaction{}, models.Transactions, "Transaction"},
		{models.RecurringIncome{}, models.RecurringIncomes, "Recurring Income"},
		{models.RecurringExpense{}, models.RecurringExpenses, "Recurring Expense"},
		{models.Category{}, models.Categories, "Category"},
		{models.Wish{}, models.Wishes, "Wish"},
		{models.ShoppingItem{}, models.ShoppingItems, "Shopping Item"},
		{models.Notification{}, models.Notifications, "Notification"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.collection, tt.model.Collection())
		assert.Equal(t, tt.self, tt.model.Self())
	}
}

func TestTransactionNormalize(t *testing.T) {
	tests := []struct {
		name string
		tr   models.Transaction
		err  error
	}{
		{"Valid expense", models.Transaction{Kind: models.KindExpense, Description: "Rent", Amount: decimal.NewFromFloat(800)}, nil},
		{"Valid income with zero amount", models.Transaction{Kind: models.KindIncome, Description: "Refund"}, nil},
		{"Invalid kind", models.Transaction{Kind: "transfer", Description: "Rent"}, models.ErrTransactionKindInvalid},
		{"Negative amount", models.Transaction{Kind: models.KindExpense, Description: "Rent", Amount: decimal.NewFromFloat(-1)}, models.ErrAmountNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Normalize()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTransactionNormalizeRequiresDescription(t *testing.T) {
	tr := models.Transaction{Kind: models.KindExpense, Description: "   "}
	err := tr.Normalize()
	assert.True(t, models.IsValidationError(err))
	assert.Equal(t, "description is required", err.Error())
}

func TestTransactionTrimWhitespace(t *testing.T) {
	tr := models.Transaction{
		Kind:        models.KindExpense,
		Category:    " Food\t",
		Description: "  Groceries ",
		Notes:       " Some more whitespace in the notes    ",
		Date:        time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 7200)),
	}

	assert.Nil(t, tr.Normalize())
	assert.Equal(t, "Food", tr.Category)
	assert.Equal(t, "Groceries", tr.Description)
	assert.Equal(t, "Some more whitespace in the notes", tr.Notes)
	assert.Equal(t, time.UTC, tr.Date.Location())
	assert.True(t, tr.IsExpense())
}

func TestRecurringNormalize(t *testing.T) {
	tests := []struct {
		name string
		r    models.Recurring
		err  error
	}{
		{"Valid", models.Recurring{Name: "Netflix", ChargeDay: 15, Amount: decimal.NewFromFloat(12.99)}, nil},
		{"Day 31", models.Recurring{Name: "Rent", ChargeDay: 31}, nil},
		{"Day 0", models.Recurring{Name: "Rent", ChargeDay: 0}, models.ErrChargeDayInvalid},
		{"Day 32", models.Recurring{Name: "Rent", ChargeDay: 32}, models.ErrChargeDayInvalid},
		{"Negative", models.Recurring{Name: "Rent", ChargeDay: 1, Amount: decimal.NewFromFloat(-5)}, models.ErrAmountNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := models.RecurringIncome{Recurring: tt.r}
			expense := models.RecurringExpense{Recurring: tt.r, CancellationURL: " https://example.com "}

			if tt.err == nil {
				assert.Nil(t, income.Normalize())
				assert.Nil(t, expense.Normalize())
				assert.Equal(t, "https://example.com", expense.CancellationURL)
				return
			}
			assert.ErrorIs(t, income.Normalize(), tt.err)
			assert.ErrorIs(t, expense.Normalize(), tt.err)
		})
	}
}

func TestRecurringNormalizeRequiresName(t *testing.T) {
	r := models.RecurringIncome{Recurring: models.Recurring{ChargeDay: 1}}
	assert.True(t, models.IsValidationError(r.Normalize()))
}

func TestCategoryNormalize(t *testing.T) {
	c := models.Category{Name: " Food ", Spent: decimal.NewFromFloat(20)}
	assert.Nil(t, c.Normalize())
	assert.Equal(t, "Food", c.Name)
	assert.True(t, c.Spent.IsZero(), "spent must not be stored")
	assert.Equal(t, models.DefaultCategoryColor, c.Color)

	c = models.Category{Name: "Food", Color: "green"}
	assert.ErrorIs(t, c.Normalize(), models.ErrColorInvalid)

	c = models.Category{Name: "Food", Color: "#22C55e"}
	assert.Nil(t, c.Normalize())

	c = models.Category{Name: "Food", MaxBudget: decimal.NewFromFloat(-10)}
	assert.ErrorIs(t, c.Normalize(), models.ErrAmountNegative)
}

func TestWishNormalize(t *testing.T) {
	w := models.Wish{Name: "Bike", TargetDate: &time.Time{}}
	assert.Nil(t, w.Normalize())
	assert.Equal(t, models.PriorityMedium, w.Priority)
	assert.Equal(t, models.StatusPending, w.Status)
	assert.Nil(t, w.TargetDate, "zero target date must be removed")
	assert.False(t, w.Achieved())

	w = models.Wish{Name: "Bike", Priority: "urgent"}
	assert.ErrorIs(t, w.Normalize(), models.ErrWishPriorityInvalid)

	w = models.Wish{Name: "Bike", Status: "bought"}
	assert.ErrorIs(t, w.Normalize(), models.ErrWishStatusInvalid)

	w = models.Wish{Name: "Bike", Status: models.StatusAchieved}
	assert.Nil(t, w.Normalize())
	assert.True(t, w.Achieved())
}

func TestShoppingItemNormalize(t *testing.T) {
	s := models.ShoppingItem{Name: ""}
	assert.True(t, models.IsValidationError(s.Normalize()))

	s = models.ShoppingItem{Name: "Milk", Price: decimal.NewFromFloat(-0.5)}
	assert.ErrorIs(t, s.Normalize(), models.ErrAmountNegative)

	s = models.ShoppingItem{Name: " Milk"}
	assert.Nil(t, s.Normalize())
	assert.Equal(t, "Milk", s.Name)
}

func TestNotificationNormalize(t *testing.T) {
	n := models.Notification{Title: "Hello"}
	assert.Nil(t, n.Normalize())
	assert.Equal(t, models.SeverityInfo, n.Severity)

	n = models.Notification{Title: "Hello", Severity: "fatal"}
	assert.ErrorIs(t, n.Normalize(), models.ErrSeverityInvalid)

	n = models.Notification{}
	assert.True(t, models.IsValidationError(n.Normalize()))
}
