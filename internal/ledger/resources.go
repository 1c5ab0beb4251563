package ledger

import (
	"context"
	"slices"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/rules"
	"github.com/google/uuid"
)

type (
	putFunc[E any]      func(State, Env, E) (State, []Effect)
	removeFunc          func(State, Env, uuid.UUID) (State, []Effect, bool)
	validateFunc[E any] func(State, E) error
)

func list[E any](l *Ledger, t table[E]) []E {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(*t.list(&l.state))
}

func get[E any, P model[E]](l *Ledger, t table[E], id uuid.UUID) (E, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := find[E, P](l.state, t, id)
	if !ok {
		return e, models.NotFound(P(&e))
	}

	return e, nil
}

func create[E any, P model[E]](ctx context.Context, l *Ledger, e E, put putFunc[E], validate validateFunc[E]) (E, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero E
	now := l.clock()

	p := P(&e)
	p.SetMeta(models.DefaultModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now})
	if err := p.Normalize(); err != nil {
		return zero, err
	}

	if validate != nil {
		if err := validate(l.state, e); err != nil {
			return zero, err
		}
	}

	next, effects := put(l.state, l.env(now), e)
	if _, err := l.apply(ctx, now, next, effects); err != nil {
		return zero, err
	}

	return e, nil
}

func update[E any, P model[E]](ctx context.Context, l *Ledger, t table[E], id uuid.UUID, e E, put putFunc[E], validate validateFunc[E]) (E, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero E
	existing, ok := find[E, P](l.state, t, id)
	if !ok {
		return zero, models.NotFound(P(&e))
	}

	now := l.clock()
	meta := P(&existing).Meta()

	p := P(&e)
	p.SetMeta(models.DefaultModel{ID: meta.ID, CreatedAt: meta.CreatedAt, UpdatedAt: now})
	if err := p.Normalize(); err != nil {
		return zero, err
	}

	if validate != nil {
		if err := validate(l.state, e); err != nil {
			return zero, err
		}
	}

	next, effects := put(l.state, l.env(now), e)
	if _, err := l.apply(ctx, now, next, effects); err != nil {
		return zero, err
	}

	return e, nil
}

func del[E any, P model[E]](ctx context.Context, l *Ledger, id uuid.UUID, remove removeFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	next, effects, ok := remove(l.state, l.env(now), id)
	if !ok {
		var zero E
		return models.NotFound(P(&zero))
	}

	_, err := l.apply(ctx, now, next, effects)
	return err
}

func (l *Ledger) Transactions() []models.Transaction {
	return list(l, transactions)
}

func (l *Ledger) Transaction(id uuid.UUID) (models.Transaction, error) {
	return get(l, transactions, id)
}

// CreateTransaction stores a new transaction. A transaction without a
// date is booked now.
func (l *Ledger) CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if t.Date.IsZero() {
		t.Date = l.clock()
	}

	return create(ctx, l, t, State.PutTransaction, nil)
}

func (l *Ledger) UpdateTransaction(ctx context.Context, id uuid.UUID, t models.Transaction) (models.Transaction, error) {
	if t.Date.IsZero() {
		t.Date = l.clock()
	}

	return update(ctx, l, transactions, id, t, State.PutTransaction, nil)
}

func (l *Ledger) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return del[models.Transaction](ctx, l, id, State.RemoveTransaction)
}

func (l *Ledger) RecurringIncomes() []models.RecurringIncome {
	return list(l, recurringIncomes)
}

func (l *Ledger) RecurringIncome(id uuid.UUID) (models.RecurringIncome, error) {
	return get(l, recurringIncomes, id)
}

func (l *Ledger) CreateRecurringIncome(ctx context.Context, r models.RecurringIncome) (models.RecurringIncome, error) {
	return create(ctx, l, r, State.PutRecurringIncome, nil)
}

func (l *Ledger) UpdateRecurringIncome(ctx context.Context, id uuid.UUID, r models.RecurringIncome) (models.RecurringIncome, error) {
	return update(ctx, l, recurringIncomes, id, r, State.PutRecurringIncome, nil)
}

func (l *Ledger) DeleteRecurringIncome(ctx context.Context, id uuid.UUID) error {
	return del[models.RecurringIncome](ctx, l, id, State.RemoveRecurringIncome)
}

func (l *Ledger) RecurringExpenses() []models.RecurringExpense {
	return list(l, recurringExpenses)
}

func (l *Ledger) RecurringExpense(id uuid.UUID) (models.RecurringExpense, error) {
	return get(l, recurringExpenses, id)
}

func (l *Ledger) CreateRecurringExpense(ctx context.Context, r models.RecurringExpense) (models.RecurringExpense, error) {
	return create(ctx, l, r, State.PutRecurringExpense, nil)
}

func (l *Ledger) UpdateRecurringExpense(ctx context.Context, id uuid.UUID, r models.RecurringExpense) (models.RecurringExpense, error) {
	return update(ctx, l, recurringExpenses, id, r, State.PutRecurringExpense, nil)
}

func (l *Ledger) DeleteRecurringExpense(ctx context.Context, id uuid.UUID) error {
	return del[models.RecurringExpense](ctx, l, id, State.RemoveRecurringExpense)
}

// uniqueCategoryName rejects a category whose name is used by another category.
func uniqueCategoryName(s State, c models.Category) error {
	for _, other := range s.Categories {
		if other.Name == c.Name && other.ID != c.ID {
			return models.ErrCategoryNameNotUnique
		}
	}

	return nil
}

// withSpent sets the derived Spent of every category.
func withSpent(s State, categories []models.Category) []models.Category {
	for i := range categories {
		categories[i].Spent = rules.Spent(s.Transactions, categories[i].Name)
	}

	return categories
}

// Categories returns all categories with their spent amount.
func (l *Ledger) Categories() []models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	return withSpent(l.state, slices.Clone(l.state.Categories))
}

func (l *Ledger) Category(id uuid.UUID) (models.Category, error) {
	c, err := get(l, categories, id)
	if err != nil {
		return c, err
	}

	return withSpent(l.State(), []models.Category{c})[0], nil
}

func (l *Ledger) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	c, err := create(ctx, l, c, State.PutCategory, uniqueCategoryName)
	if err != nil {
		return c, err
	}

	return withSpent(l.State(), []models.Category{c})[0], nil
}

func (l *Ledger) UpdateCategory(ctx context.Context, id uuid.UUID, c models.Category) (models.Category, error) {
	c, err := update(ctx, l, categories, id, c, State.PutCategory, uniqueCategoryName)
	if err != nil {
		return c, err
	}

	return withSpent(l.State(), []models.Category{c})[0], nil
}

func (l *Ledger) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return del[models.Category](ctx, l, id, State.RemoveCategory)
}

func (l *Ledger) Wishes() []models.Wish {
	return list(l, wishes)
}

func (l *Ledger) Wish(id uuid.UUID) (models.Wish, error) {
	return get(l, wishes, id)
}

func (l *Ledger) CreateWish(ctx context.Context, w models.Wish) (models.Wish, error) {
	return create(ctx, l, w, State.PutWish, nil)
}

func (l *Ledger) UpdateWish(ctx context.Context, id uuid.UUID, w models.Wish) (models.Wish, error) {
	return update(ctx, l, wishes, id, w, State.PutWish, nil)
}

func (l *Ledger) DeleteWish(ctx context.Context, id uuid.UUID) error {
	return del[models.Wish](ctx, l, id, State.RemoveWish)
}

func (l *Ledger) ShoppingItems() []models.ShoppingItem {
	return list(l, shoppingItems)
}

func (l *Ledger) ShoppingItem(id uuid.UUID) (models.ShoppingItem, error) {
	return get(l, shoppingItems, id)
}

func (l *Ledger) CreateShoppingItem(ctx context.Context, i models.ShoppingItem) (models.ShoppingItem, error) {
	return create(ctx, l, i, State.PutShoppingItem, nil)
}

func (l *Ledger) UpdateShoppingItem(ctx context.Context, id uuid.UUID, i models.ShoppingItem) (models.ShoppingItem, error) {
	return update(ctx, l, shoppingItems, id, i, State.PutShoppingItem, nil)
}

func (l *Ledger) DeleteShoppingItem(ctx context.Context, id uuid.UUID) error {
	return del[models.ShoppingItem](ctx, l, id, State.RemoveShoppingItem)
}

// ClearPurchased removes all purchased shopping items and returns how
// many were removed.
func (l *Ledger) ClearPurchased(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, effects := l.state.ClearPurchased()
	if _, err := l.apply(ctx, l.clock(), next, effects); err != nil {
		return 0, err
	}

	return len(effects), nil
}

// Notifications returns all notifications, newest first.
func (l *Ledger) Notifications() []models.Notification {
	n := list(l, notifications)
	slices.Reverse(n)
	return n
}

func (l *Ledger) Notification(id uuid.UUID) (models.Notification, error) {
	return get(l, notifications, id)
}

func (l *Ledger) UpdateNotification(ctx context.Context, id uuid.UUID, n models.Notification) (models.Notification, error) {
	return update(ctx, l, notifications, id, n, State.PutNotification, nil)
}

// MarkRead marks a single notification as read.
func (l *Ledger) MarkRead(ctx context.Context, id uuid.UUID) (models.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := find(l.state, notifications, id); !ok {
		return models.Notification{}, models.NotFound(models.Notification{})
	}

	now := l.clock()
	next, effects := l.state.MarkNotificationsRead(now, id)
	if _, err := l.apply(ctx, now, next, effects); err != nil {
		return models.Notification{}, err
	}

	n, _ := find(l.state, notifications, id)
	return n, nil
}

// MarkAllRead marks all notifications as read and returns how many
// were unread.
func (l *Ledger) MarkAllRead(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	next, effects := l.state.MarkNotificationsRead(now)
	if _, err := l.apply(ctx, now, next, effects); err != nil {
		return 0, err
	}

	return len(effects), nil
}

func (l *Ledger) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	return del[models.Notification](ctx, l, id, State.RemoveNotification)
}

func (l *Ledger) ClearNotifications(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, effects := l.state.ClearNotifications()
	_, err := l.apply(ctx, l.clock(), next, effects)
	return err
}

// RunChecks evaluates all rules and returns the notifications raised.
func (l *Ledger) RunChecks(ctx context.Context) ([]models.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	next, effects := l.state.RunChecks(l.env(now))
	return l.apply(ctx, now, next, effects)
}

// Reset deletes all resources.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, effects := l.state.Reset()
	_, err := l.apply(ctx, l.clock(), next, effects)
	return err
}
