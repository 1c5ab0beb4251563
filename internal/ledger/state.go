package ledger

import (
	"slices"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/rules"
	"github.com/google/uuid"
)

// State is the complete application state.
//
// State is a value. Its mutations never modify the receiver, they
// return the new State together with the effects needed to make
// storage match it.
type State struct {
	Transactions      []models.Transaction
	RecurringIncomes  []models.RecurringIncome
	RecurringExpenses []models.RecurringExpense
	Categories        []models.Category
	Wishes            []models.Wish
	ShoppingItems     []models.ShoppingItem
	Notifications     []models.Notification
}

// Env is what mutations need to know besides the state itself.
type Env struct {
	Rules rules.Evaluator
	Now   time.Time
}

// table describes how a collection is kept in State.
type table[E any] struct {
	list  func(*State) *[]E
	after func(rules.Evaluator, rules.Snapshot) []models.Notification // Rules to run after a mutation. Optional
}

var (
	transactions = table[models.Transaction]{
		list:  func(s *State) *[]models.Transaction { return &s.Transactions },
		after: rules.Evaluator.AfterTransaction,
	}
	recurringIncomes = table[models.RecurringIncome]{
		list: func(s *State) *[]models.RecurringIncome { return &s.RecurringIncomes },
	}
	recurringExpenses = table[models.RecurringExpense]{
		list:  func(s *State) *[]models.RecurringExpense { return &s.RecurringExpenses },
		after: rules.Evaluator.AfterRecurringExpense,
	}
	categories = table[models.Category]{
		list:  func(s *State) *[]models.Category { return &s.Categories },
		after: rules.Evaluator.AfterCategory,
	}
	wishes = table[models.Wish]{
		list:  func(s *State) *[]models.Wish { return &s.Wishes },
		after: rules.Evaluator.AfterWish,
	}
	shoppingItems = table[models.ShoppingItem]{
		list: func(s *State) *[]models.ShoppingItem { return &s.ShoppingItems },
	}
	notifications = table[models.Notification]{
		list: func(s *State) *[]models.Notification { return &s.Notifications },
	}
)

// model is satisfied by pointers to resources.
type model[E any] interface {
	*E
	models.Entity
}

func idOf[E any, P model[E]](e E) uuid.UUID {
	return P(&e).Meta().ID
}

func find[E any, P model[E]](s State, t table[E], id uuid.UUID) (E, bool) {
	for _, e := range *t.list(&s) {
		if idOf[E, P](e) == id {
			return e, true
		}
	}

	var zero E
	return zero, false
}

func put[E any, P model[E]](s State, env Env, t table[E], e E) (State, []Effect) {
	list := t.list(&s)
	id := idOf[E, P](e)

	next := slices.Clone(*list)
	if i := slices.IndexFunc(next, func(x E) bool { return idOf[E, P](x) == id }); i >= 0 {
		next[i] = e
	} else {
		next = append(next, e)
	}
	*list = next

	return s, append([]Effect{Persist{Model: P(&e)}}, s.check(env, t.after)...)
}

func remove[E any, P model[E]](s State, env Env, t table[E], id uuid.UUID) (State, []Effect, bool) {
	list := t.list(&s)

	i := slices.IndexFunc(*list, func(x E) bool { return idOf[E, P](x) == id })
	if i < 0 {
		return s, nil, false
	}

	var zero E
	*list = slices.Delete(slices.Clone(*list), i, i+1)

	return s, append([]Effect{Remove{Collection: P(&zero).Collection(), ID: id}}, s.check(env, t.after)...), true
}

// Snapshot returns the parts of the state the rules look at.
func (s State) Snapshot(now time.Time) rules.Snapshot {
	return rules.Snapshot{
		Now:               now,
		Transactions:      s.Transactions,
		Categories:        s.Categories,
		Wishes:            s.Wishes,
		RecurringExpenses: s.RecurringExpenses,
	}
}

func (s State) check(env Env, after func(rules.Evaluator, rules.Snapshot) []models.Notification) []Effect {
	if after == nil {
		return nil
	}

	var effects []Effect
	for _, n := range after(env.Rules, s.Snapshot(env.Now)) {
		effects = append(effects, Notify{Notification: n})
	}

	return effects
}

func (s State) PutTransaction(env Env, t models.Transaction) (State, []Effect) {
	return put(s, env, transactions, t)
}

func (s State) RemoveTransaction(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, transactions, id)
}

func (s State) PutRecurringIncome(env Env, r models.RecurringIncome) (State, []Effect) {
	return put(s, env, recurringIncomes, r)
}

func (s State) RemoveRecurringIncome(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, recurringIncomes, id)
}

func (s State) PutRecurringExpense(env Env, r models.RecurringExpense) (State, []Effect) {
	return put(s, env, recurringExpenses, r)
}

func (s State) RemoveRecurringExpense(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, recurringExpenses, id)
}

func (s State) PutCategory(env Env, c models.Category) (State, []Effect) {
	return put(s, env, categories, c)
}

func (s State) RemoveCategory(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, categories, id)
}

func (s State) PutWish(env Env, w models.Wish) (State, []Effect) {
	return put(s, env, wishes, w)
}

func (s State) RemoveWish(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, wishes, id)
}

func (s State) PutShoppingItem(env Env, i models.ShoppingItem) (State, []Effect) {
	return put(s, env, shoppingItems, i)
}

func (s State) RemoveShoppingItem(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, shoppingItems, id)
}

// ClearPurchased removes all purchased items from the shopping list.
func (s State) ClearPurchased() (State, []Effect) {
	var effects []Effect
	s.ShoppingItems = slices.DeleteFunc(slices.Clone(s.ShoppingItems), func(i models.ShoppingItem) bool {
		if i.Purchased {
			effects = append(effects, Remove{Collection: models.ShoppingItems, ID: i.ID})
		}
		return i.Purchased
	})

	return s, effects
}

func (s State) PutNotification(env Env, n models.Notification) (State, []Effect) {
	return put(s, env, notifications, n)
}

func (s State) RemoveNotification(env Env, id uuid.UUID) (State, []Effect, bool) {
	return remove(s, env, notifications, id)
}

// MarkNotificationsRead marks the notifications with the given IDs as read,
// all notifications if no ID is given.
func (s State) MarkNotificationsRead(now time.Time, ids ...uuid.UUID) (State, []Effect) {
	var effects []Effect

	s.Notifications = slices.Clone(s.Notifications)
	for i, n := range s.Notifications {
		if n.Read || (len(ids) > 0 && !slices.Contains(ids, n.ID)) {
			continue
		}

		n.Read = true
		n.UpdatedAt = now.In(time.UTC)
		s.Notifications[i] = n
		effects = append(effects, Persist{Model: &n})
	}

	return s, effects
}

// ClearNotifications removes all notifications.
func (s State) ClearNotifications() (State, []Effect) {
	s.Notifications = nil
	return s, []Effect{Truncate{Collection: models.Notifications}}
}

// RunChecks runs every rule against the state.
func (s State) RunChecks(env Env) (State, []Effect) {
	return s, s.check(env, rules.Evaluator.All)
}

// Reset removes everything.
func (State) Reset() (State, []Effect) {
	effects := make([]Effect, 0, len(models.Registry))
	for _, c := range models.Registry {
		effects = append(effects, Truncate{Collection: c})
	}

	return State{}, effects
}
