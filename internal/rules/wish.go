package rules

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
)

const RuleWishAffordable = "wish.affordable"

// Wishes reports every wish that is not achieved yet and costs no more
// than the current balance.
func (e Evaluator) Wishes(s Snapshot) []models.Notification {
	var out []models.Notification

	balance := Balance(s.Transactions)
	for _, w := range s.Wishes {
		if w.Achieved() || balance.LessThan(w.EstimatedPrice) {
			continue
		}

		out = append(out, draft(RuleWishAffordable, models.SeveritySuccess, "Wish can be achieved",
			fmt.Sprintf("You can afford %s (%s) with your balance of %s", w.Name, e.amount(w.EstimatedPrice), e.amount(balance)), w.DefaultModel))
	}

	return out
}
