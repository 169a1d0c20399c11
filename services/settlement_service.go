package services

import (
	"fmt"
	"log"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// SettlementService computes, reconciles, and completes group settlements
type SettlementService struct {
	expenses    GroupExpenseStore
	settlements SettlementStore
	events      EventSink
}

// NewSettlementService creates a new settlement service. A nil sink falls
// back to logging.
func NewSettlementService(expenses GroupExpenseStore, settlements SettlementStore, events EventSink) *SettlementService {
	if events == nil {
		events = LogEventSink{}
	}
	return &SettlementService{
		expenses:    expenses,
		settlements: settlements,
		events:      events,
	}
}

// NaturalSettlementID is the deterministic identity of a debt between an
// ordered debtor/creditor pair within a group
func NaturalSettlementID(groupID, fromUserID, toUserID string) string {
	return fmt.Sprintf("%s_%s_%s", groupID, fromUserID, toUserID)
}

type personBalance struct {
	userID string
	amount float64
}

// GenerateSettlements converts net balances into directed pairwise debts
// using a greedy two-pointer sweep. Creditors and debtors are taken in
// balance-sheet order, not sorted by magnitude, so the pairing is
// deterministic but only transaction-count minimal: at most
// creditors+debtors-1 settlements are emitted.
func GenerateSettlements(groupID string, sheet *BalanceSheet) []*models.GroupSettlement {
	var creditors, debtors []personBalance
	for _, userID := range sheet.Users() {
		balance := sheet.Get(userID)
		if balance < 0 {
			creditors = append(creditors, personBalance{userID: userID, amount: -balance})
		} else if balance > 0 {
			debtors = append(debtors, personBalance{userID: userID, amount: balance})
		}
	}

	var settlements []*models.GroupSettlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := utils.Round(utils.Min(debtors[i].amount, creditors[j].amount))

		if amount > 0 {
			settlements = append(settlements, &models.GroupSettlement{
				ID:         NaturalSettlementID(groupID, debtors[i].userID, creditors[j].userID),
				GroupID:    groupID,
				FromUserID: debtors[i].userID,
				ToUserID:   creditors[j].userID,
				Amount:     amount,
				Status:     models.SettlementPending,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if utils.Round(debtors[i].amount) == 0 {
			i++
		}
		if utils.Round(creditors[j].amount) == 0 {
			j++
		}
	}

	return settlements
}

// Reconcile merges freshly computed settlements with the persisted set for a
// group. Completed records are never touched; matching pending records are
// reused; missing ones are created; stale pending records are deleted. When a
// pair's owed amount has drifted past an already completed settlement, a new
// pending record is minted with a timestamp-suffixed id that supersedes the
// completed one. Individual write failures are logged and skipped, so a
// partially failed pass leaves prior writes in place. Calling Reconcile twice
// without intervening expense changes yields the same persisted set.
//
// Returns the full current settlement set and the net balances it was
// derived from.
func (s *SettlementService) Reconcile(groupID string) ([]*models.GroupSettlement, map[string]float64, error) {
	expenses, err := s.expenses.GetGroupExpenses(groupID)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.settlements.GetSettlements(groupID)
	if err != nil {
		return nil, nil, err
	}

	var completed, pending []*models.GroupSettlement
	completedByID := make(map[string]*models.GroupSettlement)
	for _, settlement := range existing {
		if settlement.Status == models.SettlementCompleted {
			completed = append(completed, settlement)
			completedByID[settlement.ID] = settlement
		} else {
			pending = append(pending, settlement)
		}
	}

	sheet := ComputeBalances(expenses, completed)
	generated := GenerateSettlements(groupID, sheet)
	s.events.Record(Event{Type: EventSettlementsComputed, GroupID: groupID, Count: len(generated)})

	now := time.Now().UnixMilli()
	result := make([]*models.GroupSettlement, 0, len(completed)+len(generated))
	result = append(result, completed...)
	retained := make(map[string]bool)

	for _, generatedSettlement := range generated {
		if completedMatch, ok := completedByID[generatedSettlement.ID]; ok {
			if utils.Round(completedMatch.Amount) == utils.Round(generatedSettlement.Amount) {
				// Already fully paid, no new debt for this pair
				continue
			}

			// New debt accrued since the pair's settlement completed. The
			// completed record stays untouched; the fresh debt gets its own
			// record, reusing an exact pending match when one exists.
			if match := findPendingMatch(pending, generatedSettlement); match != nil {
				retained[match.ID] = true
				result = append(result, match)
				continue
			}

			minted := *generatedSettlement
			minted.ID = fmt.Sprintf("%s_%d", generatedSettlement.ID, now)
			minted.Supersedes = completedMatch.ID
			minted.CreatedAt = now
			minted.UpdatedAt = now
			if err := s.settlements.CreateSettlement(&minted); err != nil {
				log.Printf("reconcile: failed to persist settlement %s: %v", minted.ID, err)
				continue
			}
			s.events.Record(Event{
				Type:         EventSettlementPersisted,
				GroupID:      groupID,
				SettlementID: minted.ID,
				Supersedes:   minted.Supersedes,
				Amount:       minted.Amount,
			})
			retained[minted.ID] = true
			result = append(result, &minted)
			continue
		}

		if match := findPendingMatch(pending, generatedSettlement); match != nil {
			retained[match.ID] = true
			result = append(result, match)
			continue
		}

		generatedSettlement.CreatedAt = now
		generatedSettlement.UpdatedAt = now
		if err := s.settlements.CreateSettlement(generatedSettlement); err != nil {
			log.Printf("reconcile: failed to persist settlement %s: %v", generatedSettlement.ID, err)
			continue
		}
		s.events.Record(Event{
			Type:         EventSettlementPersisted,
			GroupID:      groupID,
			SettlementID: generatedSettlement.ID,
			Amount:       generatedSettlement.Amount,
		})
		retained[generatedSettlement.ID] = true
		result = append(result, generatedSettlement)
	}

	// Delete pending records no longer implied by current balances
	for _, pendingSettlement := range pending {
		if retained[pendingSettlement.ID] {
			continue
		}
		if err := s.settlements.DeleteSettlement(pendingSettlement.ID); err != nil {
			log.Printf("reconcile: failed to delete stale settlement %s: %v", pendingSettlement.ID, err)
			continue
		}
		s.events.Record(Event{
			Type:         EventSettlementPruned,
			GroupID:      groupID,
			SettlementID: pendingSettlement.ID,
			Amount:       pendingSettlement.Amount,
		})
	}

	return result, sheet.Balances(), nil
}

// GetSettlements returns the persisted settlement set for a group
func (s *SettlementService) GetSettlements(groupID string) ([]*models.GroupSettlement, error) {
	return s.settlements.GetSettlements(groupID)
}

// CompleteSettlement marks a pending settlement completed. The status flip,
// the payer's ledger entry, the wallet history record, and the wallet debit
// are committed as one transaction. The payer's wallet may go negative; that
// is logged as a warning, not an error.
func (s *SettlementService) CompleteSettlement(settlementID string, paymentMethod models.WalletType, notes string) (*models.GroupSettlement, error) {
	if err := utils.ValidateWalletType(string(paymentMethod)); err != nil {
		return nil, err
	}

	settlement, err := s.settlements.GetSettlementByID(settlementID)
	if err != nil {
		return nil, err
	}
	if settlement.Status != models.SettlementPending {
		return nil, utils.NewConflictError("Settlement is not pending")
	}

	completed, balance, err := s.settlements.CompleteSettlement(settlement, paymentMethod, notes)
	if err != nil {
		return nil, err
	}

	if balance < 0 {
		log.Printf("warning: wallet %s for user %s went negative (%.2f) after settlement %s",
			paymentMethod, settlement.FromUserID, balance, settlementID)
	}

	s.events.Record(Event{
		Type:         EventSettlementCompleted,
		GroupID:      settlement.GroupID,
		SettlementID: settlementID,
		Amount:       settlement.Amount,
	})
	return completed, nil
}

func findPendingMatch(pending []*models.GroupSettlement, want *models.GroupSettlement) *models.GroupSettlement {
	for _, candidate := range pending {
		if candidate.FromUserID == want.FromUserID &&
			candidate.ToUserID == want.ToUserID &&
			utils.Round(candidate.Amount) == utils.Round(want.Amount) {
			return candidate
		}
	}
	return nil
}
