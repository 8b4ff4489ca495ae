package repositories

import (
	"testing"
	"truxtok/models"
)

func TestCreditAppendBalances(t *testing.T) {
	db := openTestDB(t)
	repo := NewCreditRepository(db)

	balance, err := repo.CurrentBalance(1)
	if err != nil {
		t.Fatalf("CurrentBalance (empty): %v", err)
	}
	if balance != 0 {
		t.Fatalf("empty ledger balance = %v, want 0", balance)
	}

	entries := []models.Credit{
		{TechnicianID: 1, Type: models.CreditTypeEarned, Amount: 10},
		{TechnicianID: 1, Type: models.CreditTypeBonus, Amount: 5},
		{TechnicianID: 1, Type: models.CreditTypeRedeemed, Amount: -8},
	}
	wantBalances := []float64{10, 15, 7}

	for i := range entries {
		if err := repo.Append(&entries[i]); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if entries[i].Balance != wantBalances[i] {
			t.Errorf("entry %d balance = %v, want %v", i, entries[i].Balance, wantBalances[i])
		}
	}

	// Another technician's ledger is independent.
	other := models.Credit{TechnicianID: 2, Type: models.CreditTypeEarned, Amount: 3}
	if err := repo.Append(&other); err != nil {
		t.Fatalf("Append other: %v", err)
	}
	if other.Balance != 3 {
		t.Errorf("other technician balance = %v, want 3", other.Balance)
	}
}
