package store

import (
	"errors"
	"fmt"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/google/uuid"
)

const (
	accountsKey    = "accounts"
	assumptionsKey = "assumptions"
)

var (
	// ErrAccountNotFound is returned when an update or delete names an unknown account
	ErrAccountNotFound = errors.New("account not found")
	// ErrAssumptionsNotSet is returned when a projection needs assumptions that were never saved
	ErrAssumptionsNotSet = errors.New("assumptions not set")
)

// LoadAccounts returns the stored account snapshot, empty when nothing was saved yet
func (s *Store) LoadAccounts() ([]domain.Account, error) {
	var accounts []domain.Account
	if _, err := s.getJSON(s.db, accountsKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveAccounts replaces the stored account snapshot
func (s *Store) SaveAccounts(accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return s.putJSON(s.db, accountsKey, accounts)
}

// LoadAssumptions returns the stored assumptions. The bool is false when none were saved.
func (s *Store) LoadAssumptions() (domain.Assumptions, bool, error) {
	var assumptions domain.Assumptions
	found, err := s.getJSON(s.db, assumptionsKey, &assumptions)
	return assumptions, found, err
}

// SaveAssumptions replaces the stored assumptions
func (s *Store) SaveAssumptions(assumptions domain.Assumptions) error {
	return s.putJSON(s.db, assumptionsKey, assumptions)
}

// LoadConfiguration assembles a configuration from the stored snapshots
func (s *Store) LoadConfiguration() (*domain.Configuration, error) {
	accounts, err := s.LoadAccounts()
	if err != nil {
		return nil, err
	}
	assumptions, found, err := s.LoadAssumptions()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrAssumptionsNotSet
	}
	return &domain.Configuration{Accounts: accounts, Assumptions: assumptions}, nil
}

// AddAccount appends an account, assigning a time-ordered ID when it has none
func (s *Store) AddAccount(acct domain.Account) (domain.Account, error) {
	if _, err := acct.Category.Bucket(); err != nil {
		return domain.Account{}, err
	}
	if acct.ID == "" {
		acct.ID = uuid.Must(uuid.NewV7()).String()
	}

	err := s.updateAccounts(func(accounts []domain.Account) ([]domain.Account, error) {
		for _, existing := range accounts {
			if existing.ID == acct.ID {
				return nil, fmt.Errorf("account id %q already exists", acct.ID)
			}
		}
		return append(accounts, acct), nil
	})
	if err != nil {
		return domain.Account{}, err
	}
	return acct, nil
}

// UpdateAccount replaces the stored account with the same ID
func (s *Store) UpdateAccount(acct domain.Account) error {
	if _, err := acct.Category.Bucket(); err != nil {
		return err
	}
	return s.updateAccounts(func(accounts []domain.Account) ([]domain.Account, error) {
		for i := range accounts {
			if accounts[i].ID == acct.ID {
				accounts[i] = acct
				return accounts, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, acct.ID)
	})
}

// DeleteAccount removes the account with the given ID
func (s *Store) DeleteAccount(id string) error {
	return s.updateAccounts(func(accounts []domain.Account) ([]domain.Account, error) {
		for i := range accounts {
			if accounts[i].ID == id {
				return append(accounts[:i], accounts[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	})
}

// updateAccounts runs a read-modify-write of the account snapshot in one transaction
func (s *Store) updateAccounts(mutate func([]domain.Account) ([]domain.Account, error)) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var accounts []domain.Account
	if _, err := s.getJSON(tx, accountsKey, &accounts); err != nil {
		return err
	}

	updated, err := mutate(accounts)
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []domain.Account{}
	}
	if err := s.putJSON(tx, accountsKey, updated); err != nil {
		return err
	}

	return tx.Commit()
}
