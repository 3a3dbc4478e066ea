// Package data holds the domain rules of the balances tracker: warning-limit
// validation, ledger aggregation, and the store that applies the sign
// convention and ownership rules when writing balances, transactions and
// categories.
package data

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bkromhout/balances/internal/idgen"
	"github.com/bkromhout/balances/internal/models"

	"gorm.io/gorm"
)

// Store persists balances, transactions and categories. The database handle
// and the id factory are injected so tests can run against an in-memory
// database and counter.
type Store struct {
	db  *gorm.DB
	ids *idgen.Factory
}

// NewStore returns a Store using db for persistence and ids for identifiers.
func NewStore(db *gorm.DB, ids *idgen.Factory) *Store {
	return &Store{db: db, ids: ids}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if len(name) > 64 {
		return &ValidationError{Field: "name", Message: "must be at most 64 characters"}
	}
	return nil
}

// ---------- balances ----------

// NewBalance holds the user-supplied fields for balance creation.
type NewBalance struct {
	Name        string
	BaseAmount  int64
	YellowLimit int64
	RedLimit    int64
}

// CreateBalance validates and persists a new balance. The base amount is
// fixed at creation and cannot be edited afterwards.
func (s *Store) CreateBalance(nb NewBalance) (*models.Balance, error) {
	if err := validateName(nb.Name); err != nil {
		return nil, err
	}
	if res := ValidateWarnLimits(nb.YellowLimit, nb.RedLimit); res != WarnLimitsOK {
		return nil, &ValidationError{Field: "limits", Message: "limits are " + res.String()}
	}

	id, err := s.ids.NextID(models.TypeBalance)
	if err != nil {
		return nil, err
	}
	b := &models.Balance{
		UniqueID:    id,
		Name:        nb.Name,
		BaseAmount:  nb.BaseAmount,
		YellowLimit: nb.YellowLimit,
		RedLimit:    nb.RedLimit,
	}
	if err := s.db.Create(b).Error; err != nil {
		return nil, fmt.Errorf("create balance: %w", err)
	}
	return b, nil
}

// UpdateBalance edits a balance's name and warning limits. The base amount
// is immutable.
func (s *Store) UpdateBalance(id int64, name string, yellowLimit, redLimit int64) (*models.Balance, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if res := ValidateWarnLimits(yellowLimit, redLimit); res != WarnLimitsOK {
		return nil, &ValidationError{Field: "limits", Message: "limits are " + res.String()}
	}

	b, err := s.findBalance(id)
	if err != nil {
		return nil, err
	}
	b.Name = name
	b.YellowLimit = yellowLimit
	b.RedLimit = redLimit
	if err := s.db.Save(b).Error; err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}
	return b, nil
}

// findBalance loads a balance row without its transactions.
func (s *Store) findBalance(id int64) (*models.Balance, error) {
	var b models.Balance
	err := s.db.First(&b, "unique_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("balance %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load balance: %w", err)
	}
	return &b, nil
}

// Balance loads a balance with its transactions, newest first.
func (s *Store) Balance(id int64) (*models.Balance, error) {
	var b models.Balance
	err := s.db.Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp DESC")
	}).First(&b, "unique_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("balance %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load balance: %w", err)
	}
	return &b, nil
}

// Balances lists all balances without their transactions.
func (s *Store) Balances() ([]models.Balance, error) {
	var bs []models.Balance
	if err := s.db.Order("name").Find(&bs).Error; err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	return bs, nil
}

// DeleteBalance removes a balance and all transactions it owns in a single
// transaction. The ids are retired, never reissued.
func (s *Store) DeleteBalance(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var b models.Balance
		err := tx.First(&b, "unique_id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("balance %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("load balance: %w", err)
		}
		if err := tx.Where("balance_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("delete transactions: %w", err)
		}
		if err := tx.Delete(&b).Error; err != nil {
			return fmt.Errorf("delete balance: %w", err)
		}
		return nil
	})
}

// TotalBalance computes base amount + sum of transaction amounts, delegating
// the sum to the database.
func (s *Store) TotalBalance(id int64) (int64, error) {
	b, err := s.findBalance(id)
	if err != nil {
		return 0, err
	}

	var sum int64
	err = s.db.Model(&models.Transaction{}).
		Where("balance_id = ?", id).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	return b.BaseAmount + sum, nil
}

// ---------- transactions ----------

// NewTransaction holds the user-supplied fields for transaction creation.
// Amount is the entered magnitude; the store flips its sign when the chosen
// category is a debit.
type NewTransaction struct {
	BalanceID   int64
	Name        string
	Amount      int64
	CategoryID  int64
	Timestamp   time.Time
	CheckNumber int
	Note        string
}

// CreateTransaction validates and persists a transaction under its owning
// balance. The credit/debit sign convention is applied here, once: the
// stored amount needs no category branching ever again.
func (s *Store) CreateTransaction(nt NewTransaction) (*models.Transaction, error) {
	if err := validateName(nt.Name); err != nil {
		return nil, err
	}
	if nt.Amount == 0 {
		return nil, &ValidationError{Field: "amount", Message: "must not be zero"}
	}

	if _, err := s.findBalance(nt.BalanceID); err != nil {
		return nil, err
	}
	cat, err := s.Category(nt.CategoryID)
	if err != nil {
		return nil, err
	}

	amount := nt.Amount
	if !cat.IsCredit {
		amount = -amount
	}
	ts := nt.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	checkNumber := nt.CheckNumber
	if checkNumber <= 0 {
		checkNumber = models.NoCheckNumber
	}

	id, err := s.ids.NextID(models.TypeTransaction)
	if err != nil {
		return nil, err
	}
	t := &models.Transaction{
		UniqueID:    id,
		BalanceID:   nt.BalanceID,
		Name:        nt.Name,
		Amount:      amount,
		CategoryID:  cat.UniqueID,
		Timestamp:   ts,
		CheckNumber: checkNumber,
		Note:        nt.Note,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return t, nil
}

// UpdateTransaction edits a transaction. The sign convention is reapplied
// from the (possibly changed) category.
func (s *Store) UpdateTransaction(id int64, nt NewTransaction) (*models.Transaction, error) {
	if err := validateName(nt.Name); err != nil {
		return nil, err
	}
	if nt.Amount == 0 {
		return nil, &ValidationError{Field: "amount", Message: "must not be zero"}
	}

	t, err := s.Transaction(id)
	if err != nil {
		return nil, err
	}
	cat, err := s.Category(nt.CategoryID)
	if err != nil {
		return nil, err
	}

	amount := nt.Amount
	if !cat.IsCredit {
		amount = -amount
	}
	t.Name = nt.Name
	t.Amount = amount
	t.CategoryID = cat.UniqueID
	if !nt.Timestamp.IsZero() {
		t.Timestamp = nt.Timestamp
	}
	if nt.CheckNumber > 0 {
		t.CheckNumber = nt.CheckNumber
	} else {
		t.CheckNumber = models.NoCheckNumber
	}
	t.Note = nt.Note
	if err := s.db.Save(t).Error; err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return t, nil
}

// Transaction loads a single transaction.
func (s *Store) Transaction(id int64) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.First(&t, "unique_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load transaction: %w", err)
	}
	return &t, nil
}

// Transactions lists a balance's transactions, newest first.
func (s *Store) Transactions(balanceID int64) ([]models.Transaction, error) {
	if _, err := s.findBalance(balanceID); err != nil {
		return nil, err
	}
	var ts []models.Transaction
	err := s.db.Where("balance_id = ?", balanceID).Order("timestamp DESC").Find(&ts).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return ts, nil
}

// DeleteTransaction removes a single transaction.
func (s *Store) DeleteTransaction(id int64) error {
	t, err := s.Transaction(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(t).Error; err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// ---------- categories ----------

// CreateCategory persists a new category. Name and credit flag together must
// be unique.
func (s *Store) CreateCategory(name string, isCredit bool) (*models.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	var count int64
	err := s.db.Model(&models.Category{}).
		Where("name = ? AND is_credit = ?", name, isCredit).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if count > 0 {
		return nil, &ValidationError{Field: "name", Message: "category already exists"}
	}

	id, err := s.ids.NextID(models.TypeCategory)
	if err != nil {
		return nil, err
	}
	c := &models.Category{UniqueID: id, Name: name, IsCredit: isCredit}
	if err := s.db.Create(c).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// UpdateCategory edits a category's name and credit flag.
func (s *Store) UpdateCategory(id int64, name string, isCredit bool) (*models.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	c, err := s.Category(id)
	if err != nil {
		return nil, err
	}
	var count int64
	err = s.db.Model(&models.Category{}).
		Where("name = ? AND is_credit = ? AND unique_id <> ?", name, isCredit, id).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if count > 0 {
		return nil, &ValidationError{Field: "name", Message: "category already exists"}
	}
	c.Name = name
	c.IsCredit = isCredit
	if err := s.db.Save(c).Error; err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Category loads a single category.
func (s *Store) Category(id int64) (*models.Category, error) {
	var c models.Category
	err := s.db.First(&c, "unique_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}
	return &c, nil
}

// Categories lists all categories, credits before debits, then by name.
func (s *Store) Categories() ([]models.Category, error) {
	var cs []models.Category
	if err := s.db.Order("is_credit DESC, name").Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cs, nil
}

// DeleteCategory removes a category unless transactions still reference it,
// in which case it returns a CategoryInUseError carrying the count.
func (s *Store) DeleteCategory(id int64) error {
	c, err := s.Category(id)
	if err != nil {
		return err
	}
	var refs int64
	err = s.db.Model(&models.Transaction{}).Where("category_id = ?", id).Count(&refs).Error
	if err != nil {
		return fmt.Errorf("count references: %w", err)
	}
	if refs > 0 {
		return &CategoryInUseError{Refs: refs}
	}
	if err := s.db.Delete(c).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
