package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"pixbank/internal/database"
	"pixbank/internal/models"
	"pixbank/internal/money"
)

func TestAccountRepository(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

type AccountRepositorySuite struct {
	suite.Suite
	repo AccountRepositoryInterface
}

func (s *AccountRepositorySuite) SetupTest() {
	db := database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(db.DB)
}

func newAccount(email string) *models.Account {
	return &models.Account{
		Name:                "Ana Lima",
		Email:               email,
		PasswordHash:        "hashed_password",
		TransactionPassword: "123456",
		Balance:             models.StartingBalance,
	}
}

func (s *AccountRepositorySuite) TestCreate() {
	account := newAccount("ana@example.com")
	s.Require().NoError(s.repo.Create(account))

	s.NotEqual(uuid.Nil, account.ID)
	s.False(account.CreatedAt.IsZero())

	fetched, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal("ana@example.com", fetched.Email)
	s.Equal(models.StartingBalance, fetched.Balance)
	s.Equal("123456", fetched.TransactionPassword)
}

func (s *AccountRepositorySuite) TestCreateDuplicateEmail() {
	s.Require().NoError(s.repo.Create(newAccount("ana@example.com")))

	err := s.repo.Create(newAccount("ana@example.com"))
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *AccountRepositorySuite) TestCreateInvalid() {
	s.Error(s.repo.Create(newAccount("not-an-email")))
	s.Error(s.repo.Create(nil))
}

func (s *AccountRepositorySuite) TestGetByEmail() {
	created := newAccount("ana@example.com")
	s.Require().NoError(s.repo.Create(created))

	fetched, err := s.repo.GetByEmail("ana@example.com")
	s.Require().NoError(err)
	s.Equal(created.ID, fetched.ID)

	_, err = s.repo.GetByEmail("nobody@example.com")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestUpdateBalance() {
	account := newAccount("ana@example.com")
	s.Require().NoError(s.repo.Create(account))

	s.Require().NoError(s.repo.UpdateBalance(account.ID, money.FromCents(990000)))

	fetched, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal(money.FromCents(990000), fetched.Balance)
}

func (s *AccountRepositorySuite) TestUpdateBalanceNegative() {
	account := newAccount("ana@example.com")
	s.Require().NoError(s.repo.Create(account))

	// the store accepts whatever the client computed, including overdraft
	s.Require().NoError(s.repo.UpdateBalance(account.ID, money.FromCents(-5000)))

	fetched, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.True(fetched.Balance.IsNegative())
}

func (s *AccountRepositorySuite) TestUpdateBalanceNotFound() {
	s.ErrorIs(s.repo.UpdateBalance(uuid.New(), money.FromCents(100)), ErrAccountNotFound)
	s.Error(s.repo.UpdateBalance(uuid.Nil, money.FromCents(100)))
}

func (s *AccountRepositorySuite) TestUpdateFields() {
	account := newAccount("ana@example.com")
	s.Require().NoError(s.repo.Create(account))

	s.Require().NoError(s.repo.UpdateFields(account.ID, map[string]interface{}{
		"name":                 "Ana Beatriz Lima",
		"transaction_password": "7777",
	}))

	fetched, err := s.repo.GetByID(account.ID)
	s.Require().NoError(err)
	s.Equal("Ana Beatriz Lima", fetched.Name)
	s.Equal("7777", fetched.TransactionPassword)
	s.Equal(models.StartingBalance, fetched.Balance)

	s.ErrorIs(s.repo.UpdateFields(uuid.New(), map[string]interface{}{"name": "x"}), ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestEmailExists() {
	s.Require().NoError(s.repo.Create(newAccount("ana@example.com")))

	exists, err := s.repo.EmailExists("ana@example.com")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.EmailExists("nobody@example.com")
	s.Require().NoError(err)
	s.False(exists)
}
