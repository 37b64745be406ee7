package database

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"pixbank/internal/config"
	"pixbank/internal/models"
	"pixbank/internal/money"
)

const demoSeedAccounts = 3

// SeedDemoData inserts a handful of demo accounts with transaction
// history when SEED_DEMO_DATA=true and the accounts table is empty.
func SeedDemoData(db *DB, cfg *config.Config) error {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), cfg.Security.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	faker := gofakeit.New(0)

	for i := 0; i < demoSeedAccounts; i++ {
		account := &models.Account{
			Name:                faker.Name(),
			Email:               faker.Email(),
			PasswordHash:        string(hash),
			TransactionPassword: "123456",
			Balance:             models.StartingBalance,
		}
		if err := db.Create(account).Error; err != nil {
			return fmt.Errorf("failed to seed account: %w", err)
		}

		for j := 0; j < faker.Number(2, 6); j++ {
			record := demoTransaction(faker, account)
			if err := db.Create(record).Error; err != nil {
				return fmt.Errorf("failed to seed transaction: %w", err)
			}
		}

		slog.Info("seeded demo account", "email", account.Email)
	}

	return nil
}

func demoTransaction(faker *gofakeit.Faker, account *models.Account) *models.TransactionRecord {
	record := &models.TransactionRecord{
		UserID:     account.ID,
		PayeeTaxID: faker.Numerify("###########"),
		PayeeName:  faker.Name(),
		Amount:     money.FromCents(int64(faker.Number(100, 500000))),
		ValueDate:  time.Now().AddDate(0, 0, -faker.Number(0, 60)),
	}

	if faker.Bool() {
		record.Channel = models.ChannelPix
		record.PixKey = faker.Email()
	} else {
		record.Channel = models.ChannelTed
		record.Bank = faker.Company()
		record.Branch = faker.Numerify("####")
		record.Account = faker.Numerify("######-#")
	}

	return record
}
