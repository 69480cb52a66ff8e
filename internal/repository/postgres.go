package repository

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/sfy-labs/easychain/internal/models"
	"github.com/sfy-labs/easychain/pkg/logger"
)

type PostgresDB struct {
	logger *logger.Logger

	Conn *gorm.DB
}

func NewPostgresDB(user, password, dbname, host string, port int, logger *logger.Logger) (models.Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	// Configure GORM logger to suppress "record not found" messages
	gormLogger := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %s", err)
	}

	if err := db.AutoMigrate(&models.Company{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %s", err)
	}
	logger.Info("Successfully connected to PostgreSQL!")
	return &PostgresDB{Conn: db, logger: logger}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %s", err)
	}
	return sqlDB.Close()
}

func (db *PostgresDB) AddCompany(company *models.Company) error {
	if err := db.Conn.Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company record: %s", err)
	}

	return nil
}

func (db *PostgresDB) GetCompany(wallet string) (*models.Company, error) {
	var company models.Company
	if err := db.Conn.Where("wallet_address = ?", wallet).First(&company).Error; err != nil {
		return nil, fmt.Errorf("failed to get company: %s", err)
	}

	return &company, nil
}

func (db *PostgresDB) CompanyExists(wallet string) (bool, error) {
	var company models.Company
	if err := db.Conn.Where("wallet_address = ?", wallet).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if company exists: %s", err)
	}

	return true, nil
}

func (db *PostgresDB) ListPendingCompanies() ([]*models.Company, error) {
	var companies []*models.Company
	if err := db.Conn.Where("status = ?", models.StatusPending).Order("created_at").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending companies: %s", err)
	}

	return companies, nil
}

func (db *PostgresDB) ListActivatedCompanies() ([]*models.Company, error) {
	var companies []*models.Company
	if err := db.Conn.Where("status <> ?", models.StatusPending).Order("created_at").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list activated companies: %s", err)
	}

	return companies, nil
}

func (db *PostgresDB) UpdateCompanyStatus(wallet, status string) error {
	var company models.Company
	if err := db.Conn.Where("wallet_address = ?", wallet).First(&company).Error; err != nil {
		return fmt.Errorf("failed to get company: %s", err)
	}

	company.Status = status
	if err := db.Conn.Save(&company).Error; err != nil {
		return fmt.Errorf("failed to update company status: %s", err)
	}

	return nil
}

func (db *PostgresDB) UpdateCompanyCredits(wallet string, credits uint64) error {
	var company models.Company
	if err := db.Conn.Where("wallet_address = ?", wallet).First(&company).Error; err != nil {
		return fmt.Errorf("failed to get company: %s", err)
	}

	company.Credits = credits
	if err := db.Conn.Save(&company).Error; err != nil {
		return fmt.Errorf("failed to update company credits: %s", err)
	}

	return nil
}

func (db *PostgresDB) DeleteCompany(wallet string) error {
	if err := db.Conn.Where("wallet_address = ?", wallet).Delete(&models.Company{}).Error; err != nil {
		return fmt.Errorf("failed to delete company: %s", err)
	}

	return nil
}
