package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-engine/models"
)

// InitDB opens the local database. sqlite is the default (the register's
// embedded store); set DB_DRIVER=mysql for a server deployment.
func InitDB() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "pos.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// DefaultTaxPercentage is the company tax applied to charges without their
// own tax configuration.
func DefaultTaxPercentage() float64 {
	v, err := strconv.ParseFloat(os.Getenv("DEFAULT_TAX_PERCENTAGE"), 64)
	if err != nil {
		return 0
	}
	return v
}

// CompanyID identifies the merchant on persisted orders.
func CompanyID() string {
	return os.Getenv("COMPANY_ID")
}

// CurrentLocation reads the location settings for this register.
func CurrentLocation() models.Location {
	return models.Location{
		ID:              os.Getenv("LOCATION_ID"),
		Name:            os.Getenv("LOCATION_NAME"),
		NegativeBilling: os.Getenv("NEGATIVE_BILLING") == "true",
		DefaultTier:     os.Getenv("DEFAULT_PRICE_TIER"),
	}
}

// PrintTemplate builds the receipt header/footer from the company profile.
func PrintTemplate() models.PrintTemplate {
	return models.PrintTemplate{
		CompanyName:    os.Getenv("COMPANY_NAME"),
		CompanyAddress: os.Getenv("COMPANY_ADDRESS"),
		CompanyPhone:   os.Getenv("COMPANY_PHONE"),
		TaxNumber:      os.Getenv("COMPANY_TAX_NUMBER"),
		HeaderNote:     os.Getenv("RECEIPT_HEADER_NOTE"),
		FooterNote:     os.Getenv("RECEIPT_FOOTER_NOTE"),
		LegalText:      os.Getenv("RECEIPT_LEGAL_TEXT"),
	}
}
