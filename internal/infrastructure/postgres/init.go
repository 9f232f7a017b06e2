package postgres

import (
	"log"

	"github.com/boardline/seller-allocation-service/internal/config"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AllocationConfig) *gorm.DB {
	dsn := cfg.AllocationDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.SubOrderModel{}, &models.SubOrderLineModel{}, &models.ShippingLineModel{}, &models.SellerSurchargeModel{})

	return db
}
