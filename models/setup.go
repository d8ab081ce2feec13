package models

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase membuka koneksi MySQL dari DATABASE_URL lalu menjalankan
// migrasi tabel personnel.
func ConnectDatabase(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("gagal terhubung ke database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return err
	}

	zap.L().Info("Koneksi Database Berhasil.")
	DB = db
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Personnel{}); err != nil {
		return fmt.Errorf("migrasi tabel personnel: %w", err)
	}
	return nil
}
