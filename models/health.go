package models

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusConnected    = "Connected"
	StatusDisconnected = "Disconnected"
)

var dbStatus = atomic.NewString(StatusDisconnected)

// DatabaseStatus adalah hasil health check terakhir.
func DatabaseStatus() string {
	return dbStatus.Load()
}

// PingDatabase memperbarui status database dan mengembalikan nilainya.
func PingDatabase(db *gorm.DB) string {
	status := StatusDisconnected
	if db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
			status = StatusConnected
		}
	}
	if prev := dbStatus.Swap(status); prev != status {
		zap.L().Info("Status database berubah", zap.String("from", prev), zap.String("to", status))
	}
	return status
}

// StartHealthCheck menjalankan PingDatabase secara sinkron dulu, lalu setiap
// interval. Panggil Stop pada scheduler saat shutdown.
func StartHealthCheck(db *gorm.DB, interval time.Duration) (*gocron.Scheduler, error) {
	PingDatabase(db)

	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(interval).WaitForSchedule().Do(PingDatabase, db); err != nil {
		return nil, err
	}
	s.StartAsync()
	return s, nil
}
