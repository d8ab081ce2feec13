package models

import (
	"fmt"
	"time"

	"BIOSECURE/helper"

	"gorm.io/gorm"
)

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type StatisticsSnapshot struct {
	TotalPersonnel        int64             `json:"total_personnel"`
	PersonnelThisMonth    int64             `json:"personnel_this_month"`
	PersonnelYesterday    int64             `json:"personnel_yesterday"`
	MonthChangePercentage float64           `json:"month_change_percentage"`
	DatabaseStatus        string            `json:"database_status"`
	DepartmentBreakdown   []DepartmentCount `json:"department_breakdown"`
}

// ComputeStatistics menghitung ulang seluruh snapshot dari tabel personnel.
// Batas bulan dan hari mengikuti zona waktu now.
func ComputeStatistics(db *gorm.DB, now time.Time) (StatisticsSnapshot, error) {
	var snap StatisticsSnapshot

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	if err := db.Model(&Personnel{}).Count(&snap.TotalPersonnel).Error; err != nil {
		return snap, fmt.Errorf("count personnel: %w", err)
	}
	if err := db.Model(&Personnel{}).
		Where("created_at >= ?", monthStart).
		Count(&snap.PersonnelThisMonth).Error; err != nil {
		return snap, fmt.Errorf("count this month: %w", err)
	}
	if err := db.Model(&Personnel{}).
		Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).
		Count(&snap.PersonnelYesterday).Error; err != nil {
		return snap, fmt.Errorf("count yesterday: %w", err)
	}

	var lastMonth int64
	if err := db.Model(&Personnel{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&lastMonth).Error; err != nil {
		return snap, fmt.Errorf("count last month: %w", err)
	}
	snap.MonthChangePercentage = helper.MonthChangePercentage(snap.PersonnelThisMonth, lastMonth)

	snap.DepartmentBreakdown = []DepartmentCount{}
	if err := db.Model(&Personnel{}).
		Select("department, COUNT(id) AS count").
		Group("department").
		Order("department").
		Scan(&snap.DepartmentBreakdown).Error; err != nil {
		return snap, fmt.Errorf("department breakdown: %w", err)
	}

	snap.DatabaseStatus = DatabaseStatus()
	return snap, nil
}
