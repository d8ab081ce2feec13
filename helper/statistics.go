package helper

import "math"

// MonthChangePercentage menghitung perubahan bulan ini terhadap bulan lalu,
// dibulatkan satu desimal. Kalau bulan lalu kosong hasilnya 100 (ada data
// baru) atau 0.
func MonthChangePercentage(thisMonth, lastMonth int64) float64 {
	if lastMonth > 0 {
		change := float64(thisMonth-lastMonth) / float64(lastMonth) * 100
		return math.Round(change*10) / 10
	}
	if thisMonth > 0 {
		return 100
	}
	return 0
}
