package statistics

import (
	"net/http"
	"time"

	"BIOSECURE/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Now bisa diganti di test.
var Now = time.Now

// GetStatisticsHandler menghitung ulang snapshot setiap request, tidak ada cache.
func GetStatisticsHandler(c *gin.Context) {
	snap, err := models.ComputeStatistics(models.DB, Now())
	if err != nil {
		zap.L().Error("Gagal menghitung statistik", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghitung statistik"})
		return
	}

	c.JSON(http.StatusOK, snap)
}
