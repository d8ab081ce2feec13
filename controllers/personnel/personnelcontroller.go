package personnel

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"BIOSECURE/helper"
	"BIOSECURE/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EncodingDimensions diisi dari config saat startup. 0 = panjang bebas.
var EncodingDimensions = 128

// Struct untuk validasi input dari dashboard. face_encoding dibiarkan mentah
// karena bisa berupa array atau string berisi array.
type CreatePersonnelPayload struct {
	Name         string          `json:"name"`
	Department   string          `json:"department"`
	FaceEncoding json.RawMessage `json:"face_encoding"`
}

func ListPersonnelHandler(c *gin.Context) {
	personnel := []models.Personnel{}

	if err := models.DB.Order("id").Find(&personnel).Error; err != nil {
		zap.L().Error("Gagal mengambil data personnel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data personnel"})
		return
	}

	c.JSON(http.StatusOK, personnel)
}

func CreatePersonnelHandler(c *gin.Context) {
	var payload CreatePersonnelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Invalid JSON: " + err.Error()}})
		return
	}

	record, fieldErrors := validate(payload)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	if err := models.DB.Create(&record).Error; err != nil {
		zap.L().Error("Gagal menyimpan data personnel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data personnel"})
		return
	}

	zap.L().Info("Personnel terdaftar",
		zap.Int64("id", record.Id),
		zap.String("department", record.Department),
		zap.Int("dimensions", len(record.FaceEncoding)))
	c.JSON(http.StatusCreated, record)
}

// validate mengembalikan error per field, formatnya sama dengan response
// validasi REST framework: field -> daftar pesan.
func validate(payload CreatePersonnelPayload) (models.Personnel, map[string][]string) {
	errs := map[string][]string{}

	name := strings.TrimSpace(payload.Name)
	switch {
	case name == "":
		errs["name"] = []string{"This field is required."}
	case utf8.RuneCountInString(name) > 255:
		errs["name"] = []string{"Ensure this field has no more than 255 characters."}
	}

	if payload.Department == "" {
		errs["department"] = []string{"This field is required."}
	} else if !models.IsValidDepartment(payload.Department) {
		errs["department"] = []string{`"` + payload.Department + `" is not a valid choice.`}
	}

	vec, err := helper.ParseFeatureVector(payload.FaceEncoding)
	if err == nil {
		err = helper.ValidateFeatureVector(vec, EncodingDimensions)
	}
	if err != nil {
		if errors.Is(err, helper.ErrEmptyVector) && len(payload.FaceEncoding) == 0 {
			errs["face_encoding"] = []string{"This field is required."}
		} else {
			errs["face_encoding"] = []string{err.Error()}
		}
	}

	return models.Personnel{
		Name:         name,
		Department:   payload.Department,
		FaceEncoding: vec,
	}, errs
}
