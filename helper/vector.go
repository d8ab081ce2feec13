package helper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrEmptyVector    = errors.New("vektor wajah kosong")
	ErrNotNumberArray = errors.New("vektor wajah harus berupa array angka JSON")
	ErrNonFinite      = errors.New("vektor wajah mengandung NaN atau Infinity")
	ErrZeroVector     = errors.New("vektor wajah tidak boleh nol semua")
)

// DimensionError dikembalikan kalau panjang vektor tidak sesuai.
type DimensionError struct {
	Want, Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimensi vektor wajah salah (harus %d, dapat %d)", e.Want, e.Got)
}

// ParseFeatureVector membaca face_encoding dari body JSON. Nilainya boleh
// array angka langsung, atau string yang isinya array angka (format yang
// dikirim textarea dashboard).
func ParseFeatureVector(raw json.RawMessage) ([]float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrEmptyVector
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, ErrNotNumberArray
		}
		return ParseFeatureVectorText(text)
	}
	var vec []float64
	if err := json.Unmarshal(raw, &vec); err != nil {
		return nil, ErrNotNumberArray
	}
	if len(vec) == 0 {
		return nil, ErrEmptyVector
	}
	return vec, nil
}

// ParseFeatureVectorText membaca teks seperti "[0.12, -0.4, ...]".
func ParseFeatureVectorText(text string) ([]float64, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 {
		return nil, ErrEmptyVector
	}
	if trimmed[0] != '[' {
		return nil, ErrNotNumberArray
	}
	return ParseFeatureVector(trimmed)
}

// ValidateFeatureVector mengecek nilai finite, bukan vektor nol, dan
// panjangnya sama dengan dimensions (0 = bebas).
func ValidateFeatureVector(vec []float64, dimensions int) error {
	if len(vec) == 0 {
		return ErrEmptyVector
	}
	if dimensions > 0 && len(vec) != dimensions {
		return &DimensionError{Want: dimensions, Got: len(vec)}
	}
	if floats.HasNaN(vec) {
		return ErrNonFinite
	}
	for _, v := range vec {
		if math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	// Norm bisa overflow ke +Inf untuk nilai finite yang sangat besar; di
	// sini hanya dipakai untuk mendeteksi vektor nol.
	if floats.Norm(vec, 2) == 0 {
		return ErrZeroVector
	}
	return nil
}
