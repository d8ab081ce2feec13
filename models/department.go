package models

// Department adalah pilihan departemen yang tersedia di form registrasi.
type Department struct {
	Value string
	Label string
}

// Departments berurutan sesuai tampilan dropdown.
var Departments = []Department{
	{Value: "engineering", Label: "Engineering"},
	{Value: "hr", Label: "Human Resources"},
	{Value: "sales", Label: "Sales"},
	{Value: "executive", Label: "Executive"},
	{Value: "security", Label: "Security"},
}

// IsValidDepartment mengecek value terhadap daftar tetap, case-sensitive.
func IsValidDepartment(value string) bool {
	for _, d := range Departments {
		if d.Value == value {
			return true
		}
	}
	return false
}

// DepartmentLabel mengembalikan label tampilan, atau value mentah kalau
// departemen tidak dikenal (data lama di database).
func DepartmentLabel(value string) string {
	for _, d := range Departments {
		if d.Value == value {
			return d.Label
		}
	}
	return value
}
