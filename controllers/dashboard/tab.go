package dashboard

// Tab adalah satu-satunya state navigasi dashboard.
type Tab string

const (
	TabOverview Tab = "overview"
	TabRegister Tab = "register"
	TabDatabase Tab = "database"
	TabSettings Tab = "settings"
)

// DefaultTab dipakai kalau query tab kosong atau tidak dikenal.
const DefaultTab = TabRegister

type tabInfo struct {
	Tab      Tab
	Label    string
	Icon     string
	Title    string
	Subtitle string
}

// Urutan sesuai sidebar.
var tabs = []tabInfo{
	{TabOverview, "Dashboard", "▦", "Dashboard Overview", "Monitor biometric system status and recent entries."},
	{TabRegister, "Add Personnel", "+", "Add New Personnel", "Register new employees and biometric data."},
	{TabDatabase, "Database", "≣", "Database Management", "View and manage registered personnel records."},
	{TabSettings, "Settings", "⚙", "System Settings", "Configure database connections and security protocols."},
}

func ParseTab(value string) Tab {
	for _, t := range tabs {
		if string(t.Tab) == value {
			return t.Tab
		}
	}
	return DefaultTab
}

func (t Tab) info() tabInfo {
	for _, ti := range tabs {
		if ti.Tab == t {
			return ti
		}
	}
	return DefaultTab.info()
}
