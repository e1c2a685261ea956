package models

// Driver statuses understood by the backend
const (
	DriverStatusOnline  = "online"
	DriverStatusBusy    = "busy"
	DriverStatusOffline = "offline"
)

// ValidDriverStatus reports whether status is one the backend understands
func ValidDriverStatus(status string) bool {
	switch status {
	case DriverStatusOnline, DriverStatusBusy, DriverStatusOffline:
		return true
	}
	return false
}

// DriverProfile represents the driver's account as returned by the
// profile endpoint
type DriverProfile struct {
	ID              int64   `json:"id"`
	Phone           string  `json:"phone,omitempty"`
	Name            string  `json:"name,omitempty"`
	Email           string  `json:"email,omitempty"`
	Status          string  `json:"status,omitempty"`
	VehicleModel    string  `json:"vehicle_model,omitempty"`
	VehiclePlate    string  `json:"vehicle_plate,omitempty"`
	VehicleType     string  `json:"vehicle_type,omitempty"`
	LicenseNumber   string  `json:"license_number,omitempty"`
	LicenseExpiry   string  `json:"license_expiry,omitempty"`
	TotalOrders     int     `json:"total_orders"`
	AverageRating   float64 `json:"average_rating"`
	ExperienceYears int     `json:"experience_years"`
}

// Location represents a GPS sample from the injected location source
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are within WGS84 bounds
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
