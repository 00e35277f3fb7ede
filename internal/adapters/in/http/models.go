package http

import "time"

// Error is the JSON error envelope returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// NewDriver is the request body for registering a driver.
type NewDriver struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	PhoneNumber   string `json:"phoneNumber"`
}

// NewVehicle is the request body for registering a vehicle.
// DriverID optionally names the regular driver.
type NewVehicle struct {
	PlateNumber string  `json:"plateNumber"`
	Type        string  `json:"type"`
	Capacity    float64 `json:"capacity"`
	DriverID    *string `json:"driverId,omitempty"`
}

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewMill is the request body for registering a mill.
type NewMill struct {
	Name               string   `json:"name"`
	ContactPerson      string   `json:"contactPerson"`
	PhoneNumber        string   `json:"phoneNumber"`
	AvgDailyProduction float64  `json:"avgDailyProduction"`
	Location           GeoPoint `json:"location"`
}

// EditDriver is the request body for updating a driver's identity fields.
// Absent fields leave the current values unchanged.
type EditDriver struct {
	Name          *string `json:"name,omitempty"`
	LicenseNumber *string `json:"licenseNumber,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
}

// EditVehicle is the request body for updating a vehicle's registration
// fields. Absent fields leave the current values unchanged; the regular
// driver and status have dedicated endpoints.
type EditVehicle struct {
	PlateNumber *string  `json:"plateNumber,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Capacity    *float64 `json:"capacity,omitempty"`
}

// EditMill is the request body for updating a mill's reference data.
// Absent fields leave the current values unchanged.
type EditMill struct {
	Name               *string   `json:"name,omitempty"`
	ContactPerson      *string   `json:"contactPerson,omitempty"`
	PhoneNumber        *string   `json:"phoneNumber,omitempty"`
	AvgDailyProduction *float64  `json:"avgDailyProduction,omitempty"`
	Location           *GeoPoint `json:"location,omitempty"`
}

// Driver is the driver roster response row.
type Driver struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	PhoneNumber   string `json:"phoneNumber"`
	Status        string `json:"status"`
}

// Vehicle is the vehicle fleet response row. DriverID and DriverName are
// omitted when no regular driver is assigned.
type Vehicle struct {
	ID          string  `json:"id"`
	PlateNumber string  `json:"plateNumber"`
	Type        string  `json:"type"`
	Capacity    float64 `json:"capacity"`
	DriverID    *string `json:"driverId,omitempty"`
	DriverName  *string `json:"driverName,omitempty"`
	Status      string  `json:"status"`
}

// Mill is the mill registry response row.
type Mill struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ContactPerson      string   `json:"contactPerson"`
	PhoneNumber        string   `json:"phoneNumber"`
	AvgDailyProduction float64  `json:"avgDailyProduction"`
	Location           GeoPoint `json:"location"`
}

// NewCollection is one planned pickup within a trip request.
type NewCollection struct {
	MillID   string  `json:"millId"`
	Quantity float64 `json:"quantity"`
}

// NewTrip is the request body for scheduling a trip.
// EstimatedDuration is in minutes; zero selects the default.
type NewTrip struct {
	VehicleID         string          `json:"vehicleId"`
	DriverID          string          `json:"driverId"`
	ScheduledDate     time.Time       `json:"scheduledDate"`
	EstimatedDuration int             `json:"estimatedDuration,omitempty"`
	Collections       []NewCollection `json:"collections"`
}

// EditTrip is the request body for editing a trip's plan.
// Absent fields leave the current values unchanged; a present collections
// list replaces the line items wholesale.
type EditTrip struct {
	ScheduledDate     *time.Time      `json:"scheduledDate,omitempty"`
	EstimatedDuration *int            `json:"estimatedDuration,omitempty"`
	Collections       []NewCollection `json:"collections,omitempty"`
}

// StatusChange is the request body for lifecycle status transitions.
type StatusChange struct {
	Status string `json:"status"`
}

// AssignDriver is the request body for changing a vehicle's regular driver.
// A null driverId clears the assignment.
type AssignDriver struct {
	DriverID *string `json:"driverId"`
}

// TripCollection is one pickup line item in a trip response.
type TripCollection struct {
	ID        string  `json:"id"`
	MillID    string  `json:"millId"`
	MillName  string  `json:"millName"`
	Collected float64 `json:"collected"`
}

// Trip is the trip list/detail response row.
type Trip struct {
	ID                string           `json:"id"`
	VehicleID         string           `json:"vehicleId"`
	PlateNumber       string           `json:"plateNumber"`
	DriverID          string           `json:"driverId"`
	DriverName        string           `json:"driverName"`
	ScheduledDate     time.Time        `json:"scheduledDate"`
	Status            string           `json:"status"`
	EstimatedDuration int              `json:"estimatedDuration"`
	PlannedTotal      float64          `json:"plannedTotal"`
	Collections       []TripCollection `json:"collections,omitempty"`
}
