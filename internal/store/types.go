package store

// NewReading is the staff input for one temperature entry. The id, the
// recording timestamp and the snapshot range are filled server-side.
type NewReading struct {
	EquipmentID string
	Value       float64
	Notes       string
	CreatedBy   string
	TakenBy     string
}

// NewEquipment is the admin input for registering a monitored unit.
type NewEquipment struct {
	Code         string
	Name         string
	MinTemp      float64
	MaxTemp      float64
	RestaurantID string
}

// EquipmentUpdate carries the editable equipment fields. Nil fields are left
// untouched. Threshold edits never rewrite historical reading snapshots.
type EquipmentUpdate struct {
	Code    *string
	Name    *string
	MinTemp *float64
	MaxTemp *float64
}

// NewRestaurant is the admin input for creating a site.
type NewRestaurant struct {
	Name           string
	Address        string
	OrganizationID string
}

// NewStaffMember is the admin input for adding a roster entry.
type NewStaffMember struct {
	Name         string
	RestaurantID string
}

// NewUser is the admin input for creating a platform account profile.
type NewUser struct {
	Name           string
	Role           string
	OrganizationID string
	RestaurantID   *string
}
