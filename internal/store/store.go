package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"temp-compliance-backend/internal/model"
)

// ErrEquipmentNotFound reports an equipment id absent from the store.
var ErrEquipmentNotFound = errors.New("equipment not found")

// ErrRestaurantNotFound reports a restaurant id absent from the store.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrUserNotFound reports a user id absent from the store.
var ErrUserNotFound = errors.New("user not found")

// Store defines the persistence operations the API layer needs. Readings are
// append-only; there is deliberately no update or delete for them.
type Store interface {
	DB() *gorm.DB

	ListRestaurants(ctx context.Context, organizationID string) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (model.Restaurant, error)
	CreateRestaurant(ctx context.Context, input NewRestaurant) (model.Restaurant, error)

	ListEquipment(ctx context.Context, restaurantID string) ([]model.Equipment, error)
	GetEquipment(ctx context.Context, id string) (model.Equipment, error)
	CreateEquipment(ctx context.Context, input NewEquipment) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, update EquipmentUpdate) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error

	ListReadings(ctx context.Context, restaurantID string, limit int) ([]model.TemperatureReading, error)
	CreateReading(ctx context.Context, input NewReading) (model.TemperatureReading, error)

	ListStaffAndUsers(ctx context.Context, restaurantID string) ([]model.StaffMember, []model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	CreateStaffMember(ctx context.Context, input NewStaffMember) (model.StaffMember, error)
	CreateUser(ctx context.Context, input NewUser) (model.User, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListRestaurants(ctx context.Context, organizationID string) ([]model.Restaurant, error) {
	q := s.db.WithContext(ctx).Order("name")
	if organizationID != "" {
		q = q.Where("organization_id = ?", organizationID)
	}
	var restaurants []model.Restaurant
	if err := q.Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *gormStore) GetRestaurant(ctx context.Context, id string) (model.Restaurant, error) {
	var restaurant model.Restaurant
	err := s.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		return model.Restaurant{}, fmt.Errorf("get restaurant %s: %w", id, err)
	}
	return restaurant, nil
}

func (s *gormStore) CreateRestaurant(ctx context.Context, input NewRestaurant) (model.Restaurant, error) {
	restaurant := model.Restaurant{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Address:        input.Address,
		OrganizationID: input.OrganizationID,
	}
	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return model.Restaurant{}, fmt.Errorf("create restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *gormStore) ListEquipment(ctx context.Context, restaurantID string) ([]model.Equipment, error) {
	var equipment []model.Equipment
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("code").
		Find(&equipment).Error
	if err != nil {
		return nil, fmt.Errorf("list equipment for restaurant %s: %w", restaurantID, err)
	}
	return equipment, nil
}

func (s *gormStore) GetEquipment(ctx context.Context, id string) (model.Equipment, error) {
	var equipment model.Equipment
	err := s.db.WithContext(ctx).First(&equipment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Equipment{}, ErrEquipmentNotFound
	}
	if err != nil {
		return model.Equipment{}, fmt.Errorf("get equipment %s: %w", id, err)
	}
	return equipment, nil
}

func (s *gormStore) CreateEquipment(ctx context.Context, input NewEquipment) (model.Equipment, error) {
	equipment := model.Equipment{
		ID:           uuid.NewString(),
		Code:         input.Code,
		Name:         input.Name,
		MinTemp:      input.MinTemp,
		MaxTemp:      input.MaxTemp,
		RestaurantID: input.RestaurantID,
	}
	if err := s.db.WithContext(ctx).Create(&equipment).Error; err != nil {
		return model.Equipment{}, fmt.Errorf("create equipment: %w", err)
	}
	return equipment, nil
}

// UpdateEquipment edits the live equipment attributes. Snapshots already
// copied onto historical readings keep the range in force at their
// recording time.
func (s *gormStore) UpdateEquipment(ctx context.Context, id string, update EquipmentUpdate) (model.Equipment, error) {
	updates := map[string]any{}
	if update.Code != nil {
		updates["code"] = *update.Code
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.MinTemp != nil {
		updates["min_temp"] = *update.MinTemp
	}
	if update.MaxTemp != nil {
		updates["max_temp"] = *update.MaxTemp
	}

	if len(updates) > 0 {
		res := s.db.WithContext(ctx).
			Model(&model.Equipment{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return model.Equipment{}, fmt.Errorf("update equipment %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return model.Equipment{}, ErrEquipmentNotFound
		}
	}
	return s.GetEquipment(ctx, id)
}

func (s *gormStore) DeleteEquipment(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Equipment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete equipment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

// ListReadings returns the restaurant's readings, newest first. Readings
// carry no restaurant id of their own, so the scope goes through the
// equipment table.
func (s *gormStore) ListReadings(ctx context.Context, restaurantID string, limit int) ([]model.TemperatureReading, error) {
	q := s.db.WithContext(ctx).
		Joins("JOIN equipment ON equipment.id = temperature_readings.equipment_id").
		Where("equipment.restaurant_id = ?", restaurantID).
		Order("temperature_readings.recorded_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var readings []model.TemperatureReading
	if err := q.Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("list readings for restaurant %s: %w", restaurantID, err)
	}
	return readings, nil
}

// CreateReading appends one reading, copying the equipment's current range
// onto it as the snapshot. The snapshot is what keeps historical alert
// status stable when thresholds change later.
func (s *gormStore) CreateReading(ctx context.Context, input NewReading) (model.TemperatureReading, error) {
	var reading model.TemperatureReading
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var equipment model.Equipment
		if err := tx.First(&equipment, "id = ?", input.EquipmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return fmt.Errorf("load equipment %s: %w", input.EquipmentID, err)
		}

		snapMin := equipment.MinTemp
		snapMax := equipment.MaxTemp
		reading = model.TemperatureReading{
			ID:              uuid.NewString(),
			EquipmentID:     equipment.ID,
			Value:           input.Value,
			RecordedAt:      time.Now().UTC(),
			Notes:           input.Notes,
			SnapshotMinTemp: &snapMin,
			SnapshotMaxTemp: &snapMax,
			CreatedBy:       input.CreatedBy,
			TakenBy:         input.TakenBy,
		}
		if err := tx.Create(&reading).Error; err != nil {
			return fmt.Errorf("insert reading: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.TemperatureReading{}, err
	}
	return reading, nil
}

// ListStaffAndUsers returns the restaurant's roster staff plus the accounts
// that can be credited on its readings: users assigned to the restaurant and
// the organization-level ones without an assignment (admins). Leaving the
// latter out would strip their names from report attribution.
func (s *gormStore) ListStaffAndUsers(ctx context.Context, restaurantID string) ([]model.StaffMember, []model.User, error) {
	var staff []model.StaffMember
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name").
		Find(&staff).Error
	if err != nil {
		return nil, nil, fmt.Errorf("list staff for restaurant %s: %w", restaurantID, err)
	}

	userQuery := s.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	var restaurant model.Restaurant
	err = s.db.WithContext(ctx).First(&restaurant, "id = ?", restaurantID).Error
	switch {
	case err == nil:
		userQuery = userQuery.Or("restaurant_id IS NULL AND organization_id = ?", restaurant.OrganizationID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil, fmt.Errorf("get restaurant %s: %w", restaurantID, err)
	}

	var users []model.User
	if err := userQuery.Order("name").Find(&users).Error; err != nil {
		return nil, nil, fmt.Errorf("list users for restaurant %s: %w", restaurantID, err)
	}
	return staff, users, nil
}

func (s *gormStore) GetUser(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func (s *gormStore) CreateStaffMember(ctx context.Context, input NewStaffMember) (model.StaffMember, error) {
	member := model.StaffMember{
		ID:           uuid.NewString(),
		Name:         input.Name,
		RestaurantID: input.RestaurantID,
	}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return model.StaffMember{}, fmt.Errorf("create staff member: %w", err)
	}
	return member, nil
}

func (s *gormStore) CreateUser(ctx context.Context, input NewUser) (model.User, error) {
	user := model.User{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Role:           model.Role(input.Role),
		OrganizationID: input.OrganizationID,
		RestaurantID:   input.RestaurantID,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
