package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"temp-compliance-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// A helper for tests that need real SQL semantics. Each test gets its own
// named in-memory database so they cannot see each other's rows.
func newSQLiteDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&model.Restaurant{},
		&model.Equipment{},
		&model.TemperatureReading{},
		&model.User{},
		&model.StaffMember{},
	))
	return gormDB
}

func TestGormStore_GetEquipment(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "equipment" WHERE id = $1`)).
		WithArgs("eq1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "min_temp", "max_temp", "restaurant_id"}).
			AddRow("eq1", "C001", "Cámara Fría", 1.0, 4.0, "rest1"))

	equipment, err := s.GetEquipment(context.Background(), "eq1")
	require.NoError(t, err)
	assert.Equal(t, "Cámara Fría", equipment.Name)
	assert.Equal(t, 1.0, equipment.MinTemp)
	assert.Equal(t, 4.0, equipment.MaxTemp)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetEquipment_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "equipment" WHERE id = $1`)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetEquipment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListReadings_JoinsThroughEquipment(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "temperature_readings" JOIN equipment ON equipment\.id = temperature_readings\.equipment_id`).
		WithArgs("rest1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "equipment_id", "value", "recorded_at"}).
			AddRow("r2", "eq1", 3.0, now).
			AddRow("r1", "eq1", 2.5, now.Add(-time.Hour)))

	readings, err := s.ListReadings(context.Background(), "rest1", 0)
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, "r2", readings[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateReading_EquipmentNotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "equipment" WHERE id = $1`)).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := s.CreateReading(context.Background(), NewReading{EquipmentID: "ghost", Value: 2.5})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpdateEquipment_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	minTemp := 2.0
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "equipment" SET`)).
		WithArgs(minTemp, Any{}, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := s.UpdateEquipment(context.Background(), "missing", EquipmentUpdate{MinTemp: &minTemp})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteEquipment_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "equipment" WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.DeleteEquipment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateReading_CapturesSnapshot(t *testing.T) {
	gormDB := newSQLiteDB(t, "store_snapshot")
	s := NewGormStore(gormDB)
	ctx := context.Background()

	equipment, err := s.CreateEquipment(ctx, NewEquipment{
		Code: "C001", Name: "Cámara Fría", MinTemp: 1, MaxTemp: 4, RestaurantID: "rest1",
	})
	require.NoError(t, err)

	before := time.Now().UTC().Add(-time.Second)
	reading, err := s.CreateReading(ctx, NewReading{
		EquipmentID: equipment.ID, Value: 2.5, CreatedBy: "u1", TakenBy: "Luis",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, reading.ID)
	require.NotNil(t, reading.SnapshotMinTemp)
	require.NotNil(t, reading.SnapshotMaxTemp)
	assert.Equal(t, 1.0, *reading.SnapshotMinTemp)
	assert.Equal(t, 4.0, *reading.SnapshotMaxTemp)
	assert.True(t, reading.RecordedAt.After(before))
	assert.Equal(t, "Luis", reading.TakenBy)

	// Reconfiguring the equipment afterwards must not rewrite the stored
	// snapshot.
	newMin, newMax := 3.0, 10.0
	_, err = s.UpdateEquipment(ctx, equipment.ID, EquipmentUpdate{MinTemp: &newMin, MaxTemp: &newMax})
	require.NoError(t, err)

	readings, err := s.ListReadings(ctx, "rest1", 0)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 1.0, *readings[0].SnapshotMinTemp)
	assert.Equal(t, 4.0, *readings[0].SnapshotMaxTemp)

	updated, err := s.GetEquipment(ctx, equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.MinTemp)
	assert.Equal(t, 10.0, updated.MaxTemp)
}

func TestGormStore_ListReadings_ScopedToRestaurant(t *testing.T) {
	gormDB := newSQLiteDB(t, "store_scope")
	s := NewGormStore(gormDB)
	ctx := context.Background()

	mine, err := s.CreateEquipment(ctx, NewEquipment{Name: "Cámara Fría", RestaurantID: "rest1"})
	require.NoError(t, err)
	theirs, err := s.CreateEquipment(ctx, NewEquipment{Name: "Congelador", RestaurantID: "rest2"})
	require.NoError(t, err)

	now := time.Now().UTC()
	seed := []model.TemperatureReading{
		{ID: "r1", EquipmentID: mine.ID, Value: 2.5, RecordedAt: now.Add(-2 * time.Hour)},
		{ID: "r2", EquipmentID: mine.ID, Value: 3.0, RecordedAt: now.Add(-1 * time.Hour)},
		{ID: "r3", EquipmentID: theirs.ID, Value: -18, RecordedAt: now},
	}
	require.NoError(t, gormDB.Create(&seed).Error)

	readings, err := s.ListReadings(ctx, "rest1", 0)
	require.NoError(t, err)
	require.Len(t, readings, 2, "the other restaurant's reading stays invisible")
	assert.Equal(t, "r2", readings[0].ID, "newest first")
	assert.Equal(t, "r1", readings[1].ID)

	limited, err := s.ListReadings(ctx, "rest1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "r2", limited[0].ID)
}

func TestGormStore_ListStaffAndUsers_IncludesOrganizationAccounts(t *testing.T) {
	gormDB := newSQLiteDB(t, "store_staff_users")
	s := NewGormStore(gormDB)
	ctx := context.Background()

	restaurant, err := s.CreateRestaurant(ctx, NewRestaurant{Name: "Centro", OrganizationID: "org1"})
	require.NoError(t, err)
	other, err := s.CreateRestaurant(ctx, NewRestaurant{Name: "Norte", OrganizationID: "org1"})
	require.NoError(t, err)

	_, err = s.CreateStaffMember(ctx, NewStaffMember{Name: "Luis", RestaurantID: restaurant.ID})
	require.NoError(t, err)

	assigned, err := s.CreateUser(ctx, NewUser{Name: "Ana Ruiz", Role: "staff", OrganizationID: "org1", RestaurantID: &restaurant.ID})
	require.NoError(t, err)
	// Admins carry no restaurant assignment but still submit readings; their
	// names must reach report attribution.
	orgAdmin, err := s.CreateUser(ctx, NewUser{Name: "Marta Gil", Role: "admin", OrganizationID: "org1"})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, NewUser{Name: "Ajeno", Role: "admin", OrganizationID: "org2"})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, NewUser{Name: "Vecino", Role: "staff", OrganizationID: "org1", RestaurantID: &other.ID})
	require.NoError(t, err)

	staff, users, err := s.ListStaffAndUsers(ctx, restaurant.ID)
	require.NoError(t, err)

	require.Len(t, staff, 1)
	assert.Equal(t, "Luis", staff[0].Name)

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	assert.ElementsMatch(t, []string{assigned.ID, orgAdmin.ID}, ids,
		"assigned user plus the unassigned org admin; other orgs and other restaurants stay out")
}

// Any is a sqlmock argument matcher accepting any value, for generated
// values like uuids and timestamps.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
