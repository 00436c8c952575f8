package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/supabase-community/postgrest-go"
)

type GarageRepo interface {
	CreateGarage(ctx context.Context, row map[string]interface{}) (*Garage, error)
	GetGarageByID(ctx context.Context, id uuid.UUID) (*Garage, error)
	GetGarageByOwner(ctx context.Context, ownerID uuid.UUID) (*Garage, error)
	UpdateGarage(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Garage, error)

	CreateMotorcycle(ctx context.Context, row map[string]interface{}) (*Motorcycle, error)
	GetMotorcycleByID(ctx context.Context, id uuid.UUID) (*Motorcycle, error)
	ListMotorcycles(ctx context.Context, garageID uuid.UUID) ([]Motorcycle, error)
	UpdateMotorcycle(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Motorcycle, error)
	SoftDeleteMotorcycle(ctx context.Context, id uuid.UUID) error

	CreateMaintenanceLog(ctx context.Context, row map[string]interface{}) (*MaintenanceLog, error)
	ListMaintenanceLogs(ctx context.Context, motorcycleID uuid.UUID) ([]MaintenanceLog, error)

	CreateGarageTask(ctx context.Context, row map[string]interface{}) (*GarageTask, error)
	ListGarageTasks(ctx context.Context, garageID uuid.UUID) ([]GarageTask, error)
	DeleteGarageTask(ctx context.Context, id uuid.UUID) error

	CreateGarageDocument(ctx context.Context, row map[string]interface{}) (*GarageDocument, error)
	ListGarageDocuments(ctx context.Context, garageID uuid.UUID) ([]GarageDocument, error)
	DeleteGarageDocument(ctx context.Context, id uuid.UUID) error
}

func (su *SupabaseRepo) CreateGarage(ctx context.Context, row map[string]interface{}) (*Garage, error) {
	raw, _, err := su.client.From(GaragesTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	garages, err := DecodeRows[Garage](raw, GarageFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(garages) == 0 {
		return nil, apperr.NotFound("no garage returned after insert")
	}
	return &garages[0], nil
}

func (su *SupabaseRepo) GetGarageByID(ctx context.Context, id uuid.UUID) (*Garage, error) {
	return su.getGarage(ctx, "id", id)
}

func (su *SupabaseRepo) GetGarageByOwner(ctx context.Context, ownerID uuid.UUID) (*Garage, error) {
	return su.getGarage(ctx, "owner_id", ownerID)
}

func (su *SupabaseRepo) getGarage(ctx context.Context, column string, id uuid.UUID) (*Garage, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid garage id")
	}

	raw, _, err := su.client.From(GaragesTable).
		Select("*", "", false).
		Eq(column, id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	garages, err := DecodeRows[Garage](raw, GarageFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(garages) == 0 {
		return nil, apperr.NotFound("garage not found")
	}
	return &garages[0], nil
}

func (su *SupabaseRepo) UpdateGarage(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Garage, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid garage id")
	}

	raw, count, err := su.client.From(GaragesTable).
		Update(row, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}
	if count == 0 {
		return nil, apperr.NotFound("garage not found")
	}

	garages, err := DecodeRows[Garage](raw, GarageFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(garages) == 0 {
		return nil, apperr.NotFound("no garage returned after update")
	}
	return &garages[0], nil
}

func (su *SupabaseRepo) CreateMotorcycle(ctx context.Context, row map[string]interface{}) (*Motorcycle, error) {
	raw, _, err := su.client.From(MotorcyclesTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	motorcycles, err := DecodeRows[Motorcycle](raw, MotorcycleFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(motorcycles) == 0 {
		return nil, apperr.NotFound("no motorcycle returned after insert")
	}
	return &motorcycles[0], nil
}

// GetMotorcycleByID excludes soft-deleted rows via the null deleted_at
// predicate.
func (su *SupabaseRepo) GetMotorcycleByID(ctx context.Context, id uuid.UUID) (*Motorcycle, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid motorcycle id")
	}

	raw, _, err := su.client.From(MotorcyclesTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Is("deleted_at", "null").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	motorcycles, err := DecodeRows[Motorcycle](raw, MotorcycleFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(motorcycles) == 0 {
		return nil, apperr.NotFound("motorcycle not found")
	}
	return &motorcycles[0], nil
}

func (su *SupabaseRepo) ListMotorcycles(ctx context.Context, garageID uuid.UUID) ([]Motorcycle, error) {
	if garageID == uuid.Nil {
		return nil, apperr.BadRequest("invalid garage id")
	}

	raw, _, err := su.client.From(MotorcyclesTable).
		Select("*", "", false).
		Eq("garage_id", garageID.String()).
		Is("deleted_at", "null").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	motorcycles, err := DecodeRows[Motorcycle](raw, MotorcycleFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return motorcycles, nil
}

func (su *SupabaseRepo) UpdateMotorcycle(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Motorcycle, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid motorcycle id")
	}

	raw, count, err := su.client.From(MotorcyclesTable).
		Update(row, "", "exact").
		Eq("id", id.String()).
		Is("deleted_at", "null").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}
	if count == 0 {
		return nil, apperr.NotFound("motorcycle not found")
	}

	motorcycles, err := DecodeRows[Motorcycle](raw, MotorcycleFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(motorcycles) == 0 {
		return nil, apperr.NotFound("no motorcycle returned after update")
	}
	return &motorcycles[0], nil
}

// SoftDeleteMotorcycle stamps deleted_at instead of removing the row.
func (su *SupabaseRepo) SoftDeleteMotorcycle(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.BadRequest("invalid motorcycle id")
	}

	row := map[string]interface{}{
		"deleted_at": time.Now().UTC().Format(time.RFC3339),
	}
	_, count, err := su.client.From(MotorcyclesTable).
		Update(row, "", "exact").
		Eq("id", id.String()).
		Is("deleted_at", "null").
		Execute()
	if err != nil {
		return storageErr(err)
	}
	if count == 0 {
		return apperr.NotFound("motorcycle not found")
	}
	return nil
}

func (su *SupabaseRepo) CreateMaintenanceLog(ctx context.Context, row map[string]interface{}) (*MaintenanceLog, error) {
	raw, _, err := su.client.From(MaintenanceLogsTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	logs, err := DecodeRows[MaintenanceLog](raw, MaintenanceFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(logs) == 0 {
		return nil, apperr.NotFound("no maintenance log returned after insert")
	}
	return &logs[0], nil
}

func (su *SupabaseRepo) ListMaintenanceLogs(ctx context.Context, motorcycleID uuid.UUID) ([]MaintenanceLog, error) {
	if motorcycleID == uuid.Nil {
		return nil, apperr.BadRequest("invalid motorcycle id")
	}

	raw, _, err := su.client.From(MaintenanceLogsTable).
		Select("*", "", false).
		Eq("motorcycle_id", motorcycleID.String()).
		Order("performed_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	logs, err := DecodeRows[MaintenanceLog](raw, MaintenanceFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (su *SupabaseRepo) CreateGarageTask(ctx context.Context, row map[string]interface{}) (*GarageTask, error) {
	raw, _, err := su.client.From(GarageTasksTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	tasks, err := DecodeRows[GarageTask](raw, GarageTaskFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(tasks) == 0 {
		return nil, apperr.NotFound("no task returned after insert")
	}
	return &tasks[0], nil
}

func (su *SupabaseRepo) ListGarageTasks(ctx context.Context, garageID uuid.UUID) ([]GarageTask, error) {
	if garageID == uuid.Nil {
		return nil, apperr.BadRequest("invalid garage id")
	}

	raw, _, err := su.client.From(GarageTasksTable).
		Select("*", "", false).
		Eq("garage_id", garageID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	tasks, err := DecodeRows[GarageTask](raw, GarageTaskFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tasks, nil
}

func (su *SupabaseRepo) DeleteGarageTask(ctx context.Context, id uuid.UUID) error {
	return su.deleteRow(ctx, GarageTasksTable, id, "task not found")
}

func (su *SupabaseRepo) CreateGarageDocument(ctx context.Context, row map[string]interface{}) (*GarageDocument, error) {
	raw, _, err := su.client.From(GarageDocumentsTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	docs, err := DecodeRows[GarageDocument](raw, GarageDocumentFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(docs) == 0 {
		return nil, apperr.NotFound("no document returned after insert")
	}
	return &docs[0], nil
}

func (su *SupabaseRepo) ListGarageDocuments(ctx context.Context, garageID uuid.UUID) ([]GarageDocument, error) {
	if garageID == uuid.Nil {
		return nil, apperr.BadRequest("invalid garage id")
	}

	raw, _, err := su.client.From(GarageDocumentsTable).
		Select("*", "", false).
		Eq("garage_id", garageID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	docs, err := DecodeRows[GarageDocument](raw, GarageDocumentFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return docs, nil
}

func (su *SupabaseRepo) DeleteGarageDocument(ctx context.Context, id uuid.UUID) error {
	return su.deleteRow(ctx, GarageDocumentsTable, id, "document not found")
}

func (su *SupabaseRepo) deleteRow(ctx context.Context, table string, id uuid.UUID, notFound string) error {
	if id == uuid.Nil {
		return apperr.BadRequest("invalid id")
	}

	_, count, err := su.client.From(table).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return storageErr(err)
	}
	if count == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}
