package models

import (
	"time"

	"github.com/google/uuid"
)

// Garage is the collection container for a profile's motorcycles,
// tasks and documents. One garage per owner.
type Garage struct {
	ID                  uuid.UUID  `json:"id"`
	OwnerID             uuid.UUID  `json:"ownerId"`
	WorkspaceNotes      string     `json:"workspaceNotes,omitempty"`
	PrimaryMotorcycleID *uuid.UUID `json:"primaryMotorcycleId,omitempty"`
	BackupMotorcycleID  *uuid.UUID `json:"backupMotorcycleId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

var GarageFields = FieldMap{
	"id":                  "id",
	"ownerId":             "owner_id",
	"workspaceNotes":      "workspace_notes",
	"primaryMotorcycleId": "primary_motorcycle_id",
	"backupMotorcycleId":  "backup_motorcycle_id",
	"createdAt":           "created_at",
	"updatedAt":           "updated_at",
}

type CreateGarageInput struct {
	WorkspaceNotes *string `json:"workspaceNotes,omitempty" binding:"omitempty,max=5000"`
}

type UpdateGarageInput struct {
	WorkspaceNotes      *string    `json:"workspaceNotes,omitempty" binding:"omitempty,max=5000"`
	PrimaryMotorcycleID *uuid.UUID `json:"primaryMotorcycleId,omitempty"`
	BackupMotorcycleID  *uuid.UUID `json:"backupMotorcycleId,omitempty"`
}

// Motorcycle belongs to exactly one garage. Deletion is soft: DeletedAt
// is stamped and every read filters on deleted_at being null.
type Motorcycle struct {
	ID             uuid.UUID  `json:"id"`
	GarageID       uuid.UUID  `json:"garageId"`
	Make           string     `json:"make"`
	Model          string     `json:"model"`
	Year           int        `json:"year"`
	Nickname       string     `json:"nickname,omitempty"`
	VIN            *string    `json:"vin,omitempty"`
	Odometer       int        `json:"odometer"`
	LastServicedAt *string    `json:"lastServicedAt,omitempty"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

var MotorcycleFields = FieldMap{
	"id":             "id",
	"garageId":       "garage_id",
	"make":           "make",
	"model":          "model",
	"year":           "year",
	"nickname":       "nickname",
	"vin":            "vin",
	"odometer":       "odometer",
	"lastServicedAt": "last_serviced_at",
	"deletedAt":      "deleted_at",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

type CreateMotorcycleInput struct {
	Make           string  `json:"make" binding:"required,min=1,max=60"`
	Model          string  `json:"model" binding:"required,min=1,max=60"`
	Year           int     `json:"year" binding:"required,modelyear"`
	Nickname       *string `json:"nickname,omitempty" binding:"omitempty,max=60"`
	VIN            *string `json:"vin,omitempty" binding:"omitempty,min=11,max=17,alphanum"`
	Odometer       *int    `json:"odometer,omitempty" binding:"omitempty,min=0"`
	LastServicedAt *string `json:"lastServicedAt,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateMotorcycleInput struct {
	Make           *string `json:"make,omitempty" binding:"omitempty,min=1,max=60"`
	Model          *string `json:"model,omitempty" binding:"omitempty,min=1,max=60"`
	Year           *int    `json:"year,omitempty" binding:"omitempty,modelyear"`
	Nickname       *string `json:"nickname,omitempty" binding:"omitempty,max=60"`
	VIN            *string `json:"vin,omitempty" binding:"omitempty,min=11,max=17,alphanum"`
	Odometer       *int    `json:"odometer,omitempty" binding:"omitempty,min=0"`
	LastServicedAt *string `json:"lastServicedAt,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// MaintenanceLog records a service entry for a motorcycle.
type MaintenanceLog struct {
	ID           uuid.UUID `json:"id"`
	MotorcycleID uuid.UUID `json:"motorcycleId"`
	PerformedAt  string    `json:"performedAt"`
	Description  string    `json:"description"`
	Cost         float64   `json:"cost"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

var MaintenanceFields = FieldMap{
	"id":           "id",
	"motorcycleId": "motorcycle_id",
	"performedAt":  "performed_at",
	"description":  "description",
	"cost":         "cost",
	"notes":        "notes",
	"createdAt":    "created_at",
}

type CreateMaintenanceInput struct {
	PerformedAt string   `json:"performedAt" binding:"required,datetime=2006-01-02"`
	Description string   `json:"description" binding:"required,min=1,max=500"`
	Cost        *float64 `json:"cost,omitempty" binding:"omitempty,min=0"`
	Notes       *string  `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

// GarageTask is a simple labeled to-do scoped to a garage.
type GarageTask struct {
	ID        uuid.UUID `json:"id"`
	GarageID  uuid.UUID `json:"garageId"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

var GarageTaskFields = FieldMap{
	"id":        "id",
	"garageId":  "garage_id",
	"label":     "label",
	"createdAt": "created_at",
}

type CreateGarageTaskInput struct {
	Label string `json:"label" binding:"required,min=1,max=160"`
}

// GarageDocument tracks paperwork (insurance, registration) for a garage.
type GarageDocument struct {
	ID              uuid.UUID `json:"id"`
	GarageID        uuid.UUID `json:"garageId"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	IssuedAt        *string   `json:"issuedAt,omitempty"`
	ExpiresAt       *string   `json:"expiresAt,omitempty"`
	StorageLocation string    `json:"storageLocation,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

var GarageDocumentFields = FieldMap{
	"id":              "id",
	"garageId":        "garage_id",
	"title":           "title",
	"status":          "status",
	"issuedAt":        "issued_at",
	"expiresAt":       "expires_at",
	"storageLocation": "storage_location",
	"createdAt":       "created_at",
}

type CreateGarageDocumentInput struct {
	Title           string  `json:"title" binding:"required,min=1,max=160"`
	Status          string  `json:"status" binding:"required,oneof=valid expiring expired missing"`
	IssuedAt        *string `json:"issuedAt,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ExpiresAt       *string `json:"expiresAt,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StorageLocation *string `json:"storageLocation,omitempty" binding:"omitempty,max=255"`
}

// GarageDashboard aggregates the two independent reads the dashboard
// endpoint fans out. The reads run in parallel with no cross-consistency
// guarantee; a stale view across the two is accepted.
type GarageDashboard struct {
	Garage      *Garage      `json:"garage"`
	Motorcycles []Motorcycle `json:"motorcycles"`
}
