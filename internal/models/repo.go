package models

import (
	"strings"

	"github.com/motomeet/mm/internal/apperr"
	"github.com/supabase-community/supabase-go"
)

const (
	ProfilesTable        = "profiles"
	RidesTable           = "rides"
	BookingsTable        = "bookings"
	GaragesTable         = "garages"
	MotorcyclesTable     = "motorcycles"
	MaintenanceLogsTable = "maintenance_logs"
	GarageTasksTable     = "garage_tasks"
	GarageDocumentsTable = "garage_documents"
)

// SupabaseRepo wraps the shared PostgREST/GoTrue client. One instance
// lives for the whole process and is injected into every service.
type SupabaseRepo struct {
	client *supabase.Client
}

func NewSupabaseRepo(client *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{client: client}
}

// storageErr maps a raw PostgREST failure onto the error taxonomy.
// Uniqueness violations become Conflict, everything else surfaces as
// "operation failed: <underlying>".
func storageErr(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505") {
		return apperr.Conflict("resource already exists")
	}
	return apperr.Internal(err)
}
