package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

type GarageService struct {
	garageRepo models.GarageRepo
}

func NewGarageService(garageRepo models.GarageRepo) *GarageService {
	return &GarageService{garageRepo: garageRepo}
}

// CreateGarage creates the caller's garage; one per owner.
func (gs *GarageService) CreateGarage(ctx context.Context, ownerID uuid.UUID, input *models.CreateGarageInput) (*models.Garage, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	if _, err := gs.garageRepo.GetGarageByOwner(ctx, ownerID); err == nil {
		return nil, apperr.Conflict("garage already exists")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fields["id"] = uuid.New().String()
	fields["ownerId"] = ownerID.String()
	fields["createdAt"] = now
	fields["updatedAt"] = now

	return gs.garageRepo.CreateGarage(ctx, models.GarageFields.ToRow(fields))
}

func (gs *GarageService) GetMyGarage(ctx context.Context, ownerID uuid.UUID) (*models.Garage, error) {
	return gs.garageRepo.GetGarageByOwner(ctx, ownerID)
}

func (gs *GarageService) UpdateGarage(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID, input *models.UpdateGarageInput) (*models.Garage, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(fields) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}
	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	return gs.garageRepo.UpdateGarage(ctx, garageID, models.GarageFields.ToRow(fields))
}

// Dashboard fans out the garage read and the motorcycle list in
// parallel. The two reads carry no cross-consistency guarantee; a stale
// view across them is accepted since both are read-only.
func (gs *GarageService) Dashboard(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID) (*models.GarageDashboard, error) {
	garageChan := make(chan *models.Garage, 1)
	motosChan := make(chan []models.Motorcycle, 1)
	errChan := make(chan error, 2)

	go func() {
		garage, err := gs.garageRepo.GetGarageByID(ctx, garageID)
		if err != nil {
			errChan <- err
			return
		}
		garageChan <- garage
	}()

	go func() {
		motos, err := gs.garageRepo.ListMotorcycles(ctx, garageID)
		if err != nil {
			errChan <- err
			return
		}
		motosChan <- motos
	}()

	dashboard := &models.GarageDashboard{}
	for i := 0; i < 2; i++ {
		select {
		case garage := <-garageChan:
			dashboard.Garage = garage
		case motos := <-motosChan:
			dashboard.Motorcycles = motos
		case err := <-errChan:
			return nil, err
		case <-time.After(15 * time.Second):
			return nil, apperr.Internal(context.DeadlineExceeded)
		}
	}

	if !identity.IsOwner(dashboard.Garage.OwnerID) {
		return nil, apperr.Forbidden("not your garage")
	}
	return dashboard, nil
}

func (gs *GarageService) AddMotorcycle(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID, input *models.CreateMotorcycleInput) (*models.Motorcycle, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fields["id"] = uuid.New().String()
	fields["garageId"] = garageID.String()
	fields["createdAt"] = now
	fields["updatedAt"] = now

	return gs.garageRepo.CreateMotorcycle(ctx, models.MotorcycleFields.ToRow(fields))
}

func (gs *GarageService) ListMotorcycles(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID) ([]models.Motorcycle, error) {
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}
	return gs.garageRepo.ListMotorcycles(ctx, garageID)
}

func (gs *GarageService) GetMotorcycle(ctx context.Context, identity *helpers.AuthIdentity, id uuid.UUID) (*models.Motorcycle, error) {
	moto, err := gs.garageRepo.GetMotorcycleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := gs.ownedGarage(ctx, identity, moto.GarageID); err != nil {
		return nil, err
	}
	return moto, nil
}

func (gs *GarageService) UpdateMotorcycle(ctx context.Context, identity *helpers.AuthIdentity, id uuid.UUID, input *models.UpdateMotorcycleInput) (*models.Motorcycle, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	if _, err := gs.GetMotorcycle(ctx, identity, id); err != nil {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(fields) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}
	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	return gs.garageRepo.UpdateMotorcycle(ctx, id, models.MotorcycleFields.ToRow(fields))
}

// DeleteMotorcycle soft-deletes: the row stays, stamped with deleted_at,
// and disappears from every read.
func (gs *GarageService) DeleteMotorcycle(ctx context.Context, identity *helpers.AuthIdentity, id uuid.UUID) error {
	if _, err := gs.GetMotorcycle(ctx, identity, id); err != nil {
		return err
	}
	return gs.garageRepo.SoftDeleteMotorcycle(ctx, id)
}

func (gs *GarageService) AddMaintenanceLog(ctx context.Context, identity *helpers.AuthIdentity, motorcycleID uuid.UUID, input *models.CreateMaintenanceInput) (*models.MaintenanceLog, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	if _, err := gs.GetMotorcycle(ctx, identity, motorcycleID); err != nil {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	fields["id"] = uuid.New().String()
	fields["motorcycleId"] = motorcycleID.String()
	fields["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	return gs.garageRepo.CreateMaintenanceLog(ctx, models.MaintenanceFields.ToRow(fields))
}

func (gs *GarageService) ListMaintenanceLogs(ctx context.Context, identity *helpers.AuthIdentity, motorcycleID uuid.UUID) ([]models.MaintenanceLog, error) {
	if _, err := gs.GetMotorcycle(ctx, identity, motorcycleID); err != nil {
		return nil, err
	}
	return gs.garageRepo.ListMaintenanceLogs(ctx, motorcycleID)
}

func (gs *GarageService) AddTask(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID, input *models.CreateGarageTaskInput) (*models.GarageTask, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}

	row := models.GarageTaskFields.ToRow(map[string]interface{}{
		"id":        uuid.New().String(),
		"garageId":  garageID.String(),
		"label":     input.Label,
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	})
	return gs.garageRepo.CreateGarageTask(ctx, row)
}

func (gs *GarageService) ListTasks(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID) ([]models.GarageTask, error) {
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}
	return gs.garageRepo.ListGarageTasks(ctx, garageID)
}

func (gs *GarageService) DeleteTask(ctx context.Context, identity *helpers.AuthIdentity, garageID, taskID uuid.UUID) error {
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return err
	}
	return gs.garageRepo.DeleteGarageTask(ctx, taskID)
}

func (gs *GarageService) AddDocument(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID, input *models.CreateGarageDocumentInput) (*models.GarageDocument, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	fields["id"] = uuid.New().String()
	fields["garageId"] = garageID.String()
	fields["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	return gs.garageRepo.CreateGarageDocument(ctx, models.GarageDocumentFields.ToRow(fields))
}

func (gs *GarageService) ListDocuments(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID) ([]models.GarageDocument, error) {
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return nil, err
	}
	return gs.garageRepo.ListGarageDocuments(ctx, garageID)
}

func (gs *GarageService) DeleteDocument(ctx context.Context, identity *helpers.AuthIdentity, garageID, documentID uuid.UUID) error {
	if _, err := gs.ownedGarage(ctx, identity, garageID); err != nil {
		return err
	}
	return gs.garageRepo.DeleteGarageDocument(ctx, documentID)
}

func (gs *GarageService) ownedGarage(ctx context.Context, identity *helpers.AuthIdentity, garageID uuid.UUID) (*models.Garage, error) {
	garage, err := gs.garageRepo.GetGarageByID(ctx, garageID)
	if err != nil {
		return nil, err
	}
	if !identity.IsOwner(garage.OwnerID) {
		return nil, apperr.Forbidden("not your garage")
	}
	return garage, nil
}
