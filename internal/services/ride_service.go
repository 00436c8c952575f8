package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

type RideService struct {
	rideRepo models.RideRepo
}

func NewRideService(rideRepo models.RideRepo) *RideService {
	return &RideService{rideRepo: rideRepo}
}

func (rs *RideService) CreateRide(ctx context.Context, creatorID uuid.UUID, input *models.CreateRideInput) (*models.Ride, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fields["id"] = uuid.New().String()
	fields["creatorId"] = creatorID.String()
	fields["status"] = models.RideScheduled
	fields["createdAt"] = now
	fields["updatedAt"] = now

	return rs.rideRepo.CreateRide(ctx, models.RideRowFromFields(fields))
}

func (rs *RideService) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	return rs.rideRepo.GetRideByID(ctx, id)
}

func (rs *RideService) ListRides(ctx context.Context, filter models.RideListFilter) ([]models.Ride, *models.Meta, error) {
	page := models.NormalizePagination(filter.Page, filter.Limit)
	rides, total, err := rs.rideRepo.ListRides(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return rides, models.NewMeta(page.Page, page.Limit, total), nil
}

// UpdateRide applies a partial patch. Only the creator may update a
// ride; there is no status transition table, the creator may set any
// status directly.
func (rs *RideService) UpdateRide(ctx context.Context, identity *helpers.AuthIdentity, id uuid.UUID, input *models.UpdateRideInput) (*models.Ride, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	ride, err := rs.rideRepo.GetRideByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsOwner(ride.CreatorID) {
		return nil, apperr.Forbidden("only the ride creator can update this ride")
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(fields) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}
	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	return rs.rideRepo.UpdateRide(ctx, id, models.RideRowFromFields(fields))
}

// CancelRide moves a ride to cancelled. Rides that are already finished
// or cancelled reject the request.
func (rs *RideService) CancelRide(ctx context.Context, identity *helpers.AuthIdentity, id uuid.UUID) (*models.Ride, error) {
	ride, err := rs.rideRepo.GetRideByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsOwner(ride.CreatorID) {
		return nil, apperr.Forbidden("only the ride creator can cancel this ride")
	}
	if ride.Status == models.RideCompleted || ride.Status == models.RideCancelled {
		return nil, apperr.BadRequest(fmt.Sprintf("cannot cancel a %s ride", ride.Status))
	}

	row := models.RideFields.ToRow(map[string]interface{}{
		"status":    models.RideCancelled,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	})
	return rs.rideRepo.UpdateRide(ctx, id, row)
}

// DeleteRide removes a ride. Allowed for the creator and for moderators.
func (rs *RideService) DeleteRide(ctx context.Context, identity *helpers.AuthIdentity, id uuid.UUID) error {
	ride, err := rs.rideRepo.GetRideByID(ctx, id)
	if err != nil {
		return err
	}
	if !identity.IsOwner(ride.CreatorID) && !identity.CanModerate() {
		return apperr.Forbidden("only the ride creator or a moderator can delete this ride")
	}
	return rs.rideRepo.DeleteRide(ctx, id)
}
