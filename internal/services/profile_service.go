package services

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

type ProfileService struct {
	profileRepo models.ProfileRepo
	cld         *cloudinary.Cloudinary
}

func NewProfileService(profileRepo models.ProfileRepo, cld *cloudinary.Cloudinary) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		cld:         cld,
	}
}

// CreateProfile creates the caller's profile. The profile id always
// equals the authenticated identity's id; a second create for the same
// identity is a conflict.
func (ps *ProfileService) CreateProfile(ctx context.Context, identityID uuid.UUID, phone string, input *models.CreateProfileInput) (*models.Profile, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	if _, err := ps.profileRepo.GetProfile(ctx, identityID); err == nil {
		return nil, apperr.Conflict("profile already exists")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fields["id"] = identityID.String()
	fields["role"] = models.RoleRider
	fields["createdAt"] = now
	fields["updatedAt"] = now
	if phone != "" {
		fields["phoneNumber"] = phone
	}

	return ps.profileRepo.CreateProfile(ctx, models.ProfileFields.ToRow(fields))
}

func (ps *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return ps.profileRepo.GetProfile(ctx, id)
}

// HandleAvailable reports whether the handle is free to claim.
func (ps *ProfileService) HandleAvailable(ctx context.Context, handle string) (bool, error) {
	if err := models.Validate.Var(handle, "required,handle"); err != nil {
		return false, models.AsValidationError(err)
	}

	_, err := ps.profileRepo.GetProfileByHandle(ctx, handle)
	if err == nil {
		return false, nil
	}
	if apperr.Is(err, apperr.KindNotFound) {
		return true, nil
	}
	return false, err
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, input *models.UpdateProfileInput) (*models.Profile, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	fields, err := models.StructToFields(input)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(fields) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}
	fields["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	return ps.profileRepo.UpdateProfile(ctx, id, models.ProfileFields.ToRow(fields))
}

// UpdateAvatar uploads the image to Cloudinary and stores the resulting
// secure URL on the profile.
func (ps *ProfileService) UpdateAvatar(ctx context.Context, id uuid.UUID, imageData string) (*models.Profile, error) {
	url, err := helpers.UploadAvatar(ctx, ps.cld, imageData)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	row := models.ProfileFields.ToRow(map[string]interface{}{
		"avatarUrl": url,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	})
	return ps.profileRepo.UpdateProfile(ctx, id, row)
}
