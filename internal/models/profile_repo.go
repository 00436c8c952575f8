package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
)

type ProfileRepo interface {
	CreateProfile(ctx context.Context, row map[string]interface{}) (*Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetProfileByPhone(ctx context.Context, phone string) (*Profile, error)
	GetProfileByHandle(ctx context.Context, handle string) (*Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Profile, error)
}

func (su *SupabaseRepo) CreateProfile(ctx context.Context, row map[string]interface{}) (*Profile, error) {
	raw, _, err := su.client.From(ProfilesTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	profiles, err := DecodeRows[Profile](raw, ProfileFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(profiles) == 0 {
		return nil, apperr.NotFound("no profile returned after insert")
	}
	return &profiles[0], nil
}

func (su *SupabaseRepo) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid profile id")
	}

	raw, _, err := su.client.From(ProfilesTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	profiles, err := DecodeRows[Profile](raw, ProfileFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(profiles) == 0 {
		return nil, apperr.NotFound("profile not found")
	}
	return &profiles[0], nil
}

func (su *SupabaseRepo) GetProfileByPhone(ctx context.Context, phone string) (*Profile, error) {
	raw, _, err := su.client.From(ProfilesTable).
		Select("*", "", false).
		Eq("phone_number", phone).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	profiles, err := DecodeRows[Profile](raw, ProfileFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(profiles) == 0 {
		return nil, apperr.NotFound("profile not found")
	}
	return &profiles[0], nil
}

func (su *SupabaseRepo) GetProfileByHandle(ctx context.Context, handle string) (*Profile, error) {
	raw, _, err := su.client.From(ProfilesTable).
		Select("*", "", false).
		Eq("handle", handle).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	profiles, err := DecodeRows[Profile](raw, ProfileFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(profiles) == 0 {
		return nil, apperr.NotFound("profile not found")
	}
	return &profiles[0], nil
}

func (su *SupabaseRepo) UpdateProfile(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Profile, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid profile id")
	}
	if len(row) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}

	raw, count, err := su.client.From(ProfilesTable).
		Update(row, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}
	if count == 0 {
		return nil, apperr.NotFound("profile not found")
	}

	profiles, err := DecodeRows[Profile](raw, ProfileFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(profiles) == 0 {
		return nil, apperr.NotFound("no profile returned after update")
	}
	return &profiles[0], nil
}
