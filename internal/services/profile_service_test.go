package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/models"
)

func TestCreateProfileSetsDefaults(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles, nil)
	identityID := uuid.New()

	profile, err := svc.CreateProfile(context.Background(), identityID, testPhone, &models.CreateProfileInput{
		DisplayName: "Ada",
	})
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if profile.ID != identityID {
		t.Errorf("profile id = %s, want the identity id %s", profile.ID, identityID)
	}
	if profile.Role != models.RoleRider {
		t.Errorf("role = %s, want rider", profile.Role)
	}
	if profile.DisplayName != "Ada" {
		t.Errorf("displayName = %q, want Ada", profile.DisplayName)
	}
	if profile.PhoneNumber != testPhone {
		t.Errorf("phoneNumber = %q, want %s", profile.PhoneNumber, testPhone)
	}
}

func TestCreateProfileDuplicateConflict(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles, nil)
	identityID := uuid.New()

	input := &models.CreateProfileInput{DisplayName: "Ada"}
	if _, err := svc.CreateProfile(context.Background(), identityID, testPhone, input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateProfile(context.Background(), identityID, testPhone, input)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("kind = %s, want %s", apperr.KindOf(err), apperr.KindConflict)
	}
}

func TestCreateProfileRejectsBadHandle(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil)
	badHandle := "no spaces allowed"

	_, err := svc.CreateProfile(context.Background(), uuid.New(), testPhone, &models.CreateProfileInput{
		DisplayName: "Ada",
		Handle:      &badHandle,
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("kind = %s, want %s", apperr.KindOf(err), apperr.KindValidation)
	}
}

func TestHandleAvailable(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.seed(t, map[string]interface{}{
		"id":           uuid.New().String(),
		"handle":       "ada_rides",
		"display_name": "Ada",
		"role":         "rider",
		"created_at":   "2026-05-01T09:00:00Z",
		"updated_at":   "2026-05-01T09:00:00Z",
	})
	svc := NewProfileService(profiles, nil)

	available, err := svc.HandleAvailable(context.Background(), "free_handle")
	if err != nil {
		t.Fatalf("HandleAvailable failed: %v", err)
	}
	if !available {
		t.Error("unclaimed handle should be available")
	}

	available, err = svc.HandleAvailable(context.Background(), "ada_rides")
	if err != nil {
		t.Fatalf("HandleAvailable failed: %v", err)
	}
	if available {
		t.Error("claimed handle should not be available")
	}

	if _, err := svc.HandleAvailable(context.Background(), "x"); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("kind = %s, want %s", apperr.KindOf(err), apperr.KindValidation)
	}
}

func TestUpdateProfileEmptyPatch(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &models.UpdateProfileInput{})
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("kind = %s, want %s", apperr.KindOf(err), apperr.KindBadRequest)
	}
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	profiles := newFakeProfileRepo()
	id := profiles.seed(t, map[string]interface{}{
		"id":           uuid.New().String(),
		"display_name": "Ada",
		"bio":          "original bio",
		"role":         "rider",
		"created_at":   "2026-05-01T09:00:00Z",
		"updated_at":   "2026-05-01T09:00:00Z",
	})
	svc := NewProfileService(profiles, nil)

	newBio := "twisty roads only"
	profile, err := svc.UpdateProfile(context.Background(), id, &models.UpdateProfileInput{Bio: &newBio})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if profile.Bio != newBio {
		t.Errorf("bio = %q, want %q", profile.Bio, newBio)
	}
	if profile.DisplayName != "Ada" {
		t.Errorf("untouched field changed: displayName = %q", profile.DisplayName)
	}
}
