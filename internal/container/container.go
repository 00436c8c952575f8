package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/motomeet/mm/internal/config"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
	"github.com/motomeet/mm/internal/services"
	"github.com/supabase-community/supabase-go"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	SupabaseClient *supabase.Client
	TokenVerifier  *helpers.TokenVerifier

	// Profiles backs the auth middleware's role lookup.
	Profiles models.ProfileRepo

	AuthService    *services.AuthService
	ProfileService *services.ProfileService
	RideService    *services.RideService
	BookingService *services.BookingService
	GarageService  *services.GarageService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	supabaseClient *supabase.Client,
	cld *cloudinary.Cloudinary,
) *Container {
	repo := models.NewSupabaseRepo(supabaseClient)

	return &Container{
		Logger:         logger,
		SupabaseClient: supabaseClient,
		TokenVerifier:  helpers.NewTokenVerifier(cfg.SupabaseURL, cfg.JWTSecret),
		Profiles:       repo,
		AuthService:    services.NewAuthService(repo, repo),
		ProfileService: services.NewProfileService(repo, cld),
		RideService:    services.NewRideService(repo),
		BookingService: services.NewBookingService(repo, repo),
		GarageService:  services.NewGarageService(repo),
	}
}
