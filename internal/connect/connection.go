package connect

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/motomeet/mm/internal/config"
	"github.com/supabase-community/supabase-go"
)

// InitSupabase builds the long-lived Supabase client. One instance per
// process; it is stateless and shared by every request.
func InitSupabase(cfg *config.Config) (*supabase.Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %v", err)
	}
	return client, nil
}

// InitCloudinary builds the image upload client for avatars.
func InitCloudinary(cfg *config.Config) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}
	return cld, nil
}
