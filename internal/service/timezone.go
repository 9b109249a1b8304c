package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lioapp/lio-api/internal/platform/logger"
)

// TimezoneResolver decides which location defines a user's calendar day.
// The order is: the zone the client sent with the request, the zone stored
// in the profile, then the server default.
type TimezoneResolver struct {
	profiles ProfileStore
	fallback *time.Location
	logger   *slog.Logger
}

// NewTimezoneResolver creates a TimezoneResolver. A nil fallback means time.Local.
func NewTimezoneResolver(profiles ProfileStore, fallback *time.Location, logger *slog.Logger) *TimezoneResolver {
	if fallback == nil {
		fallback = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TimezoneResolver{
		profiles: profiles,
		fallback: fallback,
		logger:   logger.With(slog.String("component", "timezone_resolver")),
	}
}

// Resolve returns the location for userID. requested is an IANA zone name
// sent by the client and may be empty. Unknown names are skipped.
func (r *TimezoneResolver) Resolve(ctx context.Context, userID, requested string) *time.Location {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if loc, ok := loadZone(requested); ok {
		return loc
	} else if requested != "" {
		log.DebugContext(ctx, "ignoring unknown requested timezone", slog.String("timezone", requested))
	}

	if r.profiles != nil {
		profile := r.profiles.Load(ctx, userID)
		if loc, ok := loadZone(profile.Value.Timezone); ok {
			return loc
		}
	}
	return r.fallback
}

// Fallback returns the server default location.
func (r *TimezoneResolver) Fallback() *time.Location {
	return r.fallback
}

func loadZone(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}
