package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"restroom-finder/internal/config"
	"restroom-finder/internal/resolver"
	"restroom-finder/internal/session"
	"restroom-finder/internal/types"
)

// Message types the webhook glue can deliver. Signature verification and
// platform SDK concerns live upstream of this service.
const (
	MessageTypeText     = "text"
	MessageTypeLocation = "location"
)

const (
	greetingReply   = "Hello! Share your location and I'll find the nearest public restrooms 🚻"
	usageReply      = "Send \"hi\" for instructions, share your location to find nearby restrooms, or send \"nearby\" to search again from your last shared location."
	noLocationReply = "I don't have a recent location for you. Share your location and I'll find the nearest restrooms."
)

// IncomingMessage is the platform-agnostic shape of a chat message.
type IncomingMessage struct {
	UserID    string
	Type      string
	Text      string
	Latitude  float64
	Longitude float64
}

// Resolver is the nearest-facility lookup the chat glue delegates to.
type Resolver interface {
	FindNearest(ctx context.Context, q resolver.Query) ([]types.Facility, error)
}

// Service turns incoming chat messages into reply text.
type Service interface {
	Reply(ctx context.Context, msg IncomingMessage) (string, error)
}

type chatService struct {
	resolver Resolver
	sessions *session.Store
	cfg      *config.Config
	logger   *slog.Logger
}

func NewService(res Resolver, sessions *session.Store, cfg *config.Config, logger *slog.Logger) Service {
	return &chatService{
		resolver: res,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger.With("component", "chat-service"),
	}
}

func (s *chatService) Reply(ctx context.Context, msg IncomingMessage) (string, error) {
	switch msg.Type {
	case MessageTypeText:
		text := strings.TrimSpace(msg.Text)
		if strings.EqualFold(text, "hi") {
			return greetingReply, nil
		}
		if strings.EqualFold(text, "nearby") {
			// Re-run the lookup from the last shared location, if any.
			point, ok := s.sessions.LastLocation(msg.UserID)
			if !ok {
				return noLocationReply, nil
			}
			return s.replyWithNearby(ctx, msg.UserID, point)
		}
		return usageReply, nil

	case MessageTypeLocation:
		point := types.NewPoint(msg.Latitude, msg.Longitude)
		s.sessions.SetLocation(msg.UserID, point)
		return s.replyWithNearby(ctx, msg.UserID, point)

	default:
		s.logger.Debug("ignoring unsupported message type", "type", msg.Type, "user_id", msg.UserID)
		return usageReply, nil
	}
}

func (s *chatService) replyWithNearby(ctx context.Context, userID string, point types.Point) (string, error) {
	results, err := s.resolver.FindNearest(ctx, resolver.Query{
		Center:       point,
		RadiusMeters: s.cfg.Resolver.RadiusMeters,
		MinResults:   s.cfg.Resolver.MinResults,
		MaxResults:   s.cfg.Resolver.MaxResults,
	})
	if err != nil {
		s.logger.Error("failed to resolve nearby facilities",
			"user_id", userID,
			"latitude", point.Latitude,
			"longitude", point.Longitude,
			"error", err,
		)
		return "", fmt.Errorf("failed to find nearby restrooms: %w", err)
	}

	return formatReply(s.cfg.Resolver.RadiusMeters, results), nil
}

func formatReply(radiusMeters float64, results []types.Facility) string {
	if len(results) == 0 {
		return fmt.Sprintf("Sorry, no restrooms found within %.0f meters 😢", radiusMeters)
	}

	var b strings.Builder
	b.WriteString("Nearest restrooms:\n")
	for _, f := range results {
		fmt.Fprintf(&b, "%s (about %.0f m)\n", f.Name, f.DistanceMeters)
	}
	return strings.TrimRight(b.String(), "\n")
}
