package v1handler

import (
	"context"
	"net/http"
	"strings"

	"a11yscanner/internal/config"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is the type of the context keys set by the security handler.
type CtxKey string

const (
	// UserIDKey holds the domain.UserID of the authenticated caller.
	UserIDKey CtxKey = "userID"
	// CapabilitiesKey holds the []domain.Capability granted to the caller.
	CapabilitiesKey CtxKey = "capabilities"
)

// Claims are the JWT claims accepted by the API.
type Claims struct {
	jwt.RegisteredClaims

	Capabilities []domain.Capability `json:"capabilities"`
}

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates bearer tokens and enforces capabilities.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

// NewSecHandler parses the public key of opts.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse RSA public key")
	}

	return &SecHandler{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})),
		keyFn: func(*jwt.Token) (any, error) {
			return key, nil
		},
	}, nil
}

// HandleBearerAuth verifies token and stores the caller's id and
// capabilities on the returned context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(uid))
	ctx = context.WithValue(ctx, CapabilitiesKey, claims.Capabilities)
	ctx = logger.WithFields(ctx, zap.String("userID", uid.String()))

	return ctx, nil
}

// Authorize checks that the caller on ctx holds a capability allowing required.
func Authorize(ctx context.Context, required domain.Capability) error {
	caps, _ := ctx.Value(CapabilitiesKey).([]domain.Capability)
	for _, c := range caps {
		if c.Allows(required) {
			return nil
		}
	}

	return serrors.With(serrors.ErrForbidden, "missing capability %s", required)
}

// GetUserIDFromContext returns the authenticated caller, or the zero id.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	uid, _ := ctx.Value(UserIDKey).(domain.UserID)

	return uid
}

// Require wraps next so that it only runs for callers presenting a valid
// bearer token that grants the required capability.
func (s *SecHandler) Require(required domain.Capability, h *Handler, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			h.writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(ctx, strings.TrimSpace(token))
		if err != nil {
			h.writeError(ctx, w, err)

			return
		}
		if err := Authorize(ctx, required); err != nil {
			h.writeError(ctx, w, err)

			return
		}

		next(w, r.WithContext(ctx))
	}
}
