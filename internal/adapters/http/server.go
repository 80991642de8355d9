package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "policymind/internal/api"
	"policymind/internal/domain"
	"policymind/internal/logger"
	"policymind/internal/services/notifications"
	"policymind/internal/services/regulations"
)

type Briefings interface {
	List(ctx context.Context, companyID string, archived bool) ([]domain.Briefing, error)
	Update(ctx context.Context, companyID, id string, u domain.BriefingUpdate) (domain.Briefing, error)
	Delete(ctx context.Context, companyID, id string) error
}

type Regulations interface {
	Submit(ctx context.Context, companyID string, u regulations.Upload) (domain.Briefing, error)
}

type Notifier interface {
	SendPreview(ctx context.Context, caller domain.Identity, companyID, briefingID string) (notifications.Receipt, error)
}

type Profiles interface {
	Save(ctx context.Context, caller domain.Identity, p domain.CompanyProfile) (domain.CompanyProfile, error)
	Get(ctx context.Context, userID string) (domain.CompanyProfile, bool, error)
	Draft(ctx context.Context, userID string) (domain.CompanyProfile, error)
}

type Companies interface {
	CompanyID(ctx context.Context, userID string) (string, error)
}

// Services groups the application services the handlers call.
type Services struct {
	Briefings   Briefings
	Regulations Regulations
	Notifier    Notifier
	Profiles    Profiles
	Companies   Companies
}

// Server implements the generated StrictServerInterface.
type Server struct {
	Services
	secret  []byte
	timeout time.Duration
	log     logrus.FieldLogger
}

var _ api.StrictServerInterface = (*Server)(nil)

// New builds the HTTP server. secret verifies HS256 bearer tokens; timeout
// bounds every request when positive.
func New(svc Services, secret []byte, timeout time.Duration) *Server {
	return &Server{Services: svc, secret: secret, timeout: timeout, log: logger.Log}
}

// WithLogger replaces the request and error logger.
func (s *Server) WithLogger(l logrus.FieldLogger) *Server {
	s.log = l
	return s
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(limitBody)
	if s.timeout > 0 {
		r.Use(middleware.Timeout(s.timeout))
	}

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{Authenticate(s.secret, s.writeError)},
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request")
		})
	}
}

// limitBody caps request bodies before the generated handlers decode them.
// Multipart uploads get the PDF limit plus room for boundaries and the title.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(maxJSONBody)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			limit = regulations.MaxUploadBytes + multipartSlack
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

// companyFor resolves the caller's company from their earliest membership.
func (s *Server) companyFor(ctx context.Context) (domain.Identity, string, error) {
	id, ok := IdentityFrom(ctx)
	if !ok {
		return domain.Identity{}, "", domain.ErrUnauthenticated
	}
	companyID, err := s.Companies.CompanyID(ctx, id.Subject)
	if err != nil {
		return id, "", err
	}
	return id, companyID, nil
}
