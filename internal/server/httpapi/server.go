// Package httpapi exposes the board over HTTP: user registration and
// login, question and answer endpoints, and a health probe.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/goboard/internal/logging"
	"github.com/dmitrijs2005/goboard/internal/server/config"
	"github.com/dmitrijs2005/goboard/internal/server/services"
	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	address        string
	logger         logging.Logger
	db             *sql.DB
	users          *services.UserService
	questions      *services.QuestionService
	answers        *services.AnswerService
	allowedOrigins []string
	loginLimiter   *ipRateLimiter
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, db *sql.DB, us *services.UserService, qs *services.QuestionService, as *services.AnswerService) (*HTTPServer, error) {
	return &HTTPServer{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		db:             db,
		users:          us,
		questions:      qs,
		answers:        as,
		allowedOrigins: cfg.AllowedOrigins,
		loginLimiter:   newIPRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst),
	}, nil
}

func (s *HTTPServer) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestID())
	r.Use(s.requestLogger())
	r.Use(s.cors())

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		user := api.Group("/user")
		user.POST("/create", s.createUser)
		user.POST("/login", s.rateLimitByIP(s.loginLimiter), s.login)

		question := api.Group("/question")
		question.GET("/list", s.listQuestions)
		question.GET("/detail/:id", s.questionDetail)
		question.POST("/create", s.authRequired(), s.createQuestion)

		answer := api.Group("/answer")
		answer.POST("/create", s.authRequired(), s.createAnswer)
	}

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
