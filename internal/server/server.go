// Package server exposes number-word conversion over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/w2n-go/word2num/htmltext"
	"github.com/w2n-go/word2num/internal/config"
	"github.com/w2n-go/word2num/numwords"
)

// Server wraps an echo instance configured with the conversion routes.
type Server struct {
	Echo *echo.Echo
	cfg  config.Config
}

// NewServer builds a server from cfg. It does not start listening.
func NewServer(cfg config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.ContextTimeout(cfg.Server.Timeout()))

	s := &Server{Echo: e, cfg: cfg}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.POST("/convert", s.handleConvert)
	api.POST("/parse", s.handleParse)
	api.POST("/html", s.handleHTML)
}

// Start listens on the configured port and blocks until the server stops.
func (s *Server) Start() error {
	return s.Echo.Start(":" + s.cfg.Server.Port)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

type textRequest struct {
	Text *string `json:"text"`
}

type htmlRequest struct {
	HTML     *string `json:"html"`
	Sanitize *bool   `json:"sanitize"`
}

type convertResponse struct {
	Text    string           `json:"text"`
	Matches []numwords.Match `json:"matches"`
}

type parseResponse struct {
	Value string `json:"value"`
}

type htmlResponse struct {
	HTML string `json:"html"`
}

type runInfo struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type errorResponse struct {
	Error string   `json:"error"`
	Run   *runInfo `json:"run,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleConvert(c echo.Context) error {
	text, ok := bindText(c)
	if !ok {
		return badRequest(c, "text")
	}

	matches, err := numwords.Extract(text)
	if err != nil {
		return validationError(c, err)
	}
	out := numwords.Replace(text, matches)
	if matches == nil {
		matches = []numwords.Match{}
	}
	return c.JSON(http.StatusOK, convertResponse{Text: out, Matches: matches})
}

func (s *Server) handleParse(c echo.Context) error {
	text, ok := bindText(c)
	if !ok {
		return badRequest(c, "text")
	}

	v, err := numwords.ParseValue(text)
	if err != nil {
		return validationError(c, err)
	}
	return c.JSON(http.StatusOK, parseResponse{Value: numwords.Format(v)})
}

func (s *Server) handleHTML(c echo.Context) error {
	var req htmlRequest
	if err := c.Bind(&req); err != nil || req.HTML == nil {
		return badRequest(c, "html")
	}

	opts := htmltext.Options{Sanitize: s.cfg.HTML.Sanitize}
	if req.Sanitize != nil {
		opts.Sanitize = *req.Sanitize
	}
	out, err := htmltext.Convert(*req.HTML, opts)
	if err != nil {
		return validationError(c, err)
	}
	return c.JSON(http.StatusOK, htmlResponse{HTML: out})
}

// bindText decodes {"text": "..."}. It fails when the body is malformed or
// text is missing or not a string.
func bindText(c echo.Context) (string, bool) {
	var req textRequest
	if err := c.Bind(&req); err != nil || req.Text == nil {
		return "", false
	}
	return *req.Text, true
}

func badRequest(c echo.Context, field string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Error: "Invalid request: " + field + " must be a string",
	})
}

// validationError reports a conversion failure as 422, with the failing run
// when there is one.
func validationError(c echo.Context, err error) error {
	resp := errorResponse{Error: err.Error()}
	var re *numwords.RunError
	if errors.As(err, &re) {
		resp.Run = &runInfo{Text: re.Text, Start: re.Start, End: re.End}
	}
	return c.JSON(http.StatusUnprocessableEntity, resp)
}
