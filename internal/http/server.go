// Package http exposes the chat endpoint and the read-only per-topic
// knowledge lookups over an echo server.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"arogyam-chatbot/internal/lang"
	"arogyam-chatbot/internal/retrieval"
	"arogyam-chatbot/pkg"
)

// ChatHandler is the single operation the chat endpoint needs from the
// dialogue engine.
type ChatHandler interface {
	Handle(ctx context.Context, userID, message string) string
}

// Server bundles the HTTP handlers with their dependencies.
type Server struct {
	echo      *echo.Echo
	agent     ChatHandler
	retriever retrieval.Retriever
	logger    *zap.Logger
}

// NewServer builds the echo instance and registers all routes. The lookup
// endpoints never create sessions; only /api/chat reaches the dialogue
// engine.
func NewServer(agent ChatHandler, retriever retrieval.Retriever, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	s := &Server{echo: e, agent: agent, retriever: retriever, logger: logger}

	e.GET("/healthz", s.handleHealth)
	e.POST("/api/chat", s.handleChat)
	e.GET("/api/faq", s.lookupHandler(retrieval.TopicFAQ, "No FAQ found. Please consult a doctor."))
	e.GET("/api/symptoms", s.lookupHandler(retrieval.TopicSymptom, "No symptom info found. Please consult a doctor."))
	e.GET("/api/risks", s.lookupHandler(retrieval.TopicRisk, "No risk info found. Please consult a doctor."))
	e.GET("/api/schemes", s.handleSchemes)
	e.GET("/api/consult", s.handleConsult)

	return s
}

// Start blocks serving on addr until Shutdown or failure.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(c echo.Context) error {
	var req pkg.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}

	reply := s.agent.Handle(c.Request().Context(), req.UserID, req.Message)
	return c.JSON(http.StatusOK, pkg.ChatResponse{UserID: req.UserID, Reply: reply})
}

// lookupHandler returns a GET handler serving the best match for one
// topic. Retrieval failures degrade to the not-found payload, matching the
// retrieval contract.
func (s *Server) lookupHandler(topic retrieval.Topic, notFound string) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("query")
		if strings.TrimSpace(query) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
		}
		hits := s.search(c, topic, query, 1)
		if len(hits) == 0 {
			return c.JSON(http.StatusOK, pkg.LookupResponse{Answer: notFound})
		}
		return c.JSON(http.StatusOK, pkg.LookupResponse{
			Answer:     hits[0].Text,
			Similarity: hits[0].Similarity,
		})
	}
}

func (s *Server) handleSchemes(c echo.Context) error {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
	}
	hits := s.search(c, retrieval.TopicScheme, query, 3)
	if len(hits) == 0 {
		return c.JSON(http.StatusOK, pkg.SchemeListResponse{
			Results: []pkg.SchemeMatch{},
			Message: "No schemes found. Please check government portals.",
		})
	}
	resp := pkg.SchemeListResponse{Results: make([]pkg.SchemeMatch, 0, len(hits))}
	for _, h := range hits {
		resp.Results = append(resp.Results, pkg.SchemeMatch{Purpose: h.Text, Similarity: h.Similarity})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleConsult(c echo.Context) error {
	return c.JSON(http.StatusOK, pkg.ConsultResponse{
		DoctorLink: "https://meet.jit.si/doctor-demo-room",
		Note:       "For accurate diagnosis, please consult a doctor.",
	})
}

func (s *Server) search(c echo.Context, topic retrieval.Topic, query string, topK int) []retrieval.Hit {
	hits, err := s.retriever.Search(c.Request().Context(), topic, lang.Normalize(query), topK)
	if err != nil {
		s.logger.Warn("lookup retrieval failed",
			zap.String("topic", string(topic)), zap.Error(err))
		return nil
	}
	return hits
}
