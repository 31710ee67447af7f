// Package server exposes the support app over HTTP: chat, the equipment
// catalog with rendered overlays, FAQs, feedback, and contact details.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/svavnc/concierge/pkg/brand"
	"github.com/svavnc/concierge/pkg/catalog"
	"github.com/svavnc/concierge/pkg/chat"
	"github.com/svavnc/concierge/pkg/faq"
	"github.com/svavnc/concierge/pkg/feedback"
	"github.com/svavnc/concierge/pkg/message"
	"github.com/svavnc/concierge/pkg/overlay"
)

// Server wires the app's packages behind a gin router.
type Server struct {
	catalog  *catalog.Catalog
	sessions *SessionManager
	feedback feedback.Store
	log      zerolog.Logger
}

// New builds the router. All dependencies are required except the logger,
// which defaults to a no-op.
func New(cat *catalog.Catalog, sessions *SessionManager, fb feedback.Store, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	s := &Server{catalog: cat, sessions: sessions, feedback: fb, log: log}

	api := r.Group("/api")
	{
		api.POST("/chat", s.postChat)
		api.POST("/chat/clear", s.postChatClear)
		api.GET("/chat/history", s.getChatHistory)

		api.GET("/equipment", s.listEquipment)
		api.GET("/equipment/:id", s.getEquipment)
		api.GET("/equipment/:id/overlay", s.getEquipmentOverlay)

		api.GET("/faqs", s.listFAQs)
		api.POST("/feedback", s.postFeedback)
		api.GET("/contact", s.getContact)
	}
	return r
}

// requestLogger logs one line per request at debug level.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

type chatRequest struct {
	SessionID string         `json:"sessionId"`
	Message   string         `json:"message"`
	Media     *message.Media `json:"media,omitempty"`
}

type chatResponse struct {
	SessionID string              `json:"sessionId"`
	Reply     message.ChatMessage `json:"reply"`
	Blocks    []message.Block     `json:"blocks"`
}

// postChat runs one chat exchange. Backend failures still return 200: the
// reply is the canned fallback message flagged as an error, exactly what the
// customer should see.
func (s *Server) postChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := s.sessions.Get(req.SessionID)
	reply, err := sess.Send(c.Request.Context(), req.Message, req.Media)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		return
	case errors.Is(err, chat.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "a message is already being processed for this session"})
		return
	case err != nil:
		s.log.Error().Err(err).Str("session", sess.ID()).Msg("chat exchange failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		SessionID: sess.ID(),
		Reply:     reply,
		Blocks:    message.Render(reply.Text, s.catalog),
	})
}

type clearRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

func (s *Server) postChatClear(c *gin.Context) {
	var req clearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.sessions.Get(req.SessionID)
	if err := sess.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID(), "cleared": true})
}

type historyResponse struct {
	SessionID   string                `json:"sessionId"`
	Messages    []message.ChatMessage `json:"messages"`
	Suggestions []string              `json:"suggestions,omitempty"`
}

// getChatHistory returns the session transcript. A missing sessionId starts
// a fresh session, so the first call a client makes also hands it its id.
func (s *Server) getChatHistory(c *gin.Context) {
	sess := s.sessions.Get(c.Query("sessionId"))

	msgs, err := sess.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	chips, err := sess.Suggestions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, historyResponse{
		SessionID:   sess.ID(),
		Messages:    msgs,
		Suggestions: chips,
	})
}

func (s *Server) listEquipment(c *gin.Context) {
	records := s.catalog.All()
	if cat := c.Query("category"); cat != "" {
		records = s.catalog.ByCategory(catalog.Category(cat))
	} else if brandName := c.Query("brand"); brandName != "" {
		records = s.catalog.ByBrand(brandName)
	}
	c.JSON(http.StatusOK, gin.H{"equipment": records})
}

func (s *Server) getEquipment(c *gin.Context) {
	record, ok := s.catalog.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown equipment id"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// getEquipmentOverlay renders the annotated figure for one device. The
// selector defaults to all when omitted.
func (s *Server) getEquipmentOverlay(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.catalog.Lookup(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown equipment id"})
		return
	}
	sel, ok := catalog.ParseSelector(c.Query("selector"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown selector"})
		return
	}

	record, _ := s.catalog.Lookup(id)
	comp := overlay.Render(record.ImageURL, s.catalog.Annotations(id, sel), record.Caption)
	c.JSON(http.StatusOK, comp)
}

func (s *Server) listFAQs(c *gin.Context) {
	items := faq.Items()
	if cat := c.Query("category"); cat != "" {
		items = faq.ByCategory(cat)
	}
	c.JSON(http.StatusOK, gin.H{
		"faqs":       items,
		"categories": faq.Categories(),
	})
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *Server) postFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := feedback.New(req.Rating, req.Comment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.feedback.Save(c.Request.Context(), entry); err != nil {
		s.log.Error().Err(err).Msg("failed to save feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) getContact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company":   brand.CompanyName,
		"phone":     brand.SupportPhone,
		"email":     brand.SupportEmail,
		"website":   brand.Website,
		"reviewUrl": brand.GoogleReviewURL,
		"tagline":   brand.Tagline,
	})
}
