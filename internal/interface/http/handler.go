package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerozero/zerozero/internal/domain/analytics"
	"github.com/zerozero/zerozero/internal/domain/answers"
	"github.com/zerozero/zerozero/internal/domain/auth"
	"github.com/zerozero/zerozero/internal/domain/impact"
	"github.com/zerozero/zerozero/internal/domain/zone"
	apperrors "github.com/zerozero/zerozero/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	zoneSvc      zone.Service
	answersSvc   answers.Service
	analyticsSvc analytics.Service
	authSvc      auth.Service
	scraped      zone.ScrapedStore
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(zoneSvc zone.Service, answersSvc answers.Service, analyticsSvc analytics.Service, authSvc auth.Service, scraped zone.ScrapedStore, logger *slog.Logger) *Handler {
	return &Handler{
		zoneSvc:      zoneSvc,
		answersSvc:   answersSvc,
		analyticsSvc: analyticsSvc,
		authSvc:      authSvc,
		scraped:      scraped,
		logger:       logger.With("component", "http.handler"),
	}
}

// Zone returns the hero, journey, and tip cards for the current user.
// Anonymous callers get the not-started view.
func (h *Handler) Zone(c *gin.Context) {
	input, ok := h.inputForRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.zoneSvc.Build(c.Request.Context(), input))
}

// ZonePreview builds the zone view from answers supplied in the request
// body without touching stored state.
func (h *Handler) ZonePreview(c *gin.Context) {
	var input impact.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.zoneSvc.Build(c.Request.Context(), input))
}

// Impact returns the raw per-journey savings for the current user.
func (h *Handler) Impact(c *gin.Context) {
	input, ok := h.inputForRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, impact.BuildUserImpact(input))
}

// JourneyImpact computes one journey's savings for the questionnaire's live
// preview. In-flight answers arrive as query parameters; authed callers
// without any fall back to their stored answers.
func (h *Handler) JourneyImpact(c *gin.Context) {
	journey, ok := impact.ParseJourney(c.Param("journey"))
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "unknown journey", nil))
		return
	}
	journeyAnswers := queryAnswers(c)
	if len(journeyAnswers) == 0 {
		if claims, authed := getClaims(c); authed {
			resp, err := h.answersSvc.JourneyAnswers(c.Request.Context(), claims.UserID, journey)
			if err != nil {
				abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "answers_failed", errMessage(err), err))
				return
			}
			journeyAnswers = resp.Answers
		}
	}
	c.JSON(http.StatusOK, impact.JourneyImpact(journey, journeyAnswers))
}

// queryAnswers folds ?question=value pairs into an answer map.
func queryAnswers(c *gin.Context) impact.Answers {
	values := c.Request.URL.Query()
	if len(values) == 0 {
		return nil
	}
	collected := make(impact.Answers, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			collected[key] = vals[0]
		}
	}
	return collected
}

// ImpactPreview computes savings from answers supplied in the request body.
func (h *Handler) ImpactPreview(c *gin.Context) {
	var input impact.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, impact.BuildUserImpact(input))
}

func (h *Handler) inputForRequest(c *gin.Context) (impact.Input, bool) {
	claims, authed := getClaims(c)
	if !authed {
		return impact.Input{}, true
	}
	user, err := h.authSvc.User(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "profile_failed", errMessage(err), err))
		return impact.Input{}, false
	}
	answerSet, err := h.answersSvc.AllAnswers(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "answers_failed", errMessage(err), err))
		return impact.Input{}, false
	}
	profile := user.ImpactProfile()
	return impact.Input{Profile: &profile, Answers: answerSet}, true
}

// SaveAnswers upserts a batch of answers for one journey.
func (h *Handler) SaveAnswers(c *gin.Context) {
	claims, _ := getClaims(c)
	var req answers.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.answersSvc.Save(c.Request.Context(), claims.UserID, impact.JourneyID(c.Param("journey")), req)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "answers_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// JourneyAnswers returns the stored answers for one journey.
func (h *Handler) JourneyAnswers(c *gin.Context) {
	claims, _ := getClaims(c)
	resp, err := h.answersSvc.JourneyAnswers(c.Request.Context(), claims.UserID, impact.JourneyID(c.Param("journey")))
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "answers_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AllAnswers returns every stored answer grouped by journey.
func (h *Handler) AllAnswers(c *gin.Context) {
	claims, _ := getClaims(c)
	answerSet, err := h.answersSvc.AllAnswers(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "answers_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"journeyAnswers": answerSet})
}

// ResetJourney clears a journey's answers.
func (h *Handler) ResetJourney(c *gin.Context) {
	claims, _ := getClaims(c)
	if err := h.answersSvc.Reset(c.Request.Context(), claims.UserID, impact.JourneyID(c.Param("journey"))); err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "answers_failed", errMessage(err), err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Like marks a card as liked.
func (h *Handler) Like(c *gin.Context) {
	claims, _ := getClaims(c)
	if err := h.answersSvc.Like(c.Request.Context(), claims.UserID, c.Param("cardId")); err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "likes_failed", errMessage(err), err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Unlike removes a card like.
func (h *Handler) Unlike(c *gin.Context) {
	claims, _ := getClaims(c)
	if err := h.answersSvc.Unlike(c.Request.Context(), claims.UserID, c.Param("cardId")); err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "likes_failed", errMessage(err), err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Likes lists the liked card ids.
func (h *Handler) Likes(c *gin.Context) {
	claims, _ := getClaims(c)
	likes, err := h.answersSvc.Likes(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "likes_failed", errMessage(err), err))
		return
	}
	if likes == nil {
		likes = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// CaptureEvent ingests one analytics event. Works for anonymous callers.
func (h *Handler) CaptureEvent(c *gin.Context) {
	var req analytics.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	event, err := h.analyticsSvc.Capture(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "event_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": event.ID})
}

// TrendingEvents returns the most frequent event names.
func (h *Handler) TrendingEvents(c *gin.Context) {
	events, err := h.analyticsSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "event_failed", errMessage(err), err))
		return
	}
	if events == nil {
		events = []analytics.TrendingEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// IngestScraped stores a scraped data point for one journey. Guarded by a
// shared token at the router level.
func (h *Handler) IngestScraped(c *gin.Context) {
	journey, ok := impact.ParseJourney(c.Param("journey"))
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "unknown journey", nil))
		return
	}
	var point impact.ScrapedDataPoint
	if err := c.ShouldBindJSON(&point); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if err := h.scraped.Put(c.Request.Context(), journey, point); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "scraped_failed", errMessage(err), err))
		return
	}
	h.logger.Info("scraped data ingested", "journey", journey)
	c.Status(http.StatusNoContent)
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	view, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "register_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Login exchanges credentials for tokens.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "login_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new token pair.
func (h *Handler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "refresh_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleLogin starts the Google sign-in flow.
func (h *Handler) GoogleLogin(c *gin.Context) {
	state, codeVerifier, codeChallenge, err := auth.NewOAuthState()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "auth_error", "failed to create oauth state", err))
		return
	}
	url, err := h.authSvc.GoogleAuthURL(c.Request.Context(), state, codeChallenge)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "auth_error", errMessage(err), err))
		return
	}
	setOAuthStateCookie(c, state, codeVerifier)
	c.Redirect(http.StatusFound, url)
}

// GoogleCallback finishes the Google sign-in flow.
func (h *Handler) GoogleCallback(c *gin.Context) {
	cookie, ok := readOAuthStateCookie(c)
	clearOAuthStateCookie(c)
	if !ok || c.Query("state") != cookie.State {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "oauth state mismatch", nil))
		return
	}
	resp, err := h.authSvc.GoogleCallback(c.Request.Context(), c.Query("code"), cookie.CodeVerifier)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "login_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the current account.
func (h *Handler) Profile(c *gin.Context) {
	claims, _ := getClaims(c)
	view, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "profile_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateProfile edits the lifestyle profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims, _ := getClaims(c)
	var req auth.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	view, err := h.authSvc.UpdateProfile(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, NewHTTPError(statusForCode(err, http.StatusInternalServerError), "profile_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Logout revokes provider tokens where possible.
func (h *Handler) Logout(c *gin.Context) {
	claims, _ := getClaims(c)
	if err := h.authSvc.Logout(c.Request.Context(), claims.UserID); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "logout_failed", errMessage(err), err))
		return
	}
	c.Status(http.StatusNoContent)
}

func statusForCode(err error, fallback int) int {
	switch {
	case apperrors.IsCode(err, "invalid_input"), apperrors.IsCode(err, "invalid_request"):
		return http.StatusBadRequest
	case apperrors.IsCode(err, "invalid_credentials"), apperrors.IsCode(err, "invalid_token"):
		return http.StatusUnauthorized
	case apperrors.IsCode(err, "email_exists"):
		return http.StatusConflict
	case apperrors.IsCode(err, "user_not_found"):
		return http.StatusNotFound
	case apperrors.IsCode(err, "auth_not_configured"):
		return http.StatusServiceUnavailable
	case apperrors.IsCode(err, "oauth_exchange_failed"):
		return http.StatusBadGateway
	}
	return fallback
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
