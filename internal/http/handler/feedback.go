package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"feedbacker/internal/core"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/payload"
	"feedbacker/internal/session"

	"go.uber.org/zap"
)

var (
	Home           = "GET /{$}"
	Register       = "POST /register"
	Login          = "POST /login"
	Logout         = "POST /logout"
	GetProfile     = "GET /users/{username}"
	DeleteUser     = "DELETE /users/{username}"
	CreateFeedback = "POST /users/{username}/feedback"
	GetFeedback    = "GET /feedback/{id}"
	UpdateFeedback = "PUT /feedback/{id}"
	DeleteFeedback = "DELETE /feedback/{id}"
)

type FeedbackHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	feedbacker       FeedbackService
	sessions         SessionManager
}

func NewFeedbackHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, feedbackService FeedbackService, sessions SessionManager) *FeedbackHandler {
	return &FeedbackHandler{
		logs:             logger,
		requestValidator: requestValidator,
		feedbacker:       feedbackService,
		sessions:         sessions,
	}
}

func (h *FeedbackHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (h *FeedbackHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, Register, requestId)
	if !ok {
		return
	}
	// already logged in: no double registration, point at the own profile
	if caller != "" {
		http.Redirect(w, r, "/users/"+caller, http.StatusSeeOther)
		return
	}

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.feedbacker.Register(r.Context(), req.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUser) {
			h.respond(w, Response{
				Message: "Could not register",
				Error:   err.Error(),
			}, http.StatusConflict, requestId)
			h.logs.Errorw("duplicate registration rejected",
				"error", err,
				"handler", Register,
				"request_id", requestId)
			return
		}
		h.respond(w, Response{
			Message: "Could not register",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	if !h.startSession(w, r, user.Username, Register, requestId) {
		return
	}

	h.respond(w, Response{
		Message: "Registered",
		Data:    user,
	}, http.StatusCreated, requestId)
}

func (h *FeedbackHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, Login, requestId)
	if !ok {
		return
	}
	if caller != "" {
		http.Redirect(w, r, "/users/"+caller, http.StatusSeeOther)
		return
	}

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, err := h.feedbacker.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.respond(w, Response{
				Message: "Login failed",
				Error:   err.Error(),
			}, http.StatusUnauthorized, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Login failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	if !h.startSession(w, r, user.Username, Login, requestId) {
		return
	}

	h.respond(w, Response{
		Message: "Logged in",
		Data:    user,
	}, http.StatusOK, requestId)
}

func (h *FeedbackHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if sessionID := sessionIDFromCookie(r); sessionID != "" {
		if err := h.sessions.Destroy(r.Context(), sessionID); err != nil {
			h.respond(w, Response{
				Message: "Could not log out",
				Error:   oopsErr,
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to destroy session",
				"error", err,
				"handler", Logout,
				"request_id", requestId)
			return
		}
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *FeedbackHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, GetProfile, requestId)
	if !ok {
		return
	}

	username := r.PathValue("username")

	user, feedback, err := h.feedbacker.Profile(r.Context(), caller, username)
	if err != nil {
		h.respondCoreError(w, err, "Could not load profile", GetProfile, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]any{
			"user":     user,
			"feedback": feedback,
		},
	}, http.StatusOK, requestId)
}

func (h *FeedbackHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, sessionID, ok := h.currentSession(w, r, DeleteUser, requestId)
	if !ok {
		return
	}

	username := r.PathValue("username")

	if err := h.feedbacker.DeleteAccount(r.Context(), caller, username); err != nil {
		h.respondCoreError(w, err, "Could not delete account", DeleteUser, requestId)
		return
	}

	// the account is gone, so is its session
	if err := h.sessions.Destroy(r.Context(), sessionID); err != nil {
		h.logs.Errorw("failed to destroy session after account deletion",
			"error", err,
			"handler", DeleteUser,
			"request_id", requestId)
	}
	clearSessionCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

func (h *FeedbackHandler) HandleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, CreateFeedback, requestId)
	if !ok {
		return
	}

	username := r.PathValue("username")

	var req payload.FeedbackRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create feedback",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateFeedback,
			"request_id", requestId)
		return
	}

	feedback, err := h.feedbacker.CreateFeedback(r.Context(), caller, req.ToMessage(username))
	if err != nil {
		h.respondCoreError(w, err, "Could not create feedback", CreateFeedback, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Feedback created",
		Data:    feedback,
	}, http.StatusCreated, requestId)
}

func (h *FeedbackHandler) HandleGetFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, GetFeedback, requestId)
	if !ok {
		return
	}

	id, ok := h.feedbackID(w, r, GetFeedback, requestId)
	if !ok {
		return
	}

	feedback, err := h.feedbacker.GetFeedback(r.Context(), caller, id)
	if err != nil {
		h.respondCoreError(w, err, "Could not load feedback", GetFeedback, requestId)
		return
	}

	h.respond(w, Response{
		Data: feedback,
	}, http.StatusOK, requestId)
}

func (h *FeedbackHandler) HandleUpdateFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, UpdateFeedback, requestId)
	if !ok {
		return
	}

	id, ok := h.feedbackID(w, r, UpdateFeedback, requestId)
	if !ok {
		return
	}

	var req payload.FeedbackRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update feedback",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateFeedback,
			"request_id", requestId)
		return
	}

	feedback, err := h.feedbacker.UpdateFeedback(r.Context(), caller, id, req.Title, req.Content)
	if err != nil {
		h.respondCoreError(w, err, "Could not update feedback", UpdateFeedback, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Feedback updated",
		Data:    feedback,
	}, http.StatusOK, requestId)
}

func (h *FeedbackHandler) HandleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, _, ok := h.currentSession(w, r, DeleteFeedback, requestId)
	if !ok {
		return
	}

	id, ok := h.feedbackID(w, r, DeleteFeedback, requestId)
	if !ok {
		return
	}

	if err := h.feedbacker.DeleteFeedback(r.Context(), caller, id); err != nil {
		h.respondCoreError(w, err, "Could not delete feedback", DeleteFeedback, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// currentSession resolves the session cookie to the caller username. An
// absent or expired session yields the anonymous caller (""); only a
// session-store failure terminates the request.
func (h *FeedbackHandler) currentSession(w http.ResponseWriter, r *http.Request, handlerName, requestId string) (string, string, bool) {
	sessionID := sessionIDFromCookie(r)

	caller, err := h.sessions.Resolve(r.Context(), sessionID)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to resolve session",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
		return "", "", false
	}

	return caller, sessionID, true
}

func (h *FeedbackHandler) startSession(w http.ResponseWriter, r *http.Request, username, handlerName, requestId string) bool {
	sessionID, err := h.sessions.Start(r.Context(), username)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to start session",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return true
}

func (h *FeedbackHandler) feedbackID(w http.ResponseWriter, r *http.Request, handlerName, requestId string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "feedback id must be a positive integer",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid feedback id",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
		return 0, false
	}
	return uint(id), true
}

func (h *FeedbackHandler) respondCoreError(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		httpCode = http.StatusUnauthorized
	case errors.Is(err, core.ErrNotOwner):
		httpCode = http.StatusForbidden
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrFeedbackNotFound):
		httpCode = http.StatusNotFound
	default:
		httpCode = http.StatusInternalServerError
		resp.Error = oopsErr
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
	}

	h.respond(w, resp, httpCode, requestId)
}

func (h *FeedbackHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
