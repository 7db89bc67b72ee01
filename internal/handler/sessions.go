package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/game"
)

// SessionHandler exposes the game state machine
type SessionHandler struct {
	service game.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service game.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// CommandErrorResponse reports a rejected command together with the
// session it left behind, so clients can show the notice.
type CommandErrorResponse struct {
	Error   string        `json:"error"`
	Session *game.Session `json:"session"`
}

// HandleCreateSession starts a new game session
// @Summary Create game session
// @Description Starts a session on the recipe index screen
// @Tags sessions
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 503 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.NewSession(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateSessionFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgSessionCreated, Data: session})
}

// HandleGetSession returns the current state of a session
// @Summary Get game session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} game.Session
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := GetRequiredURLParam(r, w, "id", ErrMsgMissingSessionID)
	if !ok {
		return
	}

	session, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSessionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// HandleCommand applies a player command to a session
// @Summary Apply session command
// @Description Applies select_recipe, scale, start_cooking, next_step, previous_step, back or reset.
// @Description A rejected command returns the unchanged session alongside the error.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body game.Command true "Command details"
// @Success 200 {object} game.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} CommandErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /sessions/{id}/commands [post]
func (h *SessionHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	id, ok := GetRequiredURLParam(r, w, "id", ErrMsgMissingSessionID)
	if !ok {
		return
	}

	var cmd game.Command
	if err := DecodeAndValidateRequest(r, w, &cmd, "Session command"); err != nil {
		return
	}

	session, err := h.service.Dispatch(r.Context(), id, cmd)
	if err != nil {
		if session == nil || errors.Is(err, domain.ErrSessionNotFound) {
			respondServiceError(w, r, ErrMsgCommandFailed, err)
			return
		}
		status, message := mapServiceErrorToUserMessage(err)
		respondJSON(w, status, CommandErrorResponse{Error: message, Session: session})
		return
	}

	respondJSON(w, http.StatusOK, session)
}
