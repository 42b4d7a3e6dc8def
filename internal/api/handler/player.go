package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/dicegame-go/internal/api/request"
	"github.com/mcoot/dicegame-go/internal/api/response"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/player"
)

// MaxLeaderboardLimit caps the limit query parameter
const MaxLeaderboardLimit = 100

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.playerService.Create(r.Context(), req.FullName, req.GamerTag)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(record))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.playerService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromModel(records))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.playerService.Get(r.Context(), playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(record))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.Delete(r.Context(), playerID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Rename handles PUT /api/v1/players/{id}/name
func (h *PlayerHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req request.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.playerService.Rename(r.Context(), playerID(r), req.FirstName, req.FamilyName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(record))
}

// SetFullName handles PUT /api/v1/players/{id}/full-name
func (h *PlayerHandler) SetFullName(w http.ResponseWriter, r *http.Request) {
	var req request.SetFullNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.playerService.SetFullName(r.Context(), playerID(r), req.FullName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(record))
}

// SetGamerTag handles PUT /api/v1/players/{id}/gamer-tag
func (h *PlayerHandler) SetGamerTag(w http.ResponseWriter, r *http.Request) {
	var req request.SetGamerTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.playerService.SetGamerTag(r.Context(), playerID(r), req.GamerTag)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(record))
}

// GenerateGamerTag handles POST /api/v1/players/{id}/gamer-tag/generate.
// A number outside [1, 100] is accepted and leaves the gamer tag unchanged.
func (h *PlayerHandler) GenerateGamerTag(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateGamerTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Number == nil {
		WriteError(w, NewInvalidRequestError("number is required"))
		return
	}

	record, err := h.playerService.GenerateGamerTag(r.Context(), playerID(r), *req.Number)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(record))
}

// Roll handles POST /api/v1/players/{id}/roll
func (h *PlayerHandler) Roll(w http.ResponseWriter, r *http.Request) {
	result, err := h.playerService.Roll(r.Context(), playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RollResponseFromResult(result))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := player.DefaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > MaxLeaderboardLimit {
			WriteError(w, NewInvalidRequestError("limit must be between 1 and 100"))
			return
		}
		limit = parsed
	}

	entries, err := h.playerService.Leaderboard(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromService(entries))
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["id"])
}
