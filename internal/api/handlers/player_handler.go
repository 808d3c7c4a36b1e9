package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/allowlist"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
)

const maxBodyBytes = 1 << 20

// PlayerHandler handles HTTP requests for player cards.
type PlayerHandler struct {
	service services.PlayerServiceProvider
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service services.PlayerServiceProvider) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// PlayerResponse wraps a single player.
type PlayerResponse struct {
	Mensaje string        `json:"mensaje"`
	Jugador models.Player `json:"jugador"`
}

// PlayerListResponse wraps one page of players.
type PlayerListResponse struct {
	Mensaje   string          `json:"mensaje"`
	Jugador   []models.Player `json:"jugador"`
	Total     int             `json:"total"`
	Pagina    int             `json:"pagina"`
	PorPagina int             `json:"porPagina"`
}

// List handles GET /obtener-jugadores with optional nombre, club, posicion,
// pagina and porPagina query parameters.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, ok := positiveIntParam(q.Get("pagina"))
	if !ok {
		WriteError(w, http.StatusBadRequest, MsgBadPagination)
		return
	}
	pageSize, ok := positiveIntParam(q.Get("porPagina"))
	if !ok {
		WriteError(w, http.StatusBadRequest, MsgBadPagination)
		return
	}

	filter := models.PlayerFilter{
		Name:     strings.TrimSpace(q.Get("nombre")),
		Club:     strings.TrimSpace(q.Get("club")),
		Position: strings.TrimSpace(q.Get("posicion")),
	}

	result, err := h.service.List(r.Context(), filter, page, pageSize)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, PlayerListResponse{
		Mensaje:   MsgPlayersListed,
		Jugador:   result.Items,
		Total:     result.Total,
		Pagina:    result.Page,
		PorPagina: result.PageSize,
	})
}

// Get handles GET /obtener-jugador/{id}.
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, MsgIDNotInteger)
		return
	}

	player, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	if !found {
		WriteError(w, http.StatusNotFound, MsgPlayerNotFound)
		return
	}

	writeJSON(w, http.StatusOK, PlayerResponse{Mensaje: MsgPlayerFound, Jugador: player})
}

// Create handles POST /crear-jugador. The whole body is handed to the store.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	data, ok := decodeObject(w, r)
	if !ok {
		return
	}

	player, err := h.service.Create(r.Context(), data)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	log.Info().Int64("player_id", player.ID).Msg("Player created")
	writeJSON(w, http.StatusCreated, PlayerResponse{Mensaje: MsgPlayerCreated, Jugador: player})
}

// Update handles PUT /modificar-jugador/{id}. Only allow-listed fields of
// the body reach the store.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id cannot name an existing player.
		WriteError(w, http.StatusNotFound, MsgPlayerNotFound)
		return
	}

	data, ok := decodeObject(w, r)
	if !ok {
		return
	}
	filtered := allowlist.FilterFields(data, allowlist.PlayerFields)
	if dropped := len(data) - len(filtered); dropped > 0 {
		log.Debug().Int64("player_id", id).Int("dropped", dropped).Msg("Ignored fields outside the allow-list")
	}

	player, err := h.service.Update(r.Context(), id, filtered)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	log.Info().Int64("player_id", player.ID).Int("fields", len(filtered)).Msg("Player updated")
	writeJSON(w, http.StatusOK, PlayerResponse{Mensaje: MsgPlayerUpdated, Jugador: player})
}

// positiveIntParam parses an optional positive integer. An empty value
// yields 0, meaning "use the default".
func positiveIntParam(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// decodeObject reads a JSON object body, keeping numbers as json.Number so
// large integers survive until they are coerced to a column type.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil || data == nil {
		WriteError(w, http.StatusBadRequest, MsgInvalidBody)
		return nil, false
	}
	return data, true
}
