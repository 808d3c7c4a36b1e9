package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/apperr"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/auth"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/models"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
)

// Client-facing messages.
const (
	MsgLoginOK          = "Login correcto!"
	MsgRegisterOK       = "Registro correcto!"
	MsgEmailTaken       = "El email ya existe, intente con otro"
	MsgUnknownEmail     = "El email no existe o es incorrecto, pruebe con otro o registrese."
	MsgBadPassword      = "Contraseña incorrectos"
	MsgMissingFields    = "El email y la contraseña son obligatorios"
	MsgServerError      = "Error en el servidor"
	MsgMissingToken     = "Token no proporcionado o inexistente. Vuelva a loguearse"
	MsgInvalidToken     = "Token invalido o expirado"
	MsgPlayersListed    = "Se obtuvieron los jugadores correctamente"
	MsgPlayerFound      = "Se obtuvo el jugador correctamente"
	MsgPlayerCreated    = "Se guardó el jugador correctamente"
	MsgPlayerUpdated    = "Jugador actualizado correctamente"
	MsgPlayerNotFound   = "Jugador no encontrado"
	MsgIDNotInteger     = "El ID debe ser un número entero"
	MsgBadPagination    = "Los parámetros pagina y porPagina deben ser enteros positivos"
	MsgPageSizeTooLarge = "El parámetro porPagina supera el máximo permitido"
	MsgInvalidBody      = "El cuerpo de la solicitud debe ser un objeto JSON válido"
	MsgMissingURL       = "Falta el parámetro 'url'"
	MsgRouteNotFound    = "Ruta no encontrada"
	MsgMethodNotAllowed = "Método no permitido"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// errorMessage returns the client-facing text for err. Validation errors
// carry their own description; internal errors never leak details.
func errorMessage(err error, status int) string {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		return MsgMissingFields
	case errors.Is(err, models.ErrEmailTaken):
		return MsgEmailTaken
	case errors.Is(err, models.ErrUserNotFound):
		return MsgUnknownEmail
	case errors.Is(err, services.ErrInvalidCredential):
		return MsgBadPassword
	case errors.Is(err, auth.ErrMissingToken):
		return MsgMissingToken
	case errors.Is(err, auth.ErrInvalidToken):
		return MsgInvalidToken
	case errors.Is(err, models.ErrPlayerNotFound):
		return MsgPlayerNotFound
	case errors.Is(err, services.ErrPageSizeTooLarge):
		return MsgPageSizeTooLarge
	}
	if status == http.StatusBadRequest {
		return err.Error()
	}
	return MsgServerError
}

// RespondError maps err to its status and message, logging server-side
// failures with the request context.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("Request failed")

	WriteError(w, status, errorMessage(err, status))
}
