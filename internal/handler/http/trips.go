package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/service"
	"github.com/MKhiriev/go-car-share/internal/utils"
	"github.com/MKhiriev/go-car-share/models"
)

func (h *Handler) addTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	carID, err := carIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addTrip").Msg("invalid car id")
		respondError(w, err, err.Error())
		return
	}

	var input models.TripInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.addTrip").Msg("Invalid JSON was passed")
		writeAPIError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	trip, err := h.services.TripService.Add(ctx, carID, input)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addTrip").Int64("car_id", carID).Msg("error adding trip")
		if errors.Is(err, service.ErrBadTrip) {
			respondError(w, err, service.ErrBadTrip.Error())
			return
		}
		respondError(w, err, fmt.Sprintf("no car with id=%d", carID))
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}
