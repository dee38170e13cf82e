package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/utils"
	"github.com/MKhiriev/go-car-share/models"
)

func (h *Handler) listCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := carFilterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCars").Msg("invalid query parameters")
		writeAPIError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	cars, err := h.services.CarService.List(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCars").Msg("error listing cars")
		respondError(w, err, "error listing cars")
		return
	}

	utils.WriteJSON(w, cars, http.StatusOK)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	carID, err := carIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCar").Msg("invalid car id")
		respondError(w, err, err.Error())
		return
	}

	car, err := h.services.CarService.Get(ctx, carID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCar").Int64("car_id", carID).Msg("error getting car")
		respondError(w, err, fmt.Sprintf("no car with id=%d", carID))
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) createCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.CarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createCar").Msg("Invalid JSON was passed")
		writeAPIError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	car, err := h.services.CarService.Create(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCar").Msg("error creating car")
		respondError(w, err, "error creating car")
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) updateCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	carID, err := carIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCar").Msg("invalid car id")
		respondError(w, err, err.Error())
		return
	}

	var input models.CarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.updateCar").Msg("Invalid JSON was passed")
		writeAPIError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	car, err := h.services.CarService.Update(ctx, carID, input)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCar").Int64("car_id", carID).Msg("error updating car")
		respondError(w, err, fmt.Sprintf("no car with id=%d", carID))
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) deleteCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	carID, err := carIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteCar").Msg("invalid car id")
		respondError(w, err, err.Error())
		return
	}

	if err := h.services.CarService.Delete(ctx, carID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCar").Int64("car_id", carID).Msg("error deleting car")
		respondError(w, err, fmt.Sprintf("no car with id=%d", carID))
		return
	}

	utils.WriteJSON(w, models.Confirmation{Message: fmt.Sprintf("car with id=%d removed", carID)}, http.StatusOK)
}

// carIDFromURL parses the {id} URL parameter.
func carIDFromURL(r *http.Request) (int64, error) {
	carID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidCarID
	}
	return carID, nil
}

// carFilterFromQuery builds a listing filter from the optional "size" and
// "doors" query parameters. "doors" is a lower bound, not an exact match.
func carFilterFromQuery(r *http.Request) (models.CarFilter, error) {
	var filter models.CarFilter

	query := r.URL.Query()
	if size := query.Get("size"); size != "" {
		filter.Size = &size
	}
	if doors := query.Get("doors"); doors != "" {
		minDoors, err := strconv.Atoi(doors)
		if err != nil {
			return models.CarFilter{}, fmt.Errorf("doors must be an integer: %q", doors)
		}
		filter.MinDoors = &minDoors
	}

	return filter, nil
}
