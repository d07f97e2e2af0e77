package clinic

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petclinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))

		// Alta de mascota dentro del owner (AddPet + SavePet)
		or.Post("/{ownerID}/pets", addPetToOwnerHandler(svc))
		or.Get("/{ownerID}/pets/{petID}", getOwnerPetHandler(svc))
	})

	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Get("/{petID}/visits", listVisitsHandler(svc))
		pr.Post("/{petID}/visits", createVisitHandler(svc))
	})

	r.Route("/api/visits", func(vr chi.Router) {
		vr.Get("/{visitID}", getVisitHandler(svc))
		vr.Delete("/{visitID}", deleteVisitHandler(svc))
	})

	r.Route("/api/pettypes", func(tr chi.Router) {
		tr.Get("/", listPetTypesHandler(svc))
		tr.Post("/", createPetTypeHandler(svc))
		tr.Get("/{typeID}", getPetTypeHandler(svc))
		tr.Put("/{typeID}", updatePetTypeHandler(svc))
		tr.Delete("/{typeID}", deletePetTypeHandler(svc))
	})

	r.Route("/api/specialties", func(sr chi.Router) {
		sr.Get("/", listSpecialtiesHandler(svc))
		sr.Post("/", createSpecialtyHandler(svc))
		sr.Get("/{specialtyID}", getSpecialtyHandler(svc))
		sr.Put("/{specialtyID}", updateSpecialtyHandler(svc))
		sr.Delete("/{specialtyID}", deleteSpecialtyHandler(svc))
	})

	r.Route("/api/vets", func(vr chi.Router) {
		vr.Get("/", listVetsHandler(svc))
		vr.Post("/", createVetHandler(svc))
		vr.Get("/{vetID}", getVetHandler(svc))
		vr.Put("/{vetID}", updateVetHandler(svc))
		vr.Delete("/{vetID}", deleteVetHandler(svc))
	})
}

// pathID lee un id entero positivo del path; responde 400 si no lo es.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError traduce errores de dominio a status HTTP. Lo inesperado se loguea una vez acá.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrPetTypeNotFound),
		errors.Is(err, ErrSpecialtyNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		logger.FromContext(r.Context()).Error("request failed", logger.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
