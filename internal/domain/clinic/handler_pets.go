package clinic

import (
	"net/http"
	"time"
)

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.FindAllPets(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]petResponse, 0, len(pets))
		for _, p := range pets {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza nombre, fecha de nacimiento y tipo. El dueño no cambia.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / tipo inexistente"
// @Failure 404 {string} string "pet not found"
// @Router /api/pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}

		var req petRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.applyTo(p); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.SavePet(r.Context(), p); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeletePet(r.Context(), p); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}
		visits, err := svc.FindVisitsByPetID(r.Context(), p.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]visitResponse, 0, len(visits))
		for _, v := range visits {
			out = append(out, toVisitResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description Registra una visita para la mascota. Si no viene date se usa la fecha de hoy (UTC).
// @Tags visits
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body visitRequest true "Datos de la visita"
// @Success 201 {object} visitResponse
// @Failure 400 {string} string "invalid json / fecha inválida"
// @Failure 404 {string} string "pet not found"
// @Router /api/pets/{petID}/visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, svc)
		if !ok {
			return
		}

		var req visitRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		v, err := req.toVisit(time.Now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		p.AddVisit(v)
		if err := svc.SaveVisit(r.Context(), v); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

func getVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadVisit(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadVisit(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeleteVisit(r.Context(), v); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadPet(w http.ResponseWriter, r *http.Request, svc *Service) (*Pet, bool) {
	id, ok := pathID(w, r, "petID")
	if !ok {
		return nil, false
	}
	p, err := svc.FindPetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if p == nil {
		http.Error(w, "pet not found", http.StatusNotFound)
		return nil, false
	}
	return p, true
}

func loadVisit(w http.ResponseWriter, r *http.Request, svc *Service) (*Visit, bool) {
	id, ok := pathID(w, r, "visitID")
	if !ok {
		return nil, false
	}
	v, err := svc.FindVisitByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if v == nil {
		http.Error(w, "visit not found", http.StatusNotFound)
		return nil, false
	}
	return v, true
}
