package clinic

import (
	"net/http"
	"strings"
)

// listOwnersHandler godoc
// @Summary Listar owners
// @Description Devuelve todos los owners con sus mascotas. Con last_name filtra por prefijo (sin distinguir mayúsculas).
// @Tags owners
// @Produce json
// @Param last_name query string false "Prefijo del apellido"
// @Success 200 {array} ownerResponse
// @Router /api/owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			owners []*Owner
			err    error
		)
		if lastName := strings.TrimSpace(r.URL.Query().Get("last_name")); lastName != "" {
			owners, err = svc.FindOwnersByLastName(r.Context(), lastName)
		} else {
			owners, err = svc.FindAllOwners(r.Context())
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]ownerResponse, 0, len(owners))
		for _, o := range owners {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / campo faltante o demasiado largo"
// @Router /api/owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		o := &Owner{}
		if err := req.applyTo(o); err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.SaveOwner(r.Context(), o); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Obtener owner
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "owner not found"
// @Router /api/owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc)
		if !ok {
			return
		}

		var req ownerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.applyTo(o); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.SaveOwner(r.Context(), o); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar owner
// @Description Borra al owner junto con sus mascotas y visitas.
// @Tags owners
// @Param ownerID path int true "ID del owner"
// @Success 204
// @Failure 404 {string} string "owner not found"
// @Router /api/owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeleteOwner(r.Context(), o); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// addPetToOwnerHandler godoc
// @Summary Agregar mascota a un owner
// @Description El nombre no puede repetirse dentro del mismo owner (comparación sin distinguir mayúsculas). El tipo se resuelve por type_id.
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param payload body petRequest true "Datos de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / tipo inexistente"
// @Failure 404 {string} string "owner not found"
// @Failure 409 {string} string "pet name already exists for owner"
// @Router /api/owners/{ownerID}/pets [post]
func addPetToOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc)
		if !ok {
			return
		}

		var req petRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		p := &Pet{}
		if err := req.applyTo(p); err != nil {
			writeError(w, r, err)
			return
		}
		if o.GetPet(p.Name) != nil {
			http.Error(w, "pet name already exists for owner", http.StatusConflict)
			return
		}

		o.AddPet(p)
		if err := svc.SavePet(r.Context(), p); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func getOwnerPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc)
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		p := o.GetPetByID(petID)
		if p == nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// loadOwner resuelve {ownerID}; si no existe responde 404 y devuelve ok=false.
func loadOwner(w http.ResponseWriter, r *http.Request, svc *Service) (*Owner, bool) {
	id, ok := pathID(w, r, "ownerID")
	if !ok {
		return nil, false
	}
	o, err := svc.FindOwnerByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if o == nil {
		http.Error(w, "owner not found", http.StatusNotFound)
		return nil, false
	}
	return o, true
}
