package clinic

import "net/http"

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Tags vets
// @Produce json
// @Success 200 {array} vetResponse
// @Router /api/vets [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vets, err := svc.FindAllVets(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]vetResponse, 0, len(vets))
		for _, v := range vets {
			out = append(out, toVetResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createVetHandler godoc
// @Summary Crear veterinario
// @Description Las especialidades se resuelven por id; un id inexistente devuelve 400.
// @Tags vets
// @Accept json
// @Produce json
// @Param payload body vetRequest true "Datos del veterinario"
// @Success 201 {object} vetResponse
// @Failure 400 {string} string "invalid json / especialidad inexistente"
// @Router /api/vets [post]
func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		v := &Vet{}
		if err := req.applyTo(v); err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.SaveVet(r.Context(), v); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toVetResponse(v))
	}
}

func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadVet(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadVet(w, r, svc)
		if !ok {
			return
		}
		var req vetRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.applyTo(v); err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.SaveVet(r.Context(), v); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadVet(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeleteVet(r.Context(), v); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadVet(w http.ResponseWriter, r *http.Request, svc *Service) (*Vet, bool) {
	id, ok := pathID(w, r, "vetID")
	if !ok {
		return nil, false
	}
	v, err := svc.FindVetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if v == nil {
		http.Error(w, "vet not found", http.StatusNotFound)
		return nil, false
	}
	return v, true
}

// ---- specialties ----

func listSpecialtiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specs, err := svc.FindAllSpecialties(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]namedResponse, 0, len(specs))
		for _, sp := range specs {
			out = append(out, namedResponse{ID: sp.ID, Name: sp.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req namedRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		name, err := req.name()
		if err != nil {
			writeError(w, r, err)
			return
		}
		sp := &Specialty{Name: name}
		if err := svc.SaveSpecialty(r.Context(), sp); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, namedResponse{ID: sp.ID, Name: sp.Name})
	}
}

func getSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, ok := loadSpecialty(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, namedResponse{ID: sp.ID, Name: sp.Name})
	}
}

func updateSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, ok := loadSpecialty(w, r, svc)
		if !ok {
			return
		}
		var req namedRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		name, err := req.name()
		if err != nil {
			writeError(w, r, err)
			return
		}
		sp.Name = name
		if err := svc.SaveSpecialty(r.Context(), sp); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, namedResponse{ID: sp.ID, Name: sp.Name})
	}
}

// deleteSpecialtyHandler godoc
// @Summary Borrar especialidad
// @Description La especialidad se desvincula de los veterinarios que la tenían.
// @Tags specialties
// @Param specialtyID path int true "ID de la especialidad"
// @Success 204
// @Failure 404 {string} string "specialty not found"
// @Router /api/specialties/{specialtyID} [delete]
func deleteSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, ok := loadSpecialty(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeleteSpecialty(r.Context(), sp); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadSpecialty(w http.ResponseWriter, r *http.Request, svc *Service) (*Specialty, bool) {
	id, ok := pathID(w, r, "specialtyID")
	if !ok {
		return nil, false
	}
	sp, err := svc.FindSpecialtyByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if sp == nil {
		http.Error(w, "specialty not found", http.StatusNotFound)
		return nil, false
	}
	return sp, true
}

// ---- pet types ----

// listPetTypesHandler godoc
// @Summary Listar tipos de mascota
// @Tags pettypes
// @Produce json
// @Success 200 {array} namedResponse
// @Router /api/pettypes [get]
func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.FindAllPetTypes(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]namedResponse, 0, len(types))
		for _, t := range types {
			out = append(out, namedResponse{ID: t.ID, Name: t.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req namedRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		name, err := req.name()
		if err != nil {
			writeError(w, r, err)
			return
		}
		t := &PetType{Name: name}
		if err := svc.SavePetType(r.Context(), t); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, namedResponse{ID: t.ID, Name: t.Name})
	}
}

func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadPetType(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, namedResponse{ID: t.ID, Name: t.Name})
	}
}

func updatePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadPetType(w, r, svc)
		if !ok {
			return
		}
		var req namedRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		name, err := req.name()
		if err != nil {
			writeError(w, r, err)
			return
		}
		t.Name = name
		if err := svc.SavePetType(r.Context(), t); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, namedResponse{ID: t.ID, Name: t.Name})
	}
}

// deletePetTypeHandler borra el tipo y, en cascada, las mascotas de ese tipo.
func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := loadPetType(w, r, svc)
		if !ok {
			return
		}
		if err := svc.DeletePetType(r.Context(), t); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func loadPetType(w http.ResponseWriter, r *http.Request, svc *Service) (*PetType, bool) {
	id, ok := pathID(w, r, "typeID")
	if !ok {
		return nil, false
	}
	t, err := svc.FindPetTypeByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if t == nil {
		http.Error(w, "pet type not found", http.StatusNotFound)
		return nil, false
	}
	return t, true
}
