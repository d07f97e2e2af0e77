package clinic_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"petclinic/internal/adapters/storage/memory"
	"petclinic/internal/domain/clinic"

	"github.com/go-chi/chi/v5"
)

func newSeededServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := clinic.NewService(memory.NewRepositories())
	if err := clinic.Seed(context.Background(), svc); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := chi.NewRouter()
	clinic.RegisterRoutes(r, svc)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestSeed_LoadsReferenceData(t *testing.T) {
	svc := clinic.NewService(memory.NewRepositories())
	ctx := context.Background()
	if err := clinic.Seed(ctx, svc); err != nil {
		t.Fatalf("seed: %v", err)
	}

	owners, _ := svc.FindAllOwners(ctx)
	pets, _ := svc.FindAllPets(ctx)
	types, _ := svc.FindAllPetTypes(ctx)
	vets, _ := svc.FindAllVets(ctx)
	specs, _ := svc.FindAllSpecialties(ctx)

	if len(owners) != 10 || len(pets) != 13 || len(types) != 6 || len(vets) != 6 || len(specs) != 3 {
		t.Fatalf("unexpected counts: owners=%d pets=%d types=%d vets=%d specs=%d",
			len(owners), len(pets), len(types), len(vets), len(specs))
	}

	coleman, _ := svc.FindOwnerByID(ctx, 6)
	samantha := coleman.GetPet("SAMANTHA")
	if samantha == nil || len(samantha.Visits) != 2 {
		t.Fatalf("expected Samantha with 2 visits, got %#v", samantha)
	}
	if samantha.Type == nil || samantha.Type.Name != "cat" {
		t.Fatalf("expected resolved cat type, got %#v", samantha.Type)
	}
}

func TestSeed_SecondRunLeavesStoreUntouched(t *testing.T) {
	svc := clinic.NewService(memory.NewRepositories())
	ctx := context.Background()
	if err := clinic.Seed(ctx, svc); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	if err := clinic.Seed(ctx, svc); !errors.Is(err, clinic.ErrAlreadySeeded) {
		t.Fatalf("expected ErrAlreadySeeded on second run, got %v", err)
	}

	owners, _ := svc.FindAllOwners(ctx)
	types, _ := svc.FindAllPetTypes(ctx)
	vets, _ := svc.FindAllVets(ctx)
	if len(owners) != 10 || len(types) != 6 || len(vets) != 6 {
		t.Fatalf("expected data loaded once: owners=%d types=%d vets=%d", len(owners), len(types), len(vets))
	}
}

func TestSeed_SkipsStoreWithOwnData(t *testing.T) {
	svc := clinic.NewService(memory.NewRepositories())
	ctx := context.Background()
	if err := svc.SaveOwner(ctx, &clinic.Owner{FirstName: "John", LastName: "Doe"}); err != nil {
		t.Fatalf("save owner: %v", err)
	}

	if err := clinic.Seed(ctx, svc); !errors.Is(err, clinic.ErrAlreadySeeded) {
		t.Fatalf("expected ErrAlreadySeeded, got %v", err)
	}
	types, _ := svc.FindAllPetTypes(ctx)
	if len(types) != 0 {
		t.Fatalf("expected no pet types, got %d", len(types))
	}
}

func TestHTTP_Owners(t *testing.T) {
	ts := newSeededServer(t)

	st, body := doReq(t, ts.URL, http.MethodGet, "/api/owners", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, body)
	}
	var owners []map[string]any
	_ = json.Unmarshal(body, &owners)
	if len(owners) != 10 {
		t.Fatalf("expected 10 owners, got %d", len(owners))
	}

	st, body = doReq(t, ts.URL, http.MethodGet, "/api/owners?last_name=davis", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	_ = json.Unmarshal(body, &owners)
	if len(owners) != 2 {
		t.Fatalf("expected 2 Davis owners, got %d body=%s", len(owners), body)
	}

	if st, _ := doReq(t, ts.URL, http.MethodGet, "/api/owners/999", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown owner, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, http.MethodGet, "/api/owners/abc", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", st)
	}

	id := createOwner(t, ts.URL)
	st, body = doReq(t, ts.URL, http.MethodPut, "/api/owners/"+strconv.Itoa(id), map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"address":    "742 Evergreen Terrace",
		"city":       "Shelbyville",
		"telephone":  "5550001111",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, body)
	}
	var updated struct {
		City string `json:"city"`
	}
	_ = json.Unmarshal(body, &updated)
	if updated.City != "Shelbyville" {
		t.Fatalf("expected updated city, got %s", body)
	}

	if st, _ := doReq(t, ts.URL, http.MethodDelete, "/api/owners/"+strconv.Itoa(id), nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, http.MethodGet, "/api/owners/"+strconv.Itoa(id), nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_AddPetToOwner(t *testing.T) {
	ts := newSeededServer(t)
	ownerID := createOwner(t, ts.URL)
	base := "/api/owners/" + strconv.Itoa(ownerID) + "/pets"

	st, body := doReq(t, ts.URL, http.MethodPost, base, map[string]any{
		"name":       "Max",
		"birth_date": "2020-05-15",
		"type_id":    2,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, body)
	}
	var pet struct {
		ID        int    `json:"id"`
		OwnerID   int    `json:"owner_id"`
		BirthDate string `json:"birth_date"`
		Type      struct {
			Name string `json:"name"`
		} `json:"type"`
	}
	_ = json.Unmarshal(body, &pet)
	if pet.ID == 0 || pet.OwnerID != ownerID || pet.Type.Name != "dog" || pet.BirthDate != "2020-05-15" {
		t.Fatalf("unexpected pet: %s", body)
	}

	// mismo nombre con otra capitalización => conflicto
	st, _ = doReq(t, ts.URL, http.MethodPost, base, map[string]any{"name": "mAX", "type_id": 1})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate name, got %d", st)
	}

	// tipo inexistente => 400 y no se guarda nada
	st, _ = doReq(t, ts.URL, http.MethodPost, base, map[string]any{"name": "Rex", "type_id": 99})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown type, got %d", st)
	}

	st, body = doReq(t, ts.URL, http.MethodGet, "/api/owners/"+strconv.Itoa(ownerID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var owner struct {
		Pets []struct {
			Name string `json:"name"`
		} `json:"pets"`
	}
	_ = json.Unmarshal(body, &owner)
	if len(owner.Pets) != 1 || owner.Pets[0].Name != "Max" {
		t.Fatalf("expected only Max, got %s", body)
	}

	st, _ = doReq(t, ts.URL, http.MethodGet, base+"/"+strconv.Itoa(pet.ID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 owner pet, got %d", st)
	}
	st, _ = doReq(t, ts.URL, http.MethodGet, base+"/1", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for pet of another owner, got %d", st)
	}
}

func TestHTTP_PetsAndVisits(t *testing.T) {
	ts := newSeededServer(t)

	st, body := doReq(t, ts.URL, http.MethodPut, "/api/pets/1", map[string]any{
		"name":       "Leonardo",
		"birth_date": "2010-09-07",
		"type_id":    1,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update pet, got %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, http.MethodPost, "/api/pets/1/visits", map[string]any{
		"date":        "2024-03-01",
		"description": "annual checkup",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 visit, got %d body=%s", st, body)
	}
	var visit struct {
		ID    int `json:"id"`
		PetID int `json:"pet_id"`
	}
	_ = json.Unmarshal(body, &visit)
	if visit.PetID != 1 || visit.ID == 0 {
		t.Fatalf("unexpected visit: %s", body)
	}

	if st, _ := doReq(t, ts.URL, http.MethodPost, "/api/pets/1/visits", map[string]any{"date": "03/01/2024", "description": "checkup"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d", st)
	}

	st, body = doReq(t, ts.URL, http.MethodGet, "/api/pets/1/visits", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list visits, got %d", st)
	}
	var visits []map[string]any
	_ = json.Unmarshal(body, &visits)
	if len(visits) != 1 {
		t.Fatalf("expected 1 visit, got %s", body)
	}

	path := "/api/visits/" + strconv.Itoa(visit.ID)
	if st, _ := doReq(t, ts.URL, http.MethodDelete, path, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, http.MethodGet, path, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, http.MethodDelete, "/api/pets/1", nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete pet, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, http.MethodGet, "/api/pets/1", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_VetsSpecialtiesAndTypes(t *testing.T) {
	ts := newSeededServer(t)

	st, body := doReq(t, ts.URL, http.MethodPost, "/api/vets", map[string]any{
		"first_name":    "Ana",
		"last_name":     "Ruiz",
		"specialty_ids": []int{1, 2},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 vet, got %d body=%s", st, body)
	}
	var vet struct {
		ID          int `json:"id"`
		Specialties []struct {
			Name string `json:"name"`
		} `json:"specialties"`
	}
	_ = json.Unmarshal(body, &vet)
	if len(vet.Specialties) != 2 || vet.Specialties[0].Name != "radiology" {
		t.Fatalf("expected resolved specialties, got %s", body)
	}

	st, _ = doReq(t, ts.URL, http.MethodPost, "/api/vets", map[string]any{"first_name": "X", "specialty_ids": []int{42}})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown specialty, got %d", st)
	}

	st, body = doReq(t, ts.URL, http.MethodPost, "/api/pettypes", map[string]any{"name": "ferret"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 pet type, got %d body=%s", st, body)
	}

	if st, _ := doReq(t, ts.URL, http.MethodDelete, "/api/specialties/1", nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete specialty, got %d", st)
	}
	st, body = doReq(t, ts.URL, http.MethodGet, "/api/vets/"+strconv.Itoa(vet.ID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 vet, got %d", st)
	}
	_ = json.Unmarshal(body, &vet)
	if len(vet.Specialties) != 1 {
		t.Fatalf("expected specialty unlinked, got %s", body)
	}

	if st, _ := doReq(t, ts.URL, http.MethodPost, "/api/pettypes", "not an object"); st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid json, got %d", st)
	}
}

func TestHTTP_RejectsBlankAndOverlongInput(t *testing.T) {
	ts := newSeededServer(t)
	ownerID := createOwner(t, ts.URL)

	validOwner := func() map[string]any {
		return map[string]any{
			"first_name": "John",
			"last_name":  "Doe",
			"address":    "123 Main St",
			"city":       "Springfield",
			"telephone":  "5551234567",
		}
	}
	long := strings.Repeat("x", 40)

	cases := []struct {
		name   string
		method string
		path   string
		body   map[string]any
	}{
		{"empty owner", http.MethodPost, "/api/owners", map[string]any{}},
		{"blank last name", http.MethodPost, "/api/owners", func() map[string]any {
			b := validOwner()
			b["last_name"] = "   "
			return b
		}()},
		{"overlong first name", http.MethodPost, "/api/owners", func() map[string]any {
			b := validOwner()
			b["first_name"] = long
			return b
		}()},
		{"non numeric telephone", http.MethodPost, "/api/owners", func() map[string]any {
			b := validOwner()
			b["telephone"] = "555-1234"
			return b
		}()},
		{"overlong telephone", http.MethodPost, "/api/owners", func() map[string]any {
			b := validOwner()
			b["telephone"] = "12345678901"
			return b
		}()},
		{"update with overlong city", http.MethodPut, "/api/owners/" + strconv.Itoa(ownerID), func() map[string]any {
			b := validOwner()
			b["city"] = strings.Repeat("c", 81)
			return b
		}()},
		{"overlong pet name", http.MethodPost, "/api/owners/" + strconv.Itoa(ownerID) + "/pets", map[string]any{"name": long, "type_id": 1}},
		{"blank pet name", http.MethodPost, "/api/owners/" + strconv.Itoa(ownerID) + "/pets", map[string]any{"name": " ", "type_id": 1}},
		{"blank visit description", http.MethodPost, "/api/pets/1/visits", map[string]any{"date": "2024-03-01"}},
		{"overlong visit description", http.MethodPost, "/api/pets/1/visits", map[string]any{"description": strings.Repeat("d", 256)}},
		{"blank pet type", http.MethodPost, "/api/pettypes", map[string]any{"name": ""}},
		{"overlong specialty", http.MethodPost, "/api/specialties", map[string]any{"name": strings.Repeat("s", 81)}},
		{"overlong vet name", http.MethodPost, "/api/vets", map[string]any{"first_name": long, "last_name": "Ruiz"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", st, body)
			}
		})
	}

	// nada de lo rechazado quedó guardado
	st, body := doReq(t, ts.URL, http.MethodGet, "/api/owners/"+strconv.Itoa(ownerID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var owner struct {
		City string `json:"city"`
		Pets []any  `json:"pets"`
	}
	_ = json.Unmarshal(body, &owner)
	if owner.City != "Springfield" || len(owner.Pets) != 0 {
		t.Fatalf("rejected input leaked into the store: %s", body)
	}
}

func TestHTTP_AcceptsValuesAtColumnLimit(t *testing.T) {
	ts := newSeededServer(t)

	st, body := doReq(t, ts.URL, http.MethodPost, "/api/owners", map[string]any{
		"first_name": strings.Repeat("ñ", 30),
		"last_name":  "Doe",
		"address":    "123 Main St",
		"city":       "Springfield",
		"telephone":  "5551234567",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 for 30-character name, got %d body=%s", st, body)
	}
}

func createOwner(t *testing.T, baseURL string) int {
	t.Helper()

	st, body := doReq(t, baseURL, http.MethodPost, "/api/owners", map[string]any{
		"first_name": "John",
		"last_name":  "Doe",
		"address":    "123 Main St",
		"city":       "Springfield",
		"telephone":  "5551234567",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, body)
	}

	var resp struct {
		ID int `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create owner: missing id body=%s", body)
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
