package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/httperr"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/session"
)

func newEditor(t *testing.T, mux *http.ServeMux) (*Editor, *atomic.Int32) {
	t.Helper()

	var updates atomic.Int32
	mux.HandleFunc("/person/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			updates.Add(1)
			var req models.PersonUpdate
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(models.Person{
				ID: req.ID, FirstName: req.FirstName, LastName: req.LastName,
				Address: req.Address, Phone: req.Phone, CityID: req.CityID,
			})
			return
		}
		_ = json.NewEncoder(w).Encode(models.Person{
			ID: 5, FirstName: "María", LastName: "Quintero", CityID: 1,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"person_id": 5})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sess := session.New(zap.NewNop())
	sess.Login(signed)

	client := api.New(srv.URL, time.Second, sess, zap.NewNop())
	return NewEditor(client, sess, zap.NewNop()), &updates
}

func TestLoad_ReturnsOwnPerson(t *testing.T) {
	editor, _ := newEditor(t, http.NewServeMux())

	person, err := editor.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if person.ID != 5 || person.FirstName != "María" {
		t.Fatalf("wrong person: %+v", person)
	}
}

func TestSave_LocalValidationSkipsNetwork(t *testing.T) {
	editor, updates := newEditor(t, http.NewServeMux())

	cases := []models.PersonUpdate{
		{ID: 5, LastName: "Quintero", CityID: 1},                     // sin nombres
		{ID: 5, FirstName: "María", CityID: 1},                       // sin apellidos
		{ID: 5, FirstName: "María", LastName: "Quintero"},            // sin ciudad
		{ID: 5, FirstName: "   ", LastName: "Quintero", CityID: 1},   // nombres en blanco
	}
	for _, in := range cases {
		if err := editor.Save(context.Background(), in); !httperr.IsBusiness(err, "campos_obligatorios") {
			t.Errorf("Save(%+v) = %v, want campos_obligatorios", in, err)
		}
	}

	if got := updates.Load(); got != 0 {
		t.Fatalf("invalid saves must not PUT, saw %d", got)
	}

	valid := models.PersonUpdate{ID: 5, FirstName: "María", LastName: "Quintero", CityID: 2}
	if err := editor.Save(context.Background(), valid); err != nil {
		t.Fatalf("valid save: %v", err)
	}
	if got := updates.Load(); got != 1 {
		t.Fatalf("expected exactly one PUT, saw %d", got)
	}
}

func TestCitySelector(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/department", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Department{{ID: 1, Name: "Huila"}})
	})
	mux.HandleFunc("/city/by-department/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.City{
			{ID: 1, Name: "Neiva", DepartmentID: 1},
			{ID: 2, Name: "Pitalito", DepartmentID: 1},
		})
	})
	editor, _ := newEditor(t, mux)

	departments, err := editor.Departments(context.Background())
	if err != nil || len(departments) != 1 {
		t.Fatalf("Departments = %v, %v", departments, err)
	}

	cities, err := editor.CitiesByDepartment(context.Background(), 1)
	if err != nil || len(cities) != 2 {
		t.Fatalf("CitiesByDepartment = %v, %v", cities, err)
	}
}

func TestCity_NotFoundIsBusinessError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/city/9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Ciudad no encontrada"})
	})
	editor, _ := newEditor(t, mux)

	if _, err := editor.City(context.Background(), 9); !httperr.IsBusiness(err, "city_not_found") {
		t.Fatalf("expected city_not_found, got %v", err)
	}
}
