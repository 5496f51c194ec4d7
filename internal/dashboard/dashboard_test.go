package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/session"
)

func loggedInSession(t *testing.T, personID uint) *session.Session {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"person_id": personID})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	s := session.New(zap.NewNop())
	s.Login(signed)
	return s
}

func TestLoad_RequiresIdentity(t *testing.T) {
	sess := session.New(zap.NewNop())
	client := api.New("http://localhost:1", time.Second, sess, zap.NewNop())
	loader := NewLoader(client, sess, zap.NewNop())

	if _, err := loader.Load(context.Background()); !errors.Is(err, session.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestLoad_AggregatesAllBlocks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contract/metrics", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ContractMetrics{Active: 2, Inactive: 1, Total: 3})
	})
	mux.HandleFunc("/contract/mine", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Contract{{ID: 7, FullName: "María Quintero"}})
	})
	mux.HandleFunc("/Appointment/GetByPersonId", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("personId"); got != "5" {
			t.Errorf("personId = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]models.Appointment{{ID: 1, Description: "Visita"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess := loggedInSession(t, 5)
	loader := NewLoader(api.New(srv.URL, time.Second, sess, zap.NewNop()), sess, zap.NewNop())

	summary, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if summary.Metrics.Active != 2 || summary.Metrics.Total != 3 {
		t.Errorf("metrics lost: %+v", summary.Metrics)
	}
	if len(summary.Contracts) != 1 || summary.Contracts[0].ID != 7 {
		t.Errorf("contracts lost: %+v", summary.Contracts)
	}
	if len(summary.Appointments) != 1 {
		t.Errorf("appointments lost: %+v", summary.Appointments)
	}
}

// Un bloque caído no tumba el tablero: los demás llegan igual.
func TestLoad_DegradesPerBlock(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contract/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/contract/mine", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Contract{{ID: 7}})
	})
	mux.HandleFunc("/Appointment/GetByPersonId", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess := loggedInSession(t, 5)
	loader := NewLoader(api.New(srv.URL, time.Second, sess, zap.NewNop()), sess, zap.NewNop())

	summary, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load must not fail on block errors: %v", err)
	}
	if summary.Metrics.Total != 0 {
		t.Errorf("failed metrics must stay zero: %+v", summary.Metrics)
	}
	if len(summary.Contracts) != 1 {
		t.Errorf("healthy block lost: %+v", summary.Contracts)
	}
	if len(summary.Appointments) != 0 {
		t.Errorf("failed appointments must stay empty: %+v", summary.Appointments)
	}
}
