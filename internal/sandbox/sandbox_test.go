package sandbox

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/booking"
	"github.com/gescomph/gescomph-mobile/internal/config"
	"github.com/gescomph/gescomph-mobile/internal/diag"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/session"
)

// newSandbox levanta el motor completo sobre httptest y devuelve un
// cliente apuntándole, con la sesión vacía lista para Login.
func newSandbox(t *testing.T) (*api.Client, *session.Session, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore()
	cfg := &config.Config{JWTSecret: "sandbox-test-secret", HTTPTimeout: 2 * time.Second}
	srv := httptest.NewServer(NewEngine(store, cfg))
	t.Cleanup(srv.Close)

	sess := session.New(zap.NewNop())
	client := api.New(srv.URL, cfg.HTTPTimeout, sess, zap.NewNop())
	return client, sess, store
}

func login(t *testing.T, client *api.Client, sess *session.Session, email, password string) {
	t.Helper()
	res := client.Login(context.Background(), models.LoginRequest{Email: email, Password: password})
	if !res.Success {
		t.Fatalf("login %s: %s", email, res.Message)
	}
	sess.Login(res.Data.AccessToken)
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	client, sess, _ := newSandbox(t)
	login(t, client, sess, "maria@example.com", "maria123")

	personID, err := sess.PersonID()
	if err != nil {
		t.Fatalf("PersonID: %v", err)
	}
	if personID != 1 {
		t.Fatalf("expected person 1, got %d", personID)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	client, _, _ := newSandbox(t)

	res := client.Login(context.Background(), models.LoginRequest{
		Email: "maria@example.com", Password: "equivocada",
	})
	if res.Success {
		t.Fatal("wrong password must fail")
	}
	if res.Message != "Credenciales inválidas" {
		t.Fatalf("unexpected message %q", res.Message)
	}

	res = client.Login(context.Background(), models.LoginRequest{
		Email: "sin-arroba", Password: "x",
	})
	if res.Success || res.Message != "Correo electrónico inválido" {
		t.Fatalf("malformed email must fail with format message, got %+v", res)
	}
}

// El viaje completo de una cita: la hora elegida sale corrida a UTC-5,
// el sandbox la guarda en hora local y la disponibilidad del día siguiente
// consulta ya no la ofrece.
func TestBooking_RoundTripRemovesSlot(t *testing.T) {
	client, sess, _ := newSandbox(t)
	login(t, client, sess, "maria@example.com", "maria123")

	dispatcher := diag.NewDispatcher(zap.NewNop())
	t.Cleanup(dispatcher.Close)

	est := client.Establishment(context.Background(), 42)
	if !est.Success {
		t.Fatalf("establishment: %s", est.Message)
	}

	day, _ := time.Parse("2006-01-02", "2025-03-10")
	form := booking.NewFormController(client, sess, dispatcher, zap.NewNop(), est.Data)
	form.Start(context.Background())
	form.SetDescription("Visita al local 42")
	form.SelectDate(context.Background(), day)
	if err := form.SelectSlot("09:00"); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// el sandbox sirve la cita en hora local, no en la corrida
	byDate := client.AppointmentsByDate(context.Background(), "2025-03-10")
	if !byDate.Success || len(byDate.Data) != 1 {
		t.Fatalf("expected one appointment on 2025-03-10: %+v", byDate)
	}
	if got := byDate.Data[0].DateTimeAssigned; got != "2025-03-10T09:00:00" {
		t.Fatalf("stored dateTimeAssigned = %q, want local 09:00", got)
	}

	free := booking.NewAvailability(client, zap.NewNop()).
		FreeSlots(context.Background(), day, 42)
	for _, s := range free {
		if s == "09:00" {
			t.Fatal("09:00 still offered after booking")
		}
	}
	if len(free) != len(booking.SlotCatalog)-1 {
		t.Fatalf("expected %d free slots, got %d", len(booking.SlotCatalog)-1, len(free))
	}

	// otro establecimiento no se ve afectado
	other := booking.NewAvailability(client, zap.NewNop()).
		FreeSlots(context.Background(), day, 99)
	if len(other) != len(booking.SlotCatalog) {
		t.Fatalf("establishment 99 must keep the full catalog, got %d", len(other))
	}
}

func TestBooking_ConflictReturnsSpanishMessage(t *testing.T) {
	client, sess, _ := newSandbox(t)
	login(t, client, sess, "maria@example.com", "maria123")

	payload := models.AppointmentCreate{
		Description:      "Visita",
		RequestDate:      "2025-03-01T08:00:00",
		DateTimeAssigned: "2025-03-10T04:00:00", // 09:00 hora local
		EstablishmentID:  42,
		Active:           true,
	}

	first := client.CreateAppointment(context.Background(), payload)
	if !first.Success {
		t.Fatalf("first create: %s", first.Message)
	}

	second := client.CreateAppointment(context.Background(), payload)
	if second.Success {
		t.Fatal("double booking must be rejected")
	}
	if second.Message != "El horario seleccionado ya no está disponible" {
		t.Fatalf("unexpected conflict message %q", second.Message)
	}
}

func TestSecuredRoutes_RequireToken(t *testing.T) {
	client, _, _ := newSandbox(t)

	res := client.MyContracts(context.Background())
	if res.Success {
		t.Fatal("contract/mine without token must fail")
	}
	if !strings.Contains(res.Message, "autorización") {
		t.Fatalf("expected auth message, got %q", res.Message)
	}
}

func TestContracts_MineAndObligations(t *testing.T) {
	client, sess, _ := newSandbox(t)
	login(t, client, sess, "maria@example.com", "maria123")

	mine := client.MyContracts(context.Background())
	if !mine.Success || len(mine.Data) != 1 || mine.Data[0].ID != 7 {
		t.Fatalf("expected contract 7: %+v", mine)
	}

	obligations := client.ContractObligations(context.Background(), 7)
	if !obligations.Success || len(obligations.Data) != 2 {
		t.Fatalf("expected 2 obligations: %+v", obligations)
	}
	if obligations.Data[1].Status != "Mora" || obligations.Data[1].DaysLate != 12 {
		t.Fatalf("late obligation lost its state: %+v", obligations.Data[1])
	}

	checkout := client.ObligationCheckout(context.Background(), 71)
	if !checkout.Success {
		t.Fatalf("checkout: %s", checkout.Message)
	}
	if checkout.Data.CheckoutURL == "" || checkout.Data.Reference == "" {
		t.Fatalf("checkout without destination: %+v", checkout.Data)
	}

	// al cambiar de identidad, mine cambia con ella
	login(t, client, sess, "carlos@example.com", "carlos123")
	mine = client.MyContracts(context.Background())
	if !mine.Success || len(mine.Data) != 0 {
		t.Fatalf("carlos must have no contracts: %+v", mine)
	}
}

func TestPerson_UpdateIsSelfOnly(t *testing.T) {
	client, sess, _ := newSandbox(t)
	login(t, client, sess, "maria@example.com", "maria123")

	res := client.UpdatePerson(context.Background(), models.PersonUpdate{
		ID: 1, FirstName: "María José", LastName: "Quintero",
		Address: "Cra 9 # 1-10", Phone: "3110000000", CityID: 2,
	})
	if !res.Success {
		t.Fatalf("update self: %s", res.Message)
	}
	if res.Data.FirstName != "María José" || res.Data.CityID != 2 {
		t.Fatalf("update not applied: %+v", res.Data)
	}

	other := client.UpdatePerson(context.Background(), models.PersonUpdate{
		ID: 2, FirstName: "Hackeado",
	})
	if other.Success {
		t.Fatal("editing another person must be forbidden")
	}
	if other.Message != "No puede editar otra persona" {
		t.Fatalf("unexpected message %q", other.Message)
	}
}

func TestNotifications_UnreadAndMarkAll(t *testing.T) {
	client, sess, _ := newSandbox(t)
	login(t, client, sess, "maria@example.com", "maria123")

	unread := client.UnreadNotifications(context.Background(), 1)
	if !unread.Success || len(unread.Data) != 1 {
		t.Fatalf("expected one unread notification: %+v", unread)
	}
	if unread.Data[0].Priority != models.PriorityCritical {
		t.Fatalf("expected critical priority, got %q", unread.Data[0].Priority)
	}

	if res := client.MarkAllNotificationsRead(context.Background(), 1); !res.Success {
		t.Fatalf("mark all: %s", res.Message)
	}

	unread = client.UnreadNotifications(context.Background(), 1)
	if !unread.Success || len(unread.Data) != 0 {
		t.Fatalf("expected zero unread after mark-all: %+v", unread)
	}

	feed := client.NotificationFeed(context.Background(), 1)
	if !feed.Success || len(feed.Data) != 2 {
		t.Fatalf("feed must keep read notifications: %+v", feed)
	}
}

func TestCatalog_CitiesAndDepartments(t *testing.T) {
	client, _, _ := newSandbox(t)

	departments := client.Departments(context.Background())
	if !departments.Success || len(departments.Data) != 2 {
		t.Fatalf("expected 2 departments: %+v", departments)
	}

	cities := client.CitiesByDepartment(context.Background(), 1)
	if !cities.Success || len(cities.Data) != 2 {
		t.Fatalf("expected 2 cities in Huila: %+v", cities)
	}

	city := client.City(context.Background(), 3)
	if !city.Success || city.Data.Name != "Bogotá" {
		t.Fatalf("expected Bogotá: %+v", city)
	}
}
