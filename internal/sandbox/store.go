package sandbox

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gescomph/gescomph-mobile/internal/models"
)

// user es la credencial del sandbox; el backend real maneja roles y
// recuperación de contraseña, aquí alcanza con email + hash + persona.
type user struct {
	ID           uint
	Email        string
	PasswordHash string
	PersonID     uint
}

// Store guarda todo el estado del sandbox en memoria. No hay persistencia
// a propósito: cada arranque parte de los datos de semilla.
type Store struct {
	mu sync.RWMutex

	users          []user
	persons        map[uint]models.Person
	establishments []models.Establishment
	plazas         []models.Plaza
	appointments   []models.Appointment
	contracts      []models.Contract
	obligations    map[uint][]models.ContractObligation
	notifications  []models.Notification
	cities         []models.City
	departments    []models.Department

	nextAppointmentID  uint
	nextNotificationID uint
}

func NewStore() *Store {
	s := &Store{
		persons:           make(map[uint]models.Person),
		obligations:       make(map[uint][]models.ContractObligation),
		nextAppointmentID: 1,
	}
	s.seed()
	return s
}

func hashPassword(plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		panic("sandbox: failed to hash seed password: " + err.Error())
	}
	return string(hashed)
}

func (s *Store) seed() {
	s.departments = []models.Department{
		{ID: 1, Name: "Huila"},
		{ID: 2, Name: "Cundinamarca"},
	}
	s.cities = []models.City{
		{ID: 1, Name: "Neiva", DepartmentID: 1},
		{ID: 2, Name: "Pitalito", DepartmentID: 1},
		{ID: 3, Name: "Bogotá", DepartmentID: 2},
	}

	s.persons[1] = models.Person{
		ID: 1, FirstName: "María", LastName: "Quintero",
		Document: "1075312456", Address: "Cra 5 # 12-34",
		Email: "maria@example.com", Phone: "3114567890", CityID: 1,
	}
	s.persons[2] = models.Person{
		ID: 2, FirstName: "Carlos", LastName: "Perdomo",
		Document: "1075998877", Address: "Cll 8 # 4-21",
		Email: "carlos@example.com", Phone: "3209876543", CityID: 1,
	}

	s.users = []user{
		{ID: 1, Email: "maria@example.com", PasswordHash: hashPassword("maria123"), PersonID: 1},
		{ID: 2, Email: "carlos@example.com", PasswordHash: hashPassword("carlos123"), PersonID: 2},
	}

	s.plazas = []models.Plaza{
		{ID: 1, Name: "Plaza Central", Description: "Plaza de mercado principal", Address: "Cra 4 # 10-20", Active: true},
		{ID: 2, Name: "Plaza del Sur", Active: true},
	}

	s.establishments = []models.Establishment{
		{
			ID: 42, Name: "Local 42", Description: "Local esquinero con bodega",
			AreaM2: 36.5, RentValueBase: 1_450_000, Address: "Plaza Central, módulo A",
			PlazaID: 1, PlazaName: "Plaza Central", Active: true, UvtQty: 29.1,
		},
		{
			ID: 43, Name: "Local 43", Description: "Local interior",
			AreaM2: 18, RentValueBase: 780_000, Address: "Plaza Central, módulo B",
			PlazaID: 1, PlazaName: "Plaza Central", Active: true, UvtQty: 15.6,
		},
		{
			ID: 99, Name: "Local 99", Description: "Bodega amplia",
			AreaM2: 120, RentValueBase: 3_900_000, Address: "Plaza del Sur, bodega 9",
			PlazaID: 2, PlazaName: "Plaza del Sur", Active: true, UvtQty: 78.2,
		},
	}

	s.contracts = []models.Contract{
		{
			ID: 7, FullName: "María Quintero", Document: "1075312456",
			Phone: "3114567890", Email: "maria@example.com",
			StartDate: "2025-01-01", EndDate: "2025-12-31",
			TotalBaseRentAgreed: 1_450_000, TotalUvtQtyAgreed: 29.1,
			Active: true, PersonID: 1,
			PremisesLeased: []models.PremisesLeased{
				{
					ID: 1, EstablishmentID: 42, EstablishmentName: "Local 42",
					Description: "Local esquinero con bodega", AreaM2: 36.5,
					RentValueBase: 1_450_000, Address: "Plaza Central, módulo A",
					PlazaName: "Plaza Central",
				},
			},
		},
	}
	s.obligations[7] = []models.ContractObligation{
		{
			ID: 71, ContractID: 7, Active: true,
			BaseAmount: 1_450_000, VatAmount: 275_500, TotalAmount: 1_725_500,
			DueDate: "2025-02-05", Status: "Pendiente",
			Month: 1, Year: 2025,
			UvtQtyApplied: 29.1, UvtValueApplied: 49_799, VatRateApplied: 0.19,
		},
		{
			ID: 72, ContractID: 7, Active: true,
			BaseAmount: 1_450_000, LateAmount: 36_250, VatAmount: 275_500,
			TotalAmount: 1_761_750, DueDate: "2025-03-05", Status: "Mora",
			DaysLate: 12, Month: 2, Year: 2025,
			UvtQtyApplied: 29.1, UvtValueApplied: 49_799, VatRateApplied: 0.19,
		},
	}

	now := time.Now().Format("2006-01-02T15:04:05")
	s.notifications = []models.Notification{
		{ID: 1, UserID: 1, Title: "Obligación en mora", Message: "La cuota de febrero está vencida", Priority: models.PriorityCritical, CreatedAt: now, UpdatedAt: now},
		{ID: 2, UserID: 1, Title: "Bienvenida", Message: "Su cuenta fue activada", Priority: models.PriorityInfo, IsRead: true, CreatedAt: now, UpdatedAt: now},
	}
	s.nextNotificationID = 3
}

func (s *Store) findUser(email string) (user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return user{}, false
}

func (s *Store) person(id uint) (models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.persons[id]
	return p, ok
}

func (s *Store) updatePerson(in models.PersonUpdate) (models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.persons[in.ID]
	if !ok {
		return models.Person{}, false
	}
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Address = in.Address
	p.Phone = in.Phone
	p.CityID = in.CityID
	s.persons[in.ID] = p
	return p, true
}

func (s *Store) establishment(id uint) (models.Establishment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.establishments {
		if e.ID == id {
			return e, true
		}
	}
	return models.Establishment{}, false
}

// hasConflict detecta una cita activa del mismo establecimiento en la
// misma fecha-hora asignada. Es el candado transaccional que el cliente
// no puede dar por sí solo.
func (s *Store) hasConflict(establishmentID uint, dateTimeAssigned string) bool {
	for _, ap := range s.appointments {
		if ap.Active && ap.EstablishmentID == establishmentID && ap.DateTimeAssigned == dateTimeAssigned {
			return true
		}
	}
	return false
}

func (s *Store) createAppointment(ap models.Appointment) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasConflict(ap.EstablishmentID, ap.DateTimeAssigned) {
		return models.Appointment{}, false
	}

	ap.ID = s.nextAppointmentID
	s.nextAppointmentID++
	s.appointments = append(s.appointments, ap)
	return ap, true
}

func (s *Store) appointmentsByDate(date string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Appointment
	for _, ap := range s.appointments {
		if strings.HasPrefix(ap.DateTimeAssigned, date) {
			out = append(out, ap)
		}
	}
	return out
}

func (s *Store) appointmentsByPerson(personID uint) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.PersonID == personID {
			out = append(out, ap)
		}
	}
	return out
}

func (s *Store) allAppointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment(nil), s.appointments...)
}

func (s *Store) contractsByPerson(personID uint) []models.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Contract
	for _, c := range s.contracts {
		if c.PersonID == personID {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) contract(id uint) (models.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contracts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contract{}, false
}

func (s *Store) contractObligations(id uint) []models.ContractObligation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ContractObligation(nil), s.obligations[id]...)
}

func (s *Store) contractMetrics() models.ContractMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var m models.ContractMetrics
	for _, c := range s.contracts {
		if c.Active {
			m.Active++
		} else {
			m.Inactive++
		}
	}
	m.Total = len(s.contracts)
	return m
}

func (s *Store) obligation(id uint) (models.ContractObligation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obs := range s.obligations {
		for _, o := range obs {
			if o.ID == id {
				return o, true
			}
		}
	}
	return models.ContractObligation{}, false
}

func (s *Store) notificationsFor(userID uint, onlyUnread bool) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if onlyUnread && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (s *Store) markNotificationRead(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return true
		}
	}
	return false
}

func (s *Store) markAllNotificationsRead(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
}

func (s *Store) allEstablishments() []models.Establishment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Establishment(nil), s.establishments...)
}

func (s *Store) allPlazas() []models.Plaza {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Plaza(nil), s.plazas...)
}

func (s *Store) createEstablishment(in models.EstablishmentCreate) models.Establishment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID uint
	for _, e := range s.establishments {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	plazaName := ""
	for _, p := range s.plazas {
		if p.ID == in.PlazaID {
			plazaName = p.Name
		}
	}

	est := models.Establishment{
		ID: maxID + 1, Name: in.Name, Description: in.Description,
		AreaM2: in.AreaM2, UvtQty: in.UvtQty, Address: in.Address,
		PlazaID: in.PlazaID, PlazaName: plazaName, Active: true,
	}
	s.establishments = append(s.establishments, est)
	return est
}

func (s *Store) cityByID(id uint) (models.City, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cities {
		if c.ID == id {
			return c, true
		}
	}
	return models.City{}, false
}

func (s *Store) citiesByDepartment(departmentID uint) []models.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.City
	for _, c := range s.cities {
		if c.DepartmentID == departmentID {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) allDepartments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Department(nil), s.departments...)
}
