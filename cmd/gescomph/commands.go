package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gescomph/gescomph-mobile/internal/booking"
	"github.com/gescomph/gescomph-mobile/internal/dashboard"
	"github.com/gescomph/gescomph-mobile/internal/diag"
	"github.com/gescomph/gescomph-mobile/internal/models"
	"github.com/gescomph/gescomph-mobile/internal/profile"
	"github.com/gescomph/gescomph-mobile/internal/sandbox"
	"github.com/gescomph/gescomph-mobile/internal/validators"
)

func newSandboxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sandbox",
		Short: "Levanta el backend local de pruebas",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := sandbox.NewStore()
			engine := sandbox.NewEngine(store, a.cfg)
			fmt.Printf("Sandbox escuchando en %s\n", a.cfg.SandboxAddr())
			return engine.Run(a.cfg.SandboxAddr())
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión e imprime el token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validators.IsEmailFormatValid(email) {
				return fmt.Errorf("correo electrónico inválido")
			}
			if !validators.IsEmailDomainValid(email) {
				// solo advertencia: el backend decide
				fmt.Println("Aviso: el dominio del correo no resuelve en DNS")
			}

			client := a.client(a.session())
			res := client.Login(cmd.Context(), models.LoginRequest{Email: email, Password: password})
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}

			fmt.Println(res.Data.Message)
			fmt.Printf("Token: %s\nExpira: %s\n", res.Data.AccessToken, res.Data.ExpiresAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newEstablishmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "establishments",
		Short: "Lista los locales disponibles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client(a.session())
			res := client.Establishments(cmd.Context())
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}

			for _, e := range res.Data {
				fmt.Printf("#%d  %-20s %6.1f m²  $%.0f  %s (%s)\n",
					e.ID, e.Name, e.AreaM2, e.RentValueBase, e.Address, e.PlazaName)
			}
			return nil
		},
	}
}

func newBookCmd(a *app) *cobra.Command {
	var (
		establishmentID uint
		date            string
		slot            string
		description     string
		observation     string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Agenda una cita de visita a un local",
		Long: "Sin --slot muestra las horas libres del día elegido; con --slot " +
			"agenda la cita en esa hora.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session()
			client := a.client(sess)

			estRes := client.Establishment(cmd.Context(), establishmentID)
			if !estRes.Success {
				return fmt.Errorf("%s", estRes.Message)
			}

			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("fecha inválida, use YYYY-MM-DD")
			}

			dispatcher := diag.NewDispatcher(a.log)
			defer dispatcher.Close()

			form := booking.NewFormController(client, sess, dispatcher, a.log, estRes.Data)
			form.Start(cmd.Context())
			form.SetDescription(description)
			form.SetObservation(observation)
			form.SelectDate(cmd.Context(), day)

			snap := form.Snapshot()
			if slot == "" {
				fmt.Printf("Horas libres para %s el %s:\n", estRes.Data.Name, date)
				for _, s := range snap.Available {
					fmt.Println("  " + s)
				}
				return nil
			}

			if err := form.SelectSlot(slot); err != nil {
				return fmt.Errorf("la hora %s no está disponible", slot)
			}
			if err := form.Submit(cmd.Context()); err != nil {
				return err
			}

			fmt.Println(booking.MsgSubmitOK)
			return nil
		},
	}

	cmd.Flags().UintVar(&establishmentID, "establishment", 0, "id del local")
	cmd.Flags().StringVar(&date, "date", "", "fecha de la visita (YYYY-MM-DD)")
	cmd.Flags().StringVar(&slot, "slot", "", "hora elegida (HH:MM)")
	cmd.Flags().StringVar(&description, "description", "", "motivo de la cita")
	cmd.Flags().StringVar(&observation, "observation", "", "observación opcional")
	_ = cmd.MarkFlagRequired("establishment")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newAppointmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "Muestra el tablero: contratos, métricas y citas propias",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session()
			loader := dashboard.NewLoader(a.client(sess), sess, a.log)

			summary, err := loader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("inicie sesión primero: %v", err)
			}

			fmt.Printf("Contratos: %d activos, %d inactivos, %d en total\n",
				summary.Metrics.Active, summary.Metrics.Inactive, summary.Metrics.Total)
			for _, ap := range summary.Appointments {
				estado := "cancelada"
				if ap.Active {
					estado = "activa"
				}
				fmt.Printf("#%d  %s  %s  %s (%s)\n",
					ap.ID, ap.DateTimeAssigned, ap.EstablishmentName, ap.Description, estado)
			}
			return nil
		},
	}
}

func newContractsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contracts",
		Short: "Lista los contratos del usuario",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client(a.session())
			res := client.MyContracts(cmd.Context())
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}

			for _, c := range res.Data {
				fmt.Printf("#%d  %s  %s → %s  $%.0f\n",
					c.ID, c.FullName, c.StartDate, c.EndDate, c.TotalBaseRentAgreed)
				for _, p := range c.PremisesLeased {
					fmt.Printf("    local %s (%s)\n", p.EstablishmentName, p.PlazaName)
				}
			}
			return nil
		},
	}
}

func newObligationsCmd(a *app) *cobra.Command {
	var pay uint

	cmd := &cobra.Command{
		Use:   "obligations <contractId>",
		Short: "Lista las obligaciones de un contrato; --pay inicia el pago de una",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var contractID uint
			if _, err := fmt.Sscanf(args[0], "%d", &contractID); err != nil {
				return fmt.Errorf("contractId inválido")
			}

			client := a.client(a.session())

			if pay != 0 {
				res := client.ObligationCheckout(cmd.Context(), pay)
				if !res.Success {
					return fmt.Errorf("%s", res.Message)
				}
				fmt.Printf("Pague en: %s\n", res.Data.CheckoutURL)
				return nil
			}

			res := client.ContractObligations(cmd.Context(), contractID)
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}
			for _, o := range res.Data {
				fmt.Printf("#%d  %02d/%d  vence %s  $%.0f  %s",
					o.ID, o.Month, o.Year, o.DueDate, o.TotalAmount, o.Status)
				if o.DaysLate > 0 {
					fmt.Printf("  (%d días de mora)", o.DaysLate)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&pay, "pay", 0, "id de la obligación a pagar")
	return cmd
}

func newNotificationsCmd(a *app) *cobra.Command {
	var unreadOnly bool
	var markRead uint
	var markAll bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Muestra y administra las notificaciones del usuario",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session()
			client := a.client(sess)

			userID, err := sess.PersonID()
			if err != nil {
				return fmt.Errorf("inicie sesión primero: %v", err)
			}

			if markRead != 0 {
				if res := client.MarkNotificationRead(cmd.Context(), markRead); !res.Success {
					return fmt.Errorf("%s", res.Message)
				}
				return nil
			}
			if markAll {
				if res := client.MarkAllNotificationsRead(cmd.Context(), userID); !res.Success {
					return fmt.Errorf("%s", res.Message)
				}
				return nil
			}

			var res = client.NotificationFeed(cmd.Context(), userID)
			if unreadOnly {
				res = client.UnreadNotifications(cmd.Context(), userID)
			}
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}

			for _, n := range res.Data {
				mark := " "
				if !n.IsRead {
					mark = "*"
				}
				fmt.Printf("%s #%d [%s] %s — %s\n", mark, n.ID, n.Priority, n.Title, n.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "solo las no leídas")
	cmd.Flags().UintVar(&markRead, "read", 0, "marca una notificación como leída")
	cmd.Flags().BoolVar(&markAll, "read-all", false, "marca todas como leídas")
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var firstName, lastName, address, phone string
	var cityID uint

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Muestra o edita la ficha personal",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session()
			editor := profile.NewEditor(a.client(sess), sess, a.log)

			person, err := editor.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("inicie sesión primero: %v", err)
			}

			if firstName == "" && lastName == "" && address == "" && phone == "" && cityID == 0 {
				fmt.Printf("%s %s\nDocumento: %s\nDirección: %s\nCorreo: %s\nTeléfono: %s\n",
					person.FirstName, person.LastName, person.Document,
					person.Address, person.Email, person.Phone)
				if city, err := editor.City(cmd.Context(), person.CityID); err == nil {
					fmt.Printf("Ciudad: %s\n", city.Name)
				}
				return nil
			}

			update := models.PersonUpdate{
				ID:        person.ID,
				FirstName: person.FirstName,
				LastName:  person.LastName,
				Address:   person.Address,
				Phone:     person.Phone,
				CityID:    person.CityID,
			}
			if firstName != "" {
				update.FirstName = firstName
			}
			if lastName != "" {
				update.LastName = lastName
			}
			if address != "" {
				update.Address = address
			}
			if phone != "" {
				update.Phone = phone
			}
			if cityID != 0 {
				update.CityID = cityID
			}

			if err := editor.Save(cmd.Context(), update); err != nil {
				return err
			}
			fmt.Println("Perfil actualizado")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "nombres")
	cmd.Flags().StringVar(&lastName, "last-name", "", "apellidos")
	cmd.Flags().StringVar(&address, "address", "", "dirección")
	cmd.Flags().StringVar(&phone, "phone", "", "teléfono")
	cmd.Flags().UintVar(&cityID, "city", 0, "id de la ciudad")
	return cmd
}
