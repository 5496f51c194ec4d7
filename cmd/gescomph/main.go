package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gescomph/gescomph-mobile/internal/api"
	"github.com/gescomph/gescomph-mobile/internal/config"
	"github.com/gescomph/gescomph-mobile/internal/logging"
	"github.com/gescomph/gescomph-mobile/internal/session"
)

// app reúne lo que toda orden necesita: configuración, logger y la
// sesión armada desde --token o GESCOMPH_TOKEN.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	token string
}

func (a *app) session() *session.Session {
	s := session.New(a.log)
	if a.token != "" {
		s.Login(a.token)
	}
	return s
}

func (a *app) client(s *session.Session) *api.Client {
	return api.New(a.cfg.APIBaseURL, a.cfg.HTTPTimeout, s, a.log)
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, log: logger}

	root := &cobra.Command{
		Use:          "gescomph",
		Short:        "Cliente de GESCOMPH: locales, citas, contratos y pagos",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.token == "" {
				a.token = os.Getenv("GESCOMPH_TOKEN")
			}
		},
	}
	root.PersistentFlags().StringVar(&a.token, "token", "", "bearer token de la sesión")

	root.AddCommand(
		newSandboxCmd(a),
		newLoginCmd(a),
		newEstablishmentsCmd(a),
		newBookCmd(a),
		newAppointmentsCmd(a),
		newContractsCmd(a),
		newObligationsCmd(a),
		newNotificationsCmd(a),
		newProfileCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
