// Command freelance is the CLI front-end: same services as the web server,
// driven by flag-based subcommands.
//
//	freelance client {add,list,show,edit,delete}
//	freelance devis {create,list,statut,convert,pdf,delete}
//	freelance facture {create,list,statut,pdf,delete}
//	freelance contrat {generate,list,delete}
//	freelance stats [--annee Y]
//	freelance export {csv,excel} [--annee Y]
//	freelance reset {--compteurs | --all} --force
//
// Exit codes: 0 success, 1 validation failure or not found, 2 usage error.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/db"
	"github.com/diewo77/freelance-manager/internal/render"
	"github.com/diewo77/freelance-manager/internal/services"
)

const usage = `Usage: freelance <commande> [options]

Commandes:
  client   {add,list,show,edit,delete}
  devis    {create,list,statut,convert,pdf,delete}
  facture  {create,list,statut,pdf,delete}
  contrat  {generate,list,delete}
  stats    [--annee Y]
  export   {csv,excel} [--annee Y] [--type T]
  reset    {--compteurs | --all} --force
`

// app bundles everything a subcommand needs.
type app struct {
	db       *gorm.DB
	cfg      config.Config
	profile  config.Profile
	clients  *services.ClientService
	devis    *services.DevisService
	factures *services.FactureService
	contrats *services.ContratService
	stats    *services.StatsService
	reset    *services.ResetService
	renderer *render.Renderer
}

func newApp() (*app, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	conn, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	profile, err := config.LoadProfile(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	numbering := services.NewNumberingService()
	return &app{
		db:       conn,
		cfg:      cfg,
		profile:  profile,
		clients:  services.NewClientService(conn),
		devis:    services.NewDevisService(conn, numbering),
		factures: services.NewFactureService(conn, numbering, profile.DelaiPaiement),
		contrats: services.NewContratService(conn, numbering),
		stats:    services.NewStatsService(conn, profile.SeuilCA),
		reset:    services.NewResetService(conn),
		renderer: render.New(cfg.OutputDir, profile),
	}, nil
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	a, err := newApp()
	if err != nil {
		log.Printf("Erreur: %v", err)
		os.Exit(1)
	}

	var runErr error
	switch os.Args[1] {
	case "client":
		runErr = a.runClient(os.Args[2:])
	case "devis":
		runErr = a.runDevis(os.Args[2:])
	case "facture":
		runErr = a.runFacture(os.Args[2:])
	case "contrat":
		runErr = a.runContrat(os.Args[2:])
	case "stats":
		runErr = a.runStats(os.Args[2:])
	case "export":
		runErr = a.runExport(os.Args[2:])
	case "reset":
		runErr = a.runReset(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "commande inconnue: %s\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if runErr != nil {
		if runErr == errUsage {
			os.Exit(2)
		}
		log.Printf("Erreur: %v", runErr)
		os.Exit(1)
	}
}

// errUsage marks a bad invocation (exit 2) as opposed to a domain failure (exit 1).
var errUsage = fmt.Errorf("usage error")

func subUsage(msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	return errUsage
}
