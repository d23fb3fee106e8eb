package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "moonticket"
	s.app.Usage = "Moonticket lottery backend"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of an optional TOML config file",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	s.app.Before = s.loadConfig
	s.app.After = s.unload
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used to serve the http api of the lottery.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database",
			Category:    "Database",
			Description: `Used to create or upgrade the tables of the service.`,
		},
		{
			Action:   s.startOpenDraw,
			Name:     "open-draw",
			Usage:    "Open the draw of the active window",
			Category: "Draw",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "at", Usage: "RFC3339 instant inside the window, now if empty"},
			},
			Description: `Used by the scheduler at every draw boundary. It is idempotent.`,
		},
		{
			Action:   s.startRecordDraw,
			Name:     "record-draw",
			Usage:    "Record the outcome of a closed draw",
			Category: "Draw",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "draw-id", Required: true},
				&cli.IntSliceFlag{Name: "numbers", Required: true, Usage: "The four winning main numbers"},
				&cli.IntFlag{Name: "moonball", Required: true},
				&cli.StringFlag{Name: "jackpot-usd", Value: "0"},
				&cli.StringSliceFlag{Name: "winner", Usage: "Wallet of a winner, can be repeated"},
			},
			Description: `Used once per draw, a recorded outcome cannot be changed.`,
		},
		{
			Action:   s.startSettleReward,
			Name:     "settle-reward",
			Usage:    "List pending rewards or settle one of them",
			Category: "Reward",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Usage: "Pay reward id, list pending rewards if empty"},
				&cli.StringFlag{Name: "status", Usage: "One of pending, sent or failed"},
				&cli.StringFlag{Name: "tx-signature", Usage: "Signature of the payout transaction"},
			},
			Description: `Used by the payout operator to report the result of a disbursement.`,
		},
	}
}
