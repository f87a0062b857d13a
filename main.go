package main

import (
	"log"
	"os"
	"time"

	"bitbucket.org/surfagenda/backend/api"
	"bitbucket.org/surfagenda/backend/server"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

// @title surfagenda API
// @version 0.1
// @description Browse the surf music week listings.

// @BasePath /
// @schemes http https

func main() {
	_ = godotenv.Load("dev.env")

	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "surfagenda"
	app.Usage = "Browse the surf music week listings"
	app.Version = "1.00"
	app.Compiled = time.Now()
	app.Commands = []cli.Command{
		{
			Name:  "agenda-up",
			Usage: "This command starts the agenda service",
			Action: func(c *cli.Context) error {
				StartServer(api.GetRoutes())
				return nil
			},
		},
		{
			Name:   "days",
			Usage:  "Lists the festival days and how many listings each has",
			Action: listDays,
		},
		{
			Name:   "browse",
			Usage:  "Filters and sorts the listings",
			Flags:  append(filterFlags(), cli.BoolFlag{Name: "json", Usage: "print the full result as JSON"}),
			Action: browse,
		},
		{
			Name:  "export",
			Usage: "Writes the filtered listings as an iCalendar file",
			Flags: append(filterFlags(),
				cli.StringFlag{Name: "output, o", Value: "agenda.ics", Usage: "file to write, - for stdout"},
				cli.BoolFlag{Name: "upload", Usage: "also upload the file to S3_BUCKET"},
			),
			Action: export,
		},
		{
			Name:  "itinerary",
			Usage: "Mails the filtered listings with the calendar attached",
			Flags: append(filterFlags(),
				cli.StringFlag{Name: "to", Usage: "recipient address"},
				cli.StringFlag{Name: "name", Usage: "recipient name"},
			),
			Action: itinerary,
		},
	}
	return app
}

func StartServer(routes []*server.Route) {
	ctx := server.GetAppContext()
	ctx.CreateCatalog()
	ctx.CreateSession()
	ctx.CreateSMTPConnection()
	ctx.CreateNewSessionS3()

	server.UpServer(routes, ctx)
}
