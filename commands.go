package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"bitbucket.org/surfagenda/backend/api"
	"bitbucket.org/surfagenda/backend/helpers"
	"bitbucket.org/surfagenda/backend/models"
	"bitbucket.org/surfagenda/backend/server"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func filterFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "days, d", Usage: "comma separated days of the month, e.g. 19,20"},
		cli.StringFlag{Name: "active-day", Usage: "show only this one of the selected days"},
		cli.StringFlag{Name: "artist", Usage: "exact listing title"},
		cli.IntFlag{Name: "price-min", Usage: "lowest minimum price"},
		cli.IntFlag{Name: "price-max", Usage: "highest minimum price"},
		cli.StringFlag{Name: "time", Usage: "comma separated morning, afternoon, evening, late_night, unspecified"},
		cli.StringFlag{Name: "venue", Usage: "comma separated venue names"},
		cli.StringFlag{Name: "sort, s", Value: string(models.SortByTime), Usage: "time, price or artist"},
	}
}

// loadContext builds the app context the commands share. No server is started.
func loadContext() *server.ContextWrapper {
	wrapper := server.GetAppContext()
	wrapper.CreateCatalog()
	wrapper.CreateSession()
	return wrapper
}

// criteriaFromFlags builds criteria the way the /events endpoint does.
func criteriaFromFlags(c *cli.Context, priceCeiling int) (models.Criteria, error) {
	opts := models.GetEventsOpts{
		Days:      helpers.SplitCSV(c.String("days")),
		ActiveDay: c.String("active-day"),
		Artist:    c.String("artist"),
		Time:      helpers.SplitCSV(c.String("time")),
		Venues:    helpers.SplitCSV(c.String("venue")),
		Sort:      c.String("sort"),
	}
	if c.IsSet("price-min") {
		min := c.Int("price-min")
		opts.PriceMin = &min
	}
	if c.IsSet("price-max") {
		max := c.Int("price-max")
		opts.PriceMax = &max
	}

	for _, category := range opts.Time {
		if !models.TimeCategory(category).Valid() {
			return models.Criteria{}, errors.Errorf("unknown time of day %q", category)
		}
	}
	if opts.Sort != "" && !models.SortKey(opts.Sort).Valid() {
		return models.Criteria{}, errors.Errorf("unknown sort %q", opts.Sort)
	}

	return opts.ToCriteria(priceCeiling), nil
}

func listDays(c *cli.Context) error {
	wrapper := loadContext()
	for _, day := range wrapper.Context.Catalog.GetDays() {
		fmt.Printf("%-3s %-8s %d\n", day.Code, day.Label, day.Events)
	}
	return nil
}

func browse(c *cli.Context) error {
	wrapper := loadContext()
	storage := wrapper.Context.Catalog

	criteria, err := criteriaFromFlags(c, storage.PriceCeiling())
	if err != nil {
		return err
	}
	result := storage.Search(criteria)

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if result.EmptyState != models.EmptyStateNone {
		fmt.Printf("%s (%s)\n", result.Message, result.EmptyState)
	}
	for _, e := range result.Events {
		fmt.Println(helpers.FormatEventLine(e))
	}
	fmt.Printf("\n%d evento(s), %d filtro(s) ativo(s)\n", result.Total, result.ActiveFilters)

	categories := []string{}
	for _, category := range result.Facets.TimeCategories {
		categories = append(categories, category.Label())
	}
	fmt.Printf("Artistas: %s\n", strings.Join(result.Facets.Artists, ", "))
	fmt.Printf("Locais: %s\n", strings.Join(result.Facets.Venues, ", "))
	fmt.Printf("Horários: %s\n", strings.Join(categories, ", "))
	return nil
}

func export(c *cli.Context) error {
	wrapper := loadContext()
	ctx := wrapper.Context

	criteria, err := criteriaFromFlags(c, ctx.Catalog.PriceCeiling())
	if err != nil {
		return err
	}
	events := ctx.Catalog.Query(api.ScheduleCriteria(ctx.Catalog, criteria))
	body, err := helpers.BuildCalendar(events, api.CalendarOpts(ctx.Config))
	if err != nil {
		return err
	}

	output := c.String("output")
	if output == "-" {
		_, err := fmt.Fprint(os.Stdout, body)
		return err
	}
	if err := os.WriteFile(output, []byte(body), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", output)
	}
	log.WithFields(log.Fields{"events": len(events), "file": output}).Info("calendar exported")

	if !c.Bool("upload") {
		return nil
	}
	wrapper.CreateNewSessionS3()
	if ctx.AwsS3 == nil {
		return errors.New("S3_BUCKET is not set")
	}
	url, err := helpers.AddFileToS3(context.Background(), s3manager.NewUploader(ctx.AwsS3), helpers.S3File{
		Bucket:      ctx.Config.AwsS3.S3Bucket,
		Key:         path.Join(ctx.Config.AwsS3.S3PathCalendar, path.Base(output)),
		ContentType: helpers.ConstCalendarMIME,
		Content:     []byte(body),
	})
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

func itinerary(c *cli.Context) error {
	wrapper := loadContext()
	wrapper.CreateSMTPConnection()
	ctx := wrapper.Context
	if ctx.AwsSMTP == nil {
		return errors.New("SMTP_HOST is not set")
	}
	if c.String("to") == "" {
		return errors.New("--to is required")
	}

	criteria, err := criteriaFromFlags(c, ctx.Catalog.PriceCeiling())
	if err != nil {
		return err
	}
	events := ctx.Catalog.Query(api.ScheduleCriteria(ctx.Catalog, criteria))
	opts := models.ItineraryOpts{Email: c.String("to"), Name: c.String("name")}
	if err := api.SendItinerary(ctx, opts, events); err != nil {
		return err
	}
	log.WithFields(log.Fields{"events": len(events), "to": opts.Email}).Info("itinerary sent")
	return nil
}
