package api

import (
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/surfagenda/backend/catalog"
	"bitbucket.org/surfagenda/backend/config"
	"bitbucket.org/surfagenda/backend/helpers"
	"bitbucket.org/surfagenda/backend/middlewares"
	"bitbucket.org/surfagenda/backend/models"
	"github.com/gorilla/schema"
	"github.com/thedevsaddam/govalidator"
)

func CalendarOpts(conf config.Configuration) helpers.CalendarOpts {
	return helpers.CalendarOpts{
		Name:     conf.AppName,
		Year:     conf.Festival.Year,
		Location: conf.Location(),
		Duration: conf.EventDuration(),
		Stamp:    time.Now(),
	}
}

// ScheduleCriteria widens criteria with no selected days to the whole
// festival.
func ScheduleCriteria(storage catalog.DayStorage, criteria models.Criteria) models.Criteria {
	if len(criteria.SelectedDays) > 0 {
		return criteria
	}
	days := []string{}
	for _, day := range storage.GetDays() {
		days = append(days, day.Code)
	}
	return criteria.SetSelectedDays(days)
}

// GetSchedule downloads the listings matching the /events query parameters
// as a calendar.
func GetSchedule(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	lang := middlewares.RequestLanguage(r)
	v := govalidator.New(govalidator.Options{
		Request: r,
		Rules:   models.GetEventsRules,
	})
	if errs := v.Validate(); len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, middlewares.Responses.FailedValidations.In(lang))
		return
	}

	var opts models.GetEventsOpts
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&opts, r.URL.Query()); err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, middlewares.Responses.FailedValidations.In(lang))
		return
	}

	criteria := ScheduleCriteria(ctx.Catalog, opts.ToCriteria(ctx.Catalog.PriceCeiling()))
	body, err := helpers.BuildCalendar(ctx.Catalog.Query(criteria), CalendarOpts(ctx.Config))
	if err != nil {
		w.WriteJSON(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError.In(lang))
		return
	}

	w.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", helpers.ConstCalendarFileName))
	w.Bytes(http.StatusOK, helpers.ConstCalendarMIME, []byte(body))
}

// SendItinerary mails events to a visitor with the calendar attached.
func SendItinerary(ctx *config.AppContext, opts models.ItineraryOpts, events []models.Event) error {
	body, err := helpers.BuildCalendar(events, CalendarOpts(ctx.Config))
	if err != nil {
		return err
	}

	email := helpers.EmailData{
		EmailTo:      opts.Email,
		NameTo:       opts.Name,
		EmailFrom:    ctx.Config.Mail.EmailFrom,
		NameFrom:     ctx.Config.Mail.NameFrom,
		Subject:      ctx.Config.Mail.Subject,
		TemplatePath: ctx.Config.Mail.Template,
		FileName:     helpers.ConstCalendarFileName,
		FileContent:  []byte(body),
		AwsSMTP:      ctx.AwsSMTP,
		Sender:       ctx.MailSender,
	}

	return email.SendEmail(map[string]interface{}{
		"Name":   opts.Name,
		"Events": models.NewEventViews(events),
	})
}
