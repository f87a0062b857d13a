package api

import (
	"net/http"

	"bitbucket.org/surfagenda/backend/config"
	"bitbucket.org/surfagenda/backend/middlewares"
	"bitbucket.org/surfagenda/backend/models"
	"github.com/gorilla/mux"
	"github.com/thedevsaddam/govalidator"
)

func GetSession(ctx *config.AppContext, w *middlewares.ResponseWriter, _ *http.Request) {
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func ToggleSessionDay(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	ctx.Session.ToggleDay(mux.Vars(r)["day"])
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func SetSessionDays(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	var opts models.SetSelectedDaysOpts
	if !validateJSON(w, r, models.SetSelectedDaysRules, &opts) {
		return
	}

	ctx.Session.SetSelectedDays(opts.Days)
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func SetSessionActiveDay(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	var opts models.SetActiveDayOpts
	if !validateJSON(w, r, models.SetActiveDayRules, &opts) {
		return
	}

	ctx.Session.SetActiveDay(opts.Day)
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func SetSessionArtist(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	var opts models.SetArtistOpts
	if !validateJSON(w, r, models.SetArtistRules, &opts) {
		return
	}

	ctx.Session.SetArtist(opts.Artist)
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func SetSessionPrice(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	var opts models.SetPriceRangeOpts
	if !validateJSON(w, r, models.SetPriceRangeRules, &opts) {
		return
	}

	ctx.Session.SetPriceRange(opts.Min, opts.Max)
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func ToggleSessionTime(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	category := models.TimeCategory(mux.Vars(r)["category"])
	if !category.Valid() {
		w.WriteJSON(http.StatusBadRequest, nil, nil, middlewares.Responses.InvalidTimeCategory.In(middlewares.RequestLanguage(r)))
		return
	}

	ctx.Session.ToggleTimeOfDay(category)
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func ToggleSessionVenue(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	ctx.Session.ToggleVenue(mux.Vars(r)["venue"])
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func SetSessionSort(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	var opts models.SetSortOpts
	if !validateJSON(w, r, models.SetSortRules, &opts) {
		return
	}

	ctx.Session.SetSortBy(models.SortKey(opts.Sort))
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func ClearSessionFilters(ctx *config.AppContext, w *middlewares.ResponseWriter, _ *http.Request) {
	ctx.Session.ClearFilters()
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

func ResetSession(ctx *config.AppContext, w *middlewares.ResponseWriter, _ *http.Request) {
	ctx.Session.Reset()
	w.WriteJSON(http.StatusOK, ctx.Session.View(), nil, "")
}

// SendSessionItinerary mails the session's current results.
func SendSessionItinerary(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	lang := middlewares.RequestLanguage(r)
	if ctx.AwsSMTP == nil && ctx.MailSender == nil {
		w.WriteJSON(http.StatusServiceUnavailable, nil, nil, middlewares.Responses.MailNotConfigured.In(lang))
		return
	}

	var opts models.ItineraryOpts
	if !validateJSON(w, r, models.ItineraryRules, &opts) {
		return
	}

	events := ctx.Catalog.Query(ctx.Session.Criteria())
	if err := SendItinerary(ctx, opts, events); err != nil {
		w.WriteJSON(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError.In(lang))
		return
	}

	w.WriteJSON(http.StatusNoContent, nil, nil, "")
}

// validateJSON decodes and validates the body into data, answering 400 on
// failure.
func validateJSON(w *middlewares.ResponseWriter, r *http.Request, rules govalidator.MapData, data interface{}) bool {
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   rules,
		Data:    data,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, middlewares.Responses.FailedValidations.In(middlewares.RequestLanguage(r)))
		return false
	}
	return true
}
