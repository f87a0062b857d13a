package api

import (
	"net/http"

	"bitbucket.org/surfagenda/backend/config"
	"bitbucket.org/surfagenda/backend/middlewares"
	"bitbucket.org/surfagenda/backend/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/thedevsaddam/govalidator"
)

func GetDays(ctx *config.AppContext, w *middlewares.ResponseWriter, _ *http.Request) {
	w.WriteJSON(http.StatusOK, ctx.Catalog.GetDays(), nil, "")
}

// GetEvents runs a one-off query from the URL, independent of the session.
func GetEvents(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	lang := middlewares.RequestLanguage(r)
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.GetEventsRules,
	}
	v := govalidator.New(validatorOpts)
	errs := v.Validate()
	if len(errs) > 0 {
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

	criteria := opts.ToCriteria(ctx.Catalog.PriceCeiling())
	w.WriteJSON(http.StatusOK, ctx.Catalog.Search(criteria), nil, "")
}

func GetEvent(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	event := ctx.Catalog.GetEventByID(mux.Vars(r)["id"])
	if event == nil {
		w.WriteJSON(http.StatusNotFound, nil, nil, middlewares.Responses.EventNotFound.In(middlewares.RequestLanguage(r)))
		return
	}

	w.WriteJSON(http.StatusOK, models.NewEventView(*event), nil, "")
}
