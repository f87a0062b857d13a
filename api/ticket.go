package api

import (
	"net/http"

	"bitbucket.org/surfagenda/backend/config"
	"bitbucket.org/surfagenda/backend/helpers"
	"bitbucket.org/surfagenda/backend/middlewares"
	"bitbucket.org/surfagenda/backend/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/thedevsaddam/govalidator"
)

const (
	minQRCodeSize = 64
	maxQRCodeSize = 1024
)

// GetTicket sends the visitor to the external ticket page.
func GetTicket(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	lang := middlewares.RequestLanguage(r)
	event := ctx.Catalog.GetEventByID(mux.Vars(r)["id"])
	if event == nil {
		w.WriteJSON(http.StatusNotFound, nil, nil, middlewares.Responses.EventNotFound.In(lang))
		return
	}
	if event.TicketLink == "" {
		w.WriteJSON(http.StatusNotFound, nil, nil, middlewares.Responses.NoTicketLink.In(lang))
		return
	}

	w.Redirect(r, event.TicketLink)
}

func GetTicketQRCode(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	lang := middlewares.RequestLanguage(r)
	v := govalidator.New(govalidator.Options{
		Request: r,
		Rules:   models.QRCodeRules,
	})
	if errs := v.Validate(); len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, middlewares.Responses.FailedValidations.In(lang))
		return
	}

	var opts models.QRCodeOpts
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&opts, r.URL.Query()); err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, middlewares.Responses.FailedValidations.In(lang))
		return
	}

	event := ctx.Catalog.GetEventByID(mux.Vars(r)["id"])
	if event == nil {
		w.WriteJSON(http.StatusNotFound, nil, nil, middlewares.Responses.EventNotFound.In(lang))
		return
	}
	if event.TicketLink == "" {
		w.WriteJSON(http.StatusNotFound, nil, nil, middlewares.Responses.NoTicketLink.In(lang))
		return
	}

	size := opts.Size
	if size == 0 {
		size = helpers.ConstQRCodeSize
	}
	if size < minQRCodeSize {
		size = minQRCodeSize
	}
	if size > maxQRCodeSize {
		size = maxQRCodeSize
	}

	png, err := helpers.TicketQRCode(event.TicketLink, size)
	if err != nil {
		w.WriteJSON(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError.In(lang))
		return
	}

	w.Bytes(http.StatusOK, "image/png", png)
}
