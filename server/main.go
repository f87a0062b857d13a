package server

import (
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/surfagenda/backend/config"
	"bitbucket.org/surfagenda/backend/middlewares"
	"bitbucket.org/surfagenda/backend/session"
	"github.com/gorilla/mux"
	"github.com/joeshaw/envdecode"
	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

func recoveryHandler(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	defer func() {
		if err := recover(); err != nil {
			log.Error(err)
			msg := middlewares.Responses.InternalServerError.In(middlewares.RequestLanguage(r))
			(&middlewares.ResponseWriter{Writer: w}).Error(http.StatusInternalServerError, msg)
			return
		}
	}()
	next(w, r)
}

type AppHandlerFunc func(*config.AppContext, *middlewares.ResponseWriter, *http.Request)

type AppHandler struct {
	Context     *config.AppContext
	HandlerFunc AppHandlerFunc
}

func (a *AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := &middlewares.ResponseWriter{Writer: w, Logger: config.LoggerFrom(r.Context())}
	a.HandlerFunc(a.Context, rw, r)
}

type Route struct {
	Path    string
	Handler AppHandlerFunc
	Methods []string
}

func NewRouter(ctx *config.AppContext, routes []*Route) *mux.Router {
	router := mux.NewRouter()
	for _, r := range routes {
		handler := &AppHandler{Context: ctx, HandlerFunc: r.Handler}
		router.Handle(r.Path, handler).Methods(r.Methods...)
	}
	return router
}

// LoadConfiguration reads the environment. Every key has a default, so an
// empty environment is not an error.
func LoadConfiguration() (config.Configuration, error) {
	var conf config.Configuration
	if err := envdecode.Decode(&conf); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return conf, errors.Wrap(err, "could not load the app configuration")
	}
	return conf, nil
}

func GetAppContext() *ContextWrapper {
	log.SetFormatter(joonix.NewFormatter())
	conf, err := LoadConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	context := &config.AppContext{
		Config: conf,
	}

	contextWrapper := ContextWrapper{
		Context: context,
	}

	return &contextWrapper
}

type ContextWrapper struct {
	Context *config.AppContext
}

func (wrapper *ContextWrapper) CreateCatalog() {
	c, err := config.CreateCatalog(wrapper.Context.Config.Festival)
	if err != nil {
		log.WithFields(log.Fields{
			"error":   err,
			"dataset": wrapper.Context.Config.Festival.DatasetPath,
		}).Fatal("catalog: failed to load")
	}
	wrapper.Context.Catalog = c
}

func (wrapper *ContextWrapper) CreateSession() {
	if wrapper.Context.Catalog == nil {
		log.Fatal(errors.Errorf("session needs a catalog"))
	}
	wrapper.Context.Session = session.New(wrapper.Context.Catalog)
}

func (wrapper *ContextWrapper) CreateSMTPConnection() {
	if !wrapper.Context.Config.SMTPEnabled() {
		log.Info("SMTP_HOST not set, mail disabled")
		return
	}
	conn := config.CreateNewConnectionSMTP(wrapper.Context.Config.AwsSMTP)
	if conn == nil {
		log.Fatal(errors.Errorf("failed connecting SMTP"))
	}
	wrapper.Context.AwsSMTP = conn
}

func (wrapper *ContextWrapper) CreateNewSessionS3() {
	if !wrapper.Context.Config.S3Enabled() {
		log.Info("S3_BUCKET not set, uploads disabled")
		return
	}
	session, err := config.CreateNewSessionS3(wrapper.Context.Config.AwsS3)
	if err != nil {
		log.Fatal(errors.Errorf("failed to create new session s3 - %s", err.Error()))
	}
	if session == nil {
		log.Fatal(errors.Errorf("nil session s3"))
	}
	wrapper.Context.AwsS3 = session
}

func UpServer(routes []*Route, wrapper *ContextWrapper) {
	server := createServer(wrapper.Context, routes)

	log.Info("Environment " + wrapper.Context.Config.Environment)
	log.Info("Listening on " + server.Addr)

	log.Fatal(server.ListenAndServe())
}

// NewHandler builds the middleware chain around the routes.
func NewHandler(context *config.AppContext, routes []*Route) http.Handler {
	n := negroni.New()
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "PUT", "PATCH", "HEAD"},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
	})
	n.Use(c)
	n.UseFunc(recoveryHandler)
	n.Use(negroni.HandlerFunc(middlewares.LoggerRequest))
	n.UseHandler(NewRouter(context, routes))
	return n
}

func createServer(context *config.AppContext, routes []*Route) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", context.Config.Port),
		ReadTimeout:  time.Duration(context.Config.Timeout) * time.Second,
		WriteTimeout: time.Duration(context.Config.Timeout) * time.Second,
		Handler:      NewHandler(context, routes),
	}
}
