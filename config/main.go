package config

import (
	"context"
	"time"
	_ "time/tzdata"

	"bitbucket.org/surfagenda/backend/catalog"
	"bitbucket.org/surfagenda/backend/session"
	"github.com/aws/aws-sdk-go/aws"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Configuration struct {
	Port        int    `env:"PORT,default=3001,strict"`
	Timeout     int    `env:"TIMEOUT,default=5,strict"`
	Environment string `env:"ENVIRONMENT,default=development"`
	AppName     string `env:"APP_NAME,default=surfagenda"`
	Festival    festival
	AwsSMTP     awsSMTP
	AwsS3       awsS3
	Mail        mail
}

type festival struct {
	Year            int    `env:"FESTIVAL_YEAR,default=2025,strict"`
	Timezone        string `env:"FESTIVAL_TIMEZONE,default=America/Sao_Paulo"`
	DurationHours   int    `env:"EVENT_DURATION_HOURS,default=3,strict"`
	CollationLocale string `env:"COLLATION_LOCALE,default=pt-BR"`
	DatasetPath     string `env:"DATASET_PATH"`
}

type awsSMTP struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT,default=587,strict"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

type awsS3 struct {
	S3Region       string `env:"S3_REGION,default=sa-east-1"`
	S3Bucket       string `env:"S3_BUCKET"`
	S3PathCalendar string `env:"S3_PATH_CALENDAR,default=agenda"`
}

type mail struct {
	NameFrom  string `env:"MAIL_NAME_FROM,default=Agenda Surf Music"`
	EmailFrom string `env:"MAIL_EMAIL_FROM"`
	Subject   string `env:"MAIL_ITINERARY_SUBJECT,default=Sua agenda do festival"`
	Template  string `env:"MAIL_ITINERARY_TEMPLATE"`
}

type AppContext struct {
	Config  Configuration
	Catalog catalog.Storage
	Session *session.Session
	AwsSMTP *gomail.Dialer
	AwsS3   *awssession.Session
	// MailSender replaces AwsSMTP when set.
	MailSender gomail.Sender
}

// Location is the festival timezone, UTC when it cannot be loaded.
func (c Configuration) Location() *time.Location {
	loc, err := time.LoadLocation(c.Festival.Timezone)
	if err != nil {
		log.WithField("timezone", c.Festival.Timezone).Warn("unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}

func (c Configuration) EventDuration() time.Duration {
	return time.Duration(c.Festival.DurationHours) * time.Hour
}

func (c Configuration) SMTPEnabled() bool {
	return c.AwsSMTP.SMTPHost != ""
}

func (c Configuration) S3Enabled() bool {
	return c.AwsS3.S3Bucket != ""
}

func CreateCatalog(conf festival) (*catalog.Catalog, error) {
	c, err := catalog.Open(conf.DatasetPath, conf.CollationLocale)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	return c, nil
}

func CreateNewConnectionSMTP(conf awsSMTP) *gomail.Dialer {
	conn := gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.SMTPUser, conf.SMTPPassword)
	return conn
}

func CreateNewSessionS3(conf awsS3) (*awssession.Session, error) {
	s, err := awssession.NewSession(&aws.Config{Region: aws.String(conf.S3Region)})
	return s, err
}

type loggerKey struct{}

// WithLogger stores the request-scoped entry on ctx.
func WithLogger(ctx context.Context, entry *log.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry)
}

// LoggerFrom returns the entry stored by WithLogger, or the standard logger.
func LoggerFrom(ctx context.Context) *log.Entry {
	if entry, ok := ctx.Value(loggerKey{}).(*log.Entry); ok && entry != nil {
		return entry
	}
	return log.NewEntry(log.StandardLogger())
}
