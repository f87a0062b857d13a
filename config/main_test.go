package config

import (
	"context"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	conf := Configuration{Festival: festival{Timezone: "America/Sao_Paulo"}}
	assert.Equal(t, "America/Sao_Paulo", conf.Location().String())

	conf.Festival.Timezone = "Nowhere/Atlantis"
	assert.Equal(t, time.UTC, conf.Location())
}

func TestConfigurationFlags(t *testing.T) {
	conf := Configuration{Festival: festival{DurationHours: 3}}
	assert.Equal(t, 3*time.Hour, conf.EventDuration())
	assert.False(t, conf.SMTPEnabled())
	assert.False(t, conf.S3Enabled())

	conf.AwsSMTP.SMTPHost = "smtp.example.com"
	conf.AwsS3.S3Bucket = "agenda"
	assert.True(t, conf.SMTPEnabled())
	assert.True(t, conf.S3Enabled())
}

func TestCreateCatalog(t *testing.T) {
	c, err := CreateCatalog(festival{CollationLocale: "pt-BR"})
	assert.NoError(t, err)
	assert.Len(t, c.GetEvents(), 39)

	_, err = CreateCatalog(festival{DatasetPath: "missing.yaml"})
	assert.Error(t, err)
}

func TestLoggerFromContext(t *testing.T) {
	assert.NotNil(t, LoggerFrom(context.Background()))

	entry := log.WithField("request_id", "abc")
	ctx := WithLogger(context.Background(), entry)
	assert.Equal(t, "abc", LoggerFrom(ctx).Data["request_id"])
}
