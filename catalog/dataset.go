package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"bitbucket.org/surfagenda/backend/models"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var embeddedEvents []byte

// LoadEmbedded returns the listings compiled into the binary.
func LoadEmbedded() ([]models.RawEvent, error) {
	return DecodeDataset(bytes.NewReader(embeddedEvents))
}

func LoadFile(path string) ([]models.RawEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer f.Close()

	return DecodeDataset(f)
}

// DecodeDataset reads a YAML list of listings. Values are decoded weakly so a
// hand-edited entry such as `artists: 3030` still yields a string title.
func DecodeDataset(r io.Reader) ([]models.RawEvent, error) {
	var entries []map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return []models.RawEvent{}, nil
		}
		return nil, errors.Wrap(err, "failed to parse dataset")
	}

	raw := make([]models.RawEvent, 0, len(entries))
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dataset decoder")
	}

	if err := decoder.Decode(entries); err != nil {
		return nil, errors.Wrap(err, "failed to decode dataset entries")
	}

	return raw, nil
}
