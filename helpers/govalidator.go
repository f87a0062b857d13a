package helpers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"bitbucket.org/surfagenda/backend/models"
	"github.com/thedevsaddam/govalidator"
)

var dayCodePattern = regexp.MustCompile(`^\d{1,2}$`)

func init() {
	govalidator.AddCustomRule("day_codes", func(field string, rule string, message string, value interface{}) error {
		for _, day := range listValues(value) {
			if !dayCodePattern.MatchString(day) {
				if message != "" {
					return errors.New(message)
				}
				return fmt.Errorf("The %s field must be a list of day-of-month numbers", field)
			}
		}
		return nil
	})
	govalidator.AddCustomRule("time_categories", func(field string, rule string, message string, value interface{}) error {
		for _, category := range listValues(value) {
			if !models.TimeCategory(category).Valid() {
				if message != "" {
					return errors.New(message)
				}
				return fmt.Errorf("The %s field must be a list of morning, afternoon, evening, late_night or unspecified", field)
			}
		}
		return nil
	})
}

// listValues reads a rule value as comma separated tokens, whether it arrives
// as a single string or a slice of them. Empty tokens are skipped.
func listValues(value interface{}) []string {
	var raw []string
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		raw = []string{rv.String()}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if item, ok := rv.Index(i).Interface().(string); ok {
				raw = append(raw, item)
			}
		}
	}

	var values []string
	for _, item := range raw {
		for _, token := range strings.Split(item, ",") {
			if token = strings.TrimSpace(token); token != "" {
				values = append(values, token)
			}
		}
	}
	return values
}
