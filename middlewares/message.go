package middlewares

var Responses = struct {
	FailedValidations   *NewRM
	InternalServerError *NewRM
	EventNotFound       *NewRM
	NoTicketLink        *NewRM
	InvalidTimeCategory *NewRM
	InvalidDay          *NewRM
	MailNotConfigured   *NewRM
}{
	FailedValidations: &NewRM{
		Language.English:    "Failed field validations",
		Language.Portuguese: "As validações dos campos falharam",
	},
	InternalServerError: &NewRM{
		Language.English:    "Internal server error",
		Language.Portuguese: "Problemas com o servidor",
	},
	EventNotFound: &NewRM{
		Language.English:    "Event not found",
		Language.Portuguese: "O evento não existe",
	},
	NoTicketLink: &NewRM{
		Language.English:    "Event has no ticket link",
		Language.Portuguese: "O evento não tem link de ingressos",
	},
	InvalidTimeCategory: &NewRM{
		Language.English:    "Invalid time of day",
		Language.Portuguese: "Período do dia inválido",
	},
	InvalidDay: &NewRM{
		Language.English:    "Invalid day",
		Language.Portuguese: "Dia inválido",
	},
	MailNotConfigured: &NewRM{
		Language.English:    "Mail is not configured",
		Language.Portuguese: "O envio de e-mail não está configurado",
	},
}

type NewRM map[string]string

// In returns the message in lang, falling back to Portuguese.
func (m *NewRM) In(lang string) string {
	if msg, ok := (*m)[lang]; ok {
		return msg
	}
	return (*m)[Language.Portuguese]
}

var Language = struct {
	English    string
	Portuguese string
}{
	English:    "en",
	Portuguese: "pt",
}
