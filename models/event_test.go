package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketSummary(t *testing.T) {
	cases := map[string]string{
		"Pista: R$160 | Área Premium: R$300": "A partir de R$160",
		"R$100":                              "R$100",
		"Setor Prata a partir de R$ 70,00":   "Setor Prata a partir de R$ 70,00",
		"ESGOTADO":                           "ESGOTADO",
		"":                                   "Preço a definir",
		"Camarote | Pista":                   "Camarote",
	}

	for label, expected := range cases {
		e := Event{PriceLabel: label}
		assert.Equal(t, expected, e.TicketSummary(), label)
	}
}

func TestTiers(t *testing.T) {
	e := Event{PriceLabel: "Pista: R$35 | Lounge Deck (8 Pessoas): R$1500 | Camarote (10 Pessoas): R$2500"}
	assert.Equal(t, []string{"Pista: R$35", "Lounge Deck (8 Pessoas): R$1500", "Camarote (10 Pessoas): R$2500"}, e.Tiers())

	soldOut := Event{PriceLabel: "ESGOTADO"}
	assert.Nil(t, soldOut.Tiers())
	assert.True(t, soldOut.SoldOut())
	assert.Equal(t, "Ver Disponibilidade", soldOut.CallToAction())

	e = Event{PriceLabel: "R$100"}
	assert.Equal(t, []string{"R$100"}, e.Tiers())
	assert.Equal(t, "Comprar Ingressos", e.CallToAction())
}

func TestNewEventView(t *testing.T) {
	view := NewEventView(Event{Title: "orochi", TimeCategory: LateNight, PriceLabel: "ESGOTADO"})
	assert.Equal(t, "orochi", view.Title)
	assert.Equal(t, "Madrugada", view.TimeLabelPT)
	assert.True(t, view.SoldOut)
	assert.Equal(t, "ESGOTADO", view.TicketSummary)
	assert.Empty(t, NewEventViews(nil))
}

func TestCategorizeHour(t *testing.T) {
	cases := map[int]TimeCategory{
		0:  LateNight,
		5:  LateNight,
		6:  Morning,
		11: Morning,
		12: Afternoon,
		17: Afternoon,
		18: Evening,
		23: Evening,
	}

	for hour, expected := range cases {
		assert.Equal(t, expected, CategorizeHour(hour), hour)
	}
}

func TestTimeCategory(t *testing.T) {
	assert.True(t, Morning.Valid())
	assert.False(t, TimeCategory("noon").Valid())
	assert.Equal(t, "Não informado", TimeCategory("noon").Label())
	assert.Less(t, Morning.Rank(), Unspecified.Rank())
	assert.True(t, SortByArtist.Valid())
	assert.False(t, SortKey("venue").Valid())
}

func TestEmptyState(t *testing.T) {
	assert.Empty(t, EmptyStateNone.Message())
	assert.NotEmpty(t, EmptyStateNoDaysSelected.Message())
	assert.True(t, EmptyStateOverFiltered.CanClearFilters())
	assert.False(t, EmptyStateNoEventsOnDays.CanClearFilters())
}
