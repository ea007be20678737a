package confirmation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func details() Details {
	return Details{
		ClientName:   "Maria",
		ClientPhone:  "(11) 98888-7777",
		Service:      domain.Service{ID: "3", Name: "Corte + Barba", DurationMinutes: 45, Price: 35},
		Professional: domain.Professional{ID: "1", Name: "João Silva"},
		DateKey:      "2024-06-10",
		Slot:         domain.CanonicalSlot{ID: "4", Time: "09:30", BaseAvailable: true},
	}
}

func TestBuild(t *testing.T) {
	msg, err := Build("5511999999999", details())
	require.NoError(t, err)

	expected := "🗓️ *Agendamento Confirmado*\n\n" +
		"👤 Cliente: Maria\n" +
		"📞 Telefone: (11) 98888-7777\n" +
		"✂️ Serviço: Corte + Barba\n" +
		"💰 Valor: R$ 35\n" +
		"👨‍💼 Profissional: João Silva\n" +
		"📅 Data: 10/06/2024\n" +
		"🕐 Horário: 09:30"
	assert.Equal(t, expected, msg.Text)

	require.True(t, strings.HasPrefix(msg.URL, "https://wa.me/5511999999999?text="))
	u, err := url.Parse(msg.URL)
	require.NoError(t, err)
	assert.Equal(t, expected, u.Query().Get("text"))
}

func TestBuild_Observations(t *testing.T) {
	d := details()
	d.Observations = "  degradê baixo "
	d.Service.Price = 12.5

	msg, err := Build("", d)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(msg.Text, "\n📝 Observações: degradê baixo"))
	assert.Contains(t, msg.Text, "💰 Valor: R$ 12.5\n")
	assert.True(t, strings.HasPrefix(msg.URL, "https://wa.me/"+DefaultPhone+"?text="))
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := Build("+5511999999999", details())
	require.NoError(t, err)
	b, err := Build("5511999999999", details())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_InvalidDate(t *testing.T) {
	d := details()
	d.DateKey = "10/06/2024"

	_, err := Build("", d)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
