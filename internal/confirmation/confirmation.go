// Package confirmation формирует текст подтверждения бронирования
// и ссылку WhatsApp с предзаполненным сообщением
package confirmation

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// DefaultPhone номер барбершопа по умолчанию
const DefaultPhone = "5511999999999"

var ErrInvalidDate = errors.New("confirmation: invalid date key")

// Details данные черновика и разрешенные сущности справочника
type Details struct {
	ClientName   string
	ClientPhone  string
	Service      domain.Service
	Professional domain.Professional
	DateKey      domain.DateKey
	Slot         domain.CanonicalSlot
	Observations string
}

// Message артефакт подтверждения
type Message struct {
	Text string
	URL  string
}

// Build детерминированно строит сообщение; phone - номер получателя без "+"
func Build(phone string, d Details) (Message, error) {
	date, err := formatDate(d.DateKey)
	if err != nil {
		return Message{}, err
	}

	lines := []string{
		"🗓️ *Agendamento Confirmado*",
		"",
		"👤 Cliente: " + d.ClientName,
		"📞 Telefone: " + d.ClientPhone,
		"✂️ Serviço: " + d.Service.Name,
		"💰 Valor: R$ " + strconv.FormatFloat(d.Service.Price, 'f', -1, 64),
		"👨‍💼 Profissional: " + d.Professional.Name,
		"📅 Data: " + date,
		"🕐 Horário: " + d.Slot.Time,
	}
	if notes := strings.TrimSpace(d.Observations); notes != "" {
		lines = append(lines, "📝 Observações: "+notes)
	}

	text := strings.Join(lines, "\n")
	if phone == "" {
		phone = DefaultPhone
	}

	return Message{
		Text: text,
		URL:  "https://wa.me/" + strings.TrimPrefix(phone, "+") + "?text=" + url.QueryEscape(text),
	}, nil
}

// formatDate 2024-06-10 -> 10/06/2024
func formatDate(key domain.DateKey) (string, error) {
	if _, err := domain.ParseDateKey(key.String()); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	t, err := key.Time(time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t.Format("02/01/2006"), nil
}
