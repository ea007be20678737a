package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

const wizardHelp = "Comandos: 'v' voltar, 'r' recomeçar, 'q' sair"

// runWizard проводит сессию мастера по строкам ввода до подтверждения или выхода
func runWizard(ctx context.Context, s *wizard.Session, cat *catalog.Catalog, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, wizardHelp)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt(out, s, cat)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Agendamento cancelado")
			return nil
		}
		line := strings.TrimSpace(in.Text())

		switch strings.ToLower(line) {
		case "q":
			fmt.Fprintln(out, "Agendamento cancelado")
			return nil
		case "v":
			if !s.Back() {
				fmt.Fprintln(out, "Já está na primeira etapa")
			}
			continue
		case "r":
			s.Reset()
			continue
		}

		done, err := handleInput(ctx, s, line, out)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func prompt(out io.Writer, s *wizard.Session, cat *catalog.Catalog) {
	d := s.Draft()
	fmt.Fprintf(out, "\n== Etapa: %s ==\n", s.Step())

	switch s.Step() {
	case wizard.StepService:
		for _, svc := range cat.Services() {
			fmt.Fprintf(out, "  [%s] %s  %d min  R$ %.2f\n", svc.ID, svc.Name, svc.DurationMinutes, svc.Price)
		}
		fmt.Fprint(out, "Serviço: ")
	case wizard.StepProfessional:
		for _, p := range cat.Professionals() {
			fmt.Fprintf(out, "  [%s] %s %s  %s\n", p.ID, p.Avatar, p.Name, strings.Join(p.Specialties, ", "))
		}
		fmt.Fprint(out, "Profissional: ")
	case wizard.StepDateTime:
		if view := s.View(); view != nil {
			printView(out, view)
			fmt.Fprint(out, "Horário (ou outra data AAAA-MM-DD): ")
		} else {
			fmt.Fprint(out, "Data (AAAA-MM-DD): ")
		}
	case wizard.StepContact:
		fmt.Fprint(out, "Nome; telefone; observações (opcional): ")
	case wizard.StepConfirmation:
		service, _ := cat.Service(d.ServiceID)
		professional, _ := cat.Professional(d.ProfessionalID)
		slot, _ := cat.Slot(d.SlotID)
		fmt.Fprintf(out, "  Serviço: %s (R$ %.2f)\n  Profissional: %s\n  Data: %s %s\n  Cliente: %s, %s\n",
			service.Name, service.Price, professional.Name, d.DateKey, slot.Time, d.ClientName, d.ClientPhone)
		if d.Observations != "" {
			fmt.Fprintf(out, "  Observações: %s\n", d.Observations)
		}
		fmt.Fprint(out, "Confirmar? (s/n): ")
	}
}

// handleInput применяет строку ввода к текущему шагу; true - бронирование завершено
func handleInput(ctx context.Context, s *wizard.Session, line string, out io.Writer) (bool, error) {
	switch s.Step() {
	case wizard.StepService:
		if !s.SelectService(line) || !s.Next() {
			fmt.Fprintln(out, "Serviço inválido")
		}
	case wizard.StepProfessional:
		if !s.SelectProfessional(line) || !s.Next() {
			fmt.Fprintln(out, "Profissional inválido")
		}
	case wizard.StepDateTime:
		if _, err := domain.ParseDateKey(line); err == nil {
			if !s.SelectDate(domain.DateKey(line)) {
				fmt.Fprintln(out, "Data indisponível (datas passadas e domingos não são permitidos)")
				return false, nil
			}
			if _, err := s.Availability(ctx); err != nil {
				return false, err
			}
			return false, nil
		}
		if s.View() == nil || !s.SelectSlot(line) || !s.Next() {
			fmt.Fprintln(out, "Horário indisponível")
		}
	case wizard.StepContact:
		parts := strings.SplitN(line, ";", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		if !s.SetContact(parts[0], parts[1], parts[2]) || !s.Next() {
			fmt.Fprintln(out, "Nome e telefone são obrigatórios")
		}
	case wizard.StepConfirmation:
		if !strings.EqualFold(line, "s") {
			fmt.Fprintln(out, "Use 'v' para corrigir os dados ou 'q' para sair")
			return false, nil
		}
		return confirm(ctx, s, out)
	}
	return false, nil
}

func confirm(ctx context.Context, s *wizard.Session, out io.Writer) (bool, error) {
	result, err := s.Confirm(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(out, "\nAgendamento confirmado! Reserva #%d\n\n%s\n\nWhatsApp: %s\n",
			result.Reservation.ID, result.Confirmation.Text, result.Confirmation.URL)
		return true, nil
	case errors.Is(err, wizard.ErrSlotTaken):
		fmt.Fprintln(out, "Este horário acabou de ser reservado. Escolha outro horário.")
		return false, nil
	case errors.Is(err, wizard.ErrRetryable):
		fmt.Fprintln(out, "Serviço indisponível no momento. Tente confirmar novamente.")
		return false, nil
	case errors.Is(err, wizard.ErrRejected):
		fmt.Fprintf(out, "Agendamento recusado: %v\n", err)
		return false, nil
	}
	return false, err
}
