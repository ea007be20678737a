package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/internal/session"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

var errNotLoggedIn = errors.New("administrador não autenticado, execute 'bookingctl login'")

func (a *app) run(ctx context.Context, command string, args []string, in io.Reader, out io.Writer) error {
	switch command {
	case "login":
		return a.login(ctx, args, out)
	case "logout":
		if err := a.sessions.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Sessão encerrada")
		return nil
	case "whoami":
		return a.whoami(ctx, out)
	case "availability":
		return a.availability(ctx, args, out)
	case "day":
		return a.day(ctx, args, out)
	case "block":
		return a.block(ctx, args, out)
	case "unblock":
		return a.remove(ctx, "unblock", args, out, a.ledger.DeleteBlock)
	case "cancel":
		return a.remove(ctx, "cancel", args, out, a.ledger.DeleteReservation)
	case "book":
		return a.book(ctx, in, out)
	}
	return fmt.Errorf("comando desconhecido %q\n\n%s", command, usage)
}

func (a *app) login(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(out)
	id := fs.Int64("id", 0, "admin id")
	username := fs.String("username", "", "admin username")
	name := fs.String("name", "", "admin display name")
	professional := fs.String("professional", "", "professional id of the admin")
	password := fs.String("password", "", "password, checked against the users service")
	if err := fs.Parse(args); err != nil {
		return err
	}

	identity := session.Identity{ID: *id, Username: *username, Name: *name, ProfessionalID: *professional}
	if *password != "" {
		if a.users == nil {
			return errors.New("provedor de usuários não configurado (client.users_url)")
		}
		user, err := a.users.Authenticate(ctx, *username, *password)
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			return errors.New("credenciais inválidas")
		}
		if err != nil {
			return fmt.Errorf("erro ao autenticar: %w", err)
		}
		identity = session.Identity{ID: user.ID, Username: user.Username, Name: user.Name, ProfessionalID: user.ProfessionalID}
	}
	if err := a.sessions.Save(ctx, identity); err != nil {
		return err
	}
	fmt.Fprintf(out, "Bem-vindo, %s\n", displayName(identity))
	return nil
}

func (a *app) whoami(ctx context.Context, out io.Writer) error {
	identity := a.sessions.Load(ctx)
	if identity == nil {
		return errNotLoggedIn
	}
	fmt.Fprintf(out, "%s (id=%d, username=%s, profissional=%s)\n",
		displayName(*identity), identity.ID, identity.Username, identity.ProfessionalID)
	return nil
}

// targetFlags флаги -date и -professional; специалист по умолчанию - из профиля администратора
func (a *app) targetFlags(ctx context.Context, name string, args []string, out io.Writer, extra func(fs *flag.FlagSet)) (domain.DateKey, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	date := fs.String("date", domain.NewDateKey(a.clock.Now()).String(), "date (YYYY-MM-DD)")
	professional := fs.String("professional", "", "professional id")
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}

	dateKey, err := domain.ParseDateKey(*date)
	if err != nil {
		return "", "", err
	}

	professionalID := *professional
	if professionalID == "" {
		if identity := a.sessions.Load(ctx); identity != nil {
			professionalID = identity.ProfessionalID
		}
	}
	if _, ok := a.catalog.Professional(professionalID); !ok {
		return "", "", fmt.Errorf("profissional %q não encontrado", professionalID)
	}
	return dateKey, professionalID, nil
}

func (a *app) availability(ctx context.Context, args []string, out io.Writer) error {
	dateKey, professionalID, err := a.targetFlags(ctx, "availability", args, out, nil)
	if err != nil {
		return err
	}
	printView(out, a.refresher.Refresh(ctx, dateKey, professionalID))
	return nil
}

// day вид администратора: бронирования и блокировки специалиста на дату
func (a *app) day(ctx context.Context, args []string, out io.Writer) error {
	dateKey, professionalID, err := a.targetFlags(ctx, "day", args, out, nil)
	if err != nil {
		return err
	}

	reservations, err := a.ledger.ListReservations(ctx, domain.ReservationFilter{DateKey: &dateKey, ProfessionalID: &professionalID})
	if err != nil {
		return err
	}
	blocks, err := a.ledger.ListBlocks(ctx, domain.BlockFilter{DateKey: &dateKey, ProfessionalID: &professionalID})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Agenda %s, profissional %s\n", dateKey, professionalID)
	if domain.IsDayBlocked(blocks, dateKey, professionalID) {
		fmt.Fprintln(out, "  Dia bloqueado")
	}
	for _, r := range reservations {
		fmt.Fprintf(out, "  reserva #%d  %s  admin=%d\n", r.ID, a.slotTime(r.SlotID), r.AdminID)
	}
	for _, b := range blocks {
		if b.IsWholeDay() {
			fmt.Fprintf(out, "  bloqueio #%d  dia inteiro  admin=%d\n", b.ID, b.AdminID)
			continue
		}
		fmt.Fprintf(out, "  bloqueio #%d  %s  admin=%d\n", b.ID, a.slotTime(*b.SlotID), b.AdminID)
	}
	if len(reservations) == 0 && len(blocks) == 0 {
		fmt.Fprintln(out, "  Nenhuma reserva ou bloqueio")
	}
	return nil
}

func (a *app) block(ctx context.Context, args []string, out io.Writer) error {
	identity := a.sessions.Load(ctx)
	if identity == nil {
		return errNotLoggedIn
	}

	var slot string
	dateKey, professionalID, err := a.targetFlags(ctx, "block", args, out, func(fs *flag.FlagSet) {
		fs.StringVar(&slot, "slot", "", "slot id (empty blocks the whole day)")
	})
	if err != nil {
		return err
	}

	var slotID *string
	if slot != "" {
		slotID = &slot
	}
	created, err := a.ledger.CreateBlock(ctx, dateKey, slotID, professionalID, identity.ID)
	if errors.Is(err, ledger.ErrConflict) {
		return errors.New("bloqueio já existe")
	}
	if err != nil {
		return err
	}

	if created.IsWholeDay() {
		fmt.Fprintf(out, "Bloqueio #%d criado: %s dia inteiro\n", created.ID, dateKey)
	} else {
		fmt.Fprintf(out, "Bloqueio #%d criado: %s %s\n", created.ID, dateKey, a.slotTime(slot))
	}
	return nil
}

// remove удаление по -id; отсутствующая запись - предупреждение, не ошибка
func (a *app) remove(ctx context.Context, name string, args []string, out io.Writer, del func(ctx context.Context, id int64) error) error {
	if a.sessions.Load(ctx) == nil {
		return errNotLoggedIn
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	id := fs.Int64("id", 0, "entity id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id é obrigatório")
	}

	err := del(ctx, *id)
	if errors.Is(err, ledger.ErrNotFound) {
		a.log.Warn("bookingctl %s: id=%d not found", name, *id)
		fmt.Fprintf(out, "Aviso: #%d não encontrado\n", *id)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "#%d removido\n", *id)
	return nil
}

func (a *app) book(ctx context.Context, in io.Reader, out io.Writer) error {
	identity := a.sessions.Load(ctx)
	if identity == nil {
		return errNotLoggedIn
	}

	s := wizard.NewSession(a.catalog, a.ledger, a.refresher, a.cache, identity.ID, a.cfg.Confirmation.Phone, a.log)
	return runWizard(ctx, s, a.catalog, bufio.NewScanner(in), out)
}

func (a *app) slotTime(slotID string) string {
	if slot, ok := a.catalog.Slot(slotID); ok {
		return slot.Time
	}
	return "slot " + slotID
}

func printView(out io.Writer, view *domain.AvailabilityView) {
	fmt.Fprintf(out, "Horários %s, profissional %s", view.DateKey, view.ProfessionalID)
	if view.Stale {
		fmt.Fprint(out, " (offline, dados em cache)")
	}
	fmt.Fprintln(out)

	for _, s := range view.Slots {
		mark := "disponível"
		if !s.Available {
			mark = "indisponível"
		}
		fmt.Fprintf(out, "  [%s] %s  %s\n", s.SlotID, s.Time, mark)
	}
}

func displayName(identity session.Identity) string {
	if strings.TrimSpace(identity.Name) != "" {
		return identity.Name
	}
	return identity.Username
}
