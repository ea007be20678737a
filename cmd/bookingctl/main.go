// bookingctl консольный клиент ledger: вход администратора, доступность,
// блокировки и интерактивный мастер бронирования
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const usage = `Uso: bookingctl <comando> [opções]

Comandos:
  login         salva o perfil do administrador (-username -password, ou -id -username -name -professional)
  logout        remove o perfil salvo
  whoami        mostra o perfil salvo
  availability  horários disponíveis (-date, -professional)
  day           agenda do dia: reservas e bloqueios (-date, -professional)
  block         bloqueia um dia ou horário (-date, -professional, -slot)
  unblock       remove um bloqueio (-id)
  cancel        remove uma reserva (-id)
  book          assistente interativo de agendamento
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	if err := a.run(ctx, os.Args[1], os.Args[2:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
