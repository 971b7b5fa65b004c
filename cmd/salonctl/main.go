package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"salon-booking/cmd/bootstrap"
	"salon-booking/config"
	"salon-booking/internal/cli"
	"salon-booking/internal/infrastructure/cache"
	"salon-booking/pkg/jwt"
)

var CLI struct {
	Version kong.VersionFlag
	Token   string `help:"Bearer token issued by the salon backend." env:"SALON_TOKEN"`

	Appointments struct {
		List     cli.AppointmentsListCmd     `cmd:"" help:"List appointments."`
		Mine     cli.AppointmentsMineCmd     `cmd:"" help:"Show your upcoming appointments and history."`
		Book     cli.AppointmentsBookCmd     `cmd:"" help:"Book an appointment."`
		Confirm  cli.AppointmentsConfirmCmd  `cmd:"" help:"Confirm a pending appointment."`
		Complete cli.AppointmentsCompleteCmd `cmd:"" help:"Mark a confirmed appointment completed."`
		Cancel   cli.AppointmentsCancelCmd   `cmd:"" help:"Cancel an appointment."`
		Delete   cli.AppointmentsDeleteCmd   `cmd:"" help:"Delete an appointment."`
		Remind   cli.AppointmentsRemindCmd   `cmd:"" help:"Send reminders for pending or confirmed appointments."`
	} `cmd:"" help:"Manage appointments."`
	Shifts struct {
		List          cli.ShiftsListCmd          `cmd:"" help:"List shifts."`
		Registrations cli.ShiftsRegistrationsCmd `cmd:"" help:"List shift registrations."`
		Register      cli.ShiftsRegisterCmd      `cmd:"" help:"Register yourself for a shift."`
		Assign        cli.ShiftsAssignCmd        `cmd:"" help:"Assign a staff member to a shift."`
		Approve       cli.ShiftsApproveCmd       `cmd:"" help:"Approve a pending registration."`
		Reject        cli.ShiftsRejectCmd        `cmd:"" help:"Reject a pending registration."`
		Cancel        cli.ShiftsCancelCmd        `cmd:"" help:"Cancel a pending registration."`
	} `cmd:"" help:"Manage work shifts."`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show the admin dashboard."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("salonctl"),
		kong.Description("Salon booking operations from the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.LoadConfig()
	if err != nil {
		fatal(err)
	}

	// Keep stdout for command output.
	bootstrap.SetupLogger(cfg.App.LogLevel)
	logrus.SetOutput(os.Stderr)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		fatal(err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	usecases, err := bootstrap.NewUsecases(cfg, redisClient, logrus.StandardLogger())
	if err != nil {
		fatal(err)
	}

	appCtx := &cli.Context{
		Out:          os.Stdout,
		Inspector:    jwt.NewInspector(),
		Appointments: usecases.Appointments,
		WorkShifts:   usecases.WorkShifts,
		Dashboard:    usecases.Dashboard,
		Reminders:    usecases.Reminders,
	}
	if err := appCtx.Authorize(context.Background(), CLI.Token); err != nil {
		fatal(err)
	}

	if err := kctx.Run(appCtx); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
	os.Exit(1)
}
