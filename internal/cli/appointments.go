package cli

import (
	"strings"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

type AppointmentsListCmd struct {
	Status string `help:"Filter by status (all, pending, confirmed, completed, cancelled)." default:"all"`
	Page   int    `help:"Page number." default:"1"`
	Limit  int    `help:"Page size." default:"8"`
}

func (c *AppointmentsListCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin, entity.RoleStaff)
	if err != nil {
		return err
	}

	resp, err := ctx.Appointments.List(reqCtx, dto.AppointmentFilter{Status: c.Status, Page: c.Page, Limit: c.Limit})
	if err != nil {
		return err
	}

	if resp.Total == 0 {
		ctx.printf("No appointments found\n")
		return nil
	}
	ctx.printf("Appointments (page %d/%d, %d total):\n", resp.Page, resp.TotalPages, resp.Total)
	printAppointments(ctx, resp.Appointments)
	return nil
}

type AppointmentsMineCmd struct {
	Date string `help:"Only show appointments on this day (YYYY-MM-DD)."`
}

func (c *AppointmentsMineCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole()
	if err != nil {
		return err
	}

	resp, err := ctx.Appointments.MyAppointments(reqCtx, c.Date)
	if err != nil {
		return err
	}

	ctx.printf("Upcoming:\n")
	printAppointments(ctx, resp.Upcoming)
	ctx.printf("History:\n")
	printAppointments(ctx, resp.History)
	return nil
}

type AppointmentsBookCmd struct {
	Service string `help:"Service id." required:""`
	Date    string `help:"Day of the visit (YYYY-MM-DD)." required:""`
	Time    string `help:"Start time (HH:mm)." required:""`
	Staff   string `help:"Preferred staff id."`
	Notes   string `help:"Notes for the salon."`
}

func (c *AppointmentsBookCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole()
	if err != nil {
		return err
	}

	resp, err := ctx.Appointments.Book(reqCtx, &dto.CreateAppointmentRequest{
		ServiceID: c.Service,
		Date:      c.Date,
		StartTime: c.Time,
		StaffID:   c.Staff,
		Notes:     c.Notes,
	})
	if err != nil {
		return err
	}

	printAppointmentMutation(ctx, resp)
	return nil
}

type AppointmentsConfirmCmd struct {
	ID string `arg:"" help:"Appointment id."`
}

func (c *AppointmentsConfirmCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin, entity.RoleStaff)
	if err != nil {
		return err
	}
	resp, err := ctx.Appointments.Confirm(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printAppointmentMutation(ctx, resp)
	return nil
}

type AppointmentsCompleteCmd struct {
	ID string `arg:"" help:"Appointment id."`
}

func (c *AppointmentsCompleteCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin, entity.RoleStaff)
	if err != nil {
		return err
	}
	resp, err := ctx.Appointments.Complete(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printAppointmentMutation(ctx, resp)
	return nil
}

type AppointmentsCancelCmd struct {
	ID string `arg:"" help:"Appointment id."`
}

func (c *AppointmentsCancelCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole()
	if err != nil {
		return err
	}
	resp, err := ctx.Appointments.Cancel(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printAppointmentMutation(ctx, resp)
	return nil
}

type AppointmentsDeleteCmd struct {
	ID string `arg:"" help:"Appointment id."`
}

func (c *AppointmentsDeleteCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin)
	if err != nil {
		return err
	}
	resp, err := ctx.Appointments.Delete(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printAppointmentMutation(ctx, resp)
	return nil
}

type AppointmentsRemindCmd struct {
	IDs []string `arg:"" name:"id" help:"Appointment ids to remind customers about." optional:""`
}

func (c *AppointmentsRemindCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin)
	if err != nil {
		return err
	}
	resp, err := ctx.Reminders.Send(reqCtx, &dto.SendRemindersRequest{AppointmentIDs: c.IDs})
	if err != nil {
		return err
	}
	ctx.printf("%s\n", resp.Message)
	return nil
}

func printAppointmentMutation(ctx *Context, resp *dto.AppointmentMutationResponse) {
	ctx.printf("%s\n", resp.Message)
	printStale(ctx, resp.Stale)
	if resp.Appointments != nil {
		printAppointments(ctx, resp.Appointments)
	}
}

func printAppointments(ctx *Context, appointments []dto.AppointmentResponse) {
	if len(appointments) == 0 {
		ctx.printf("  (none)\n")
		return
	}
	for _, a := range appointments {
		name := a.ServiceName
		if name == "" {
			name = a.ServiceID
		}
		ctx.printf("  [%s] %s %s %s - %s (%s)\n", a.Status, a.ID, a.Date, a.StartTime, name, a.FormattedPrice)
		if len(a.Actions) > 0 {
			ctx.printf("      actions: %s\n", strings.Join(a.Actions, ", "))
		}
	}
}
