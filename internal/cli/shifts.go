package cli

import (
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

type ShiftsListCmd struct {
	Date string `help:"Only show shifts on this day (YYYY-MM-DD)."`
}

func (c *ShiftsListCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole()
	if err != nil {
		return err
	}

	resp, err := ctx.WorkShifts.ListShifts(reqCtx, c.Date)
	if err != nil {
		return err
	}

	if resp.Total == 0 {
		ctx.printf("No shifts found\n")
		return nil
	}
	for _, s := range resp.Shifts {
		ctx.printf("  %s %s %s %s-%s (max %d)\n", s.ID, s.ShiftType, s.Date, s.StartTime, s.EndTime, s.Max)
	}
	return nil
}

type ShiftsRegistrationsCmd struct{}

func (c *ShiftsRegistrationsCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin, entity.RoleStaff)
	if err != nil {
		return err
	}

	resp, err := ctx.WorkShifts.ListRegistrations(reqCtx)
	if err != nil {
		return err
	}

	ctx.printf("Pending:\n")
	printRegistrations(ctx, resp.Pending)
	ctx.printf("History:\n")
	printRegistrations(ctx, resp.History)
	return nil
}

type ShiftsRegisterCmd struct {
	ShiftID string `arg:"" help:"Shift id."`
}

func (c *ShiftsRegisterCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleStaff)
	if err != nil {
		return err
	}
	resp, err := ctx.WorkShifts.Register(reqCtx, &dto.RegisterShiftRequest{ShiftID: c.ShiftID})
	if err != nil {
		return err
	}
	printRegistrationMutation(ctx, resp)
	return nil
}

type ShiftsAssignCmd struct {
	Staff string `help:"Staff id." required:""`
	Shift string `help:"Shift id." required:""`
}

func (c *ShiftsAssignCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin)
	if err != nil {
		return err
	}
	resp, err := ctx.WorkShifts.AdminAssign(reqCtx, &dto.AssignShiftRequest{StaffID: c.Staff, ShiftID: c.Shift})
	if err != nil {
		return err
	}
	printRegistrationMutation(ctx, resp)
	return nil
}

type ShiftsApproveCmd struct {
	ID string `arg:"" help:"Registration id."`
}

func (c *ShiftsApproveCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin)
	if err != nil {
		return err
	}
	resp, err := ctx.WorkShifts.Approve(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printRegistrationMutation(ctx, resp)
	return nil
}

type ShiftsRejectCmd struct {
	ID string `arg:"" help:"Registration id."`
}

func (c *ShiftsRejectCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin)
	if err != nil {
		return err
	}
	resp, err := ctx.WorkShifts.Reject(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printRegistrationMutation(ctx, resp)
	return nil
}

type ShiftsCancelCmd struct {
	ID string `arg:"" help:"Registration id."`
}

func (c *ShiftsCancelCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin, entity.RoleStaff)
	if err != nil {
		return err
	}
	resp, err := ctx.WorkShifts.Cancel(reqCtx, c.ID)
	if err != nil {
		return err
	}
	printRegistrationMutation(ctx, resp)
	return nil
}

func printRegistrationMutation(ctx *Context, resp *dto.RegistrationMutationResponse) {
	ctx.printf("%s\n", resp.Message)
	printStale(ctx, resp.Stale)
	if resp.Registrations != nil {
		ctx.printf("Pending:\n")
		printRegistrations(ctx, resp.Registrations.Pending)
	}
}

func printRegistrations(ctx *Context, registrations []dto.RegistrationResponse) {
	if len(registrations) == 0 {
		ctx.printf("  (none)\n")
		return
	}
	for _, r := range registrations {
		staff := r.StaffName
		if staff == "" {
			staff = r.StaffID
		}
		shift := r.ShiftName
		if shift == "" {
			shift = r.ShiftID
		}
		ctx.printf("  [%s] %s %s -> %s\n", r.Status, r.ID, staff, shift)
	}
}
