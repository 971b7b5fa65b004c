package cli

import (
	"salon-booking/internal/converter"
	"salon-booking/internal/domain/entity"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	reqCtx, err := ctx.requireRole(entity.RoleAdmin)
	if err != nil {
		return err
	}

	resp, err := ctx.Dashboard.Summary(reqCtx)
	if err != nil {
		return err
	}

	ctx.printf("Customers: %d\nStaff: %d\nServices: %d\n", resp.Customers, resp.Staff, resp.Services)
	ctx.printf("Appointments: %d (%d completed)\n", resp.Appointments, resp.CompletedAppointments)
	ctx.printf("Revenue: %s (average %s)\n", resp.FormattedRevenue, resp.AverageRevenue)
	for _, m := range resp.RevenueByMonth {
		ctx.printf("  %s  %s\n", m.Month, converter.FormatPrice(m.Revenue))
	}
	return nil
}
