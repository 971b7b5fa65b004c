package usecase

import (
	"context"
	"fmt"
	"sort"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type DashboardUsecase interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	userRepo        repository.UserRepository
	serviceRepo     repository.ServiceRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		userRepo:        userRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Summary loads the four admin lists concurrently and derives the counts and
// revenue figures. Any failed load fails the summary.
func (u *dashboardUsecase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		customers    []entity.User
		staff        []entity.User
		services     []entity.Service
		appointments []entity.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customers, err = u.userRepo.FindAllCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		staff, err = u.userRepo.FindAllStaff(gctx)
		return err
	})
	g.Go(func() (err error) {
		services, err = u.serviceRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = u.appointmentRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard: %+v", err)
		return nil, err
	}

	revenue := summarizeRevenue(appointments)

	return &dto.DashboardResponse{
		Customers:             len(customers),
		Staff:                 len(staff),
		Services:              len(services),
		Appointments:          len(appointments),
		CompletedAppointments: revenue.completed,
		TotalRevenue:          revenue.total.IntPart(),
		FormattedRevenue:      converter.FormatVND(revenue.total),
		AverageRevenue:        converter.FormatVND(revenue.average()),
		RevenueByMonth:        revenue.months,
	}, nil
}

type revenueSummary struct {
	completed int
	total     decimal.Decimal
	months    []dto.MonthlyRevenue
}

func (r revenueSummary) average() decimal.Decimal {
	if r.completed == 0 {
		return decimal.Zero
	}
	return r.total.Div(decimal.NewFromInt(int64(r.completed)))
}

type monthKey struct {
	year  int
	month int
}

// summarizeRevenue totals completed appointments and groups them by month,
// oldest month first. Appointments with an unreadable date still count
// towards the total.
func summarizeRevenue(appointments []entity.Appointment) revenueSummary {
	summary := revenueSummary{total: decimal.Zero, months: []dto.MonthlyRevenue{}}
	byMonth := map[monthKey]decimal.Decimal{}

	for i := range appointments {
		a := &appointments[i]
		if !a.IsCompleted() {
			continue
		}
		price := decimal.NewFromInt(a.TotalPrice)
		summary.completed++
		summary.total = summary.total.Add(price)

		var key monthKey
		if _, err := fmt.Sscanf(a.Day(), "%4d-%2d-", &key.year, &key.month); err != nil {
			continue
		}
		byMonth[key] = byMonth[key].Add(price)
	}

	keys := make([]monthKey, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	for _, key := range keys {
		summary.months = append(summary.months, dto.MonthlyRevenue{
			Month:   fmt.Sprintf("%02d/%04d", key.month, key.year),
			Revenue: byMonth[key].IntPart(),
		})
	}
	return summary
}
