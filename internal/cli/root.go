package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/jwt"
)

var (
	ErrMissingToken = errors.New("no token: pass --token or set SALON_TOKEN")
	ErrRoleRequired = errors.New("this command is not available for your role")
)

// Context carries what every command needs. Call Authorize before Run.
type Context struct {
	Out          io.Writer
	Inspector    *jwt.Inspector
	Appointments usecase.AppointmentUsecase
	WorkShifts   usecase.WorkShiftUsecase
	Dashboard    usecase.DashboardUsecase
	Reminders    usecase.ReminderUsecase

	ctx      context.Context
	identity jwt.Identity
}

// Authorize reads the caller from token and attaches it to every use case
// call the commands make.
func (c *Context) Authorize(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrMissingToken
	}

	claims, err := c.Inspector.Inspect(token)
	if err != nil {
		return err
	}
	if claims.UserID == "" {
		return fmt.Errorf("%w: token carries no user id", jwt.ErrMalformedToken)
	}

	c.identity = jwt.Identity{Token: token, UserID: claims.UserID, Role: claims.Role}
	c.ctx = jwt.WithIdentity(backend.WithToken(ctx, token), c.identity)
	return nil
}

func (c *Context) requireRole(roles ...entity.Role) (context.Context, error) {
	if c.ctx == nil {
		return nil, ErrMissingToken
	}
	if len(roles) > 0 && !slices.Contains(roles, entity.Role(c.identity.Role)) {
		return nil, ErrRoleRequired
	}
	return c.ctx, nil
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Describe turns a command failure into the line shown to the user.
func Describe(err error) string {
	var validationErrs usecase.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		messages := validationErrs.Messages()
		fields := make([]string, 0, len(messages))
		for field := range messages {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		lines := make([]string, len(fields))
		for i, field := range fields {
			lines[i] = fmt.Sprintf("%s: %s", field, messages[field])
		}
		return strings.Join(lines, "\n")
	case errors.Is(err, service.ErrRequestInFlight):
		return "Yêu cầu đang được xử lý, vui lòng đợi"
	case errors.Is(err, usecase.ErrAlreadyRegistered):
		return usecase.AlreadyRegisteredMessage
	case errors.Is(err, usecase.ErrNoAppointmentsSelected):
		return "Vui lòng chọn ít nhất một lịch hẹn"
	default:
		return backend.Message(err)
	}
}

func printStale(c *Context, stale bool) {
	if stale {
		c.printf("warning: the list below could not be refreshed and may be out of date\n")
	}
}
