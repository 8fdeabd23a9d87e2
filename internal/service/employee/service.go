package employee

import (
	"context"
	"fmt"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/clock"
	"github.com/clockdesk/timeclock-backend-go/internal/domain/employee"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/clockdesk/timeclock-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	clockService clock.ClockService
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	clockService clock.ClockService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		clockService:       clockService,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.EmployeeRepository.ActiveClockCodeExists(txCtx, req.ClockCode, "")
		if err != nil {
			return fmt.Errorf("failed to check clock code: %w", err)
		}
		if exists {
			return employee.ErrClockCodeExists
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			Name:      req.Name,
			JobRole:   req.JobRole,
			DailyRate: req.DailyRate,
			ClockCode: req.ClockCode,
			IsActive:  true,
		})
		return err
	})

	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeeResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	items := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, employee.ToResponse(e))
	}

	return employee.ListEmployeeResponse{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
//
// Runs against a FOR UPDATE lock on the employee row so the open-shift check
// cannot race a concurrent kiosk punch: a punch transaction holds the same
// lock for its whole read-decide-write sequence.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.EmployeeRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		next := current
		if req.Name != nil {
			next.Name = *req.Name
		}
		if req.JobRole != nil {
			next.JobRole = *req.JobRole
		}
		if req.DailyRate != nil {
			next.DailyRate = *req.DailyRate
		}
		if req.ClockCode != nil {
			next.ClockCode = *req.ClockCode
		}
		if req.IsActive != nil {
			next.IsActive = *req.IsActive
		}

		codeChanged := next.ClockCode != current.ClockCode
		if codeChanged {
			hasOpen, err := s.clockService.HasOpenShift(txCtx, current.ID)
			if err != nil {
				return err
			}
			if hasOpen {
				return employee.ErrOpenShift
			}
		}

		// A changed code or a reactivation can both collide with an active
		// employee's code; either way the uniqueness invariant must hold.
		if next.IsActive && (codeChanged || !current.IsActive) {
			exists, err := s.EmployeeRepository.ActiveClockCodeExists(txCtx, next.ClockCode, current.ID)
			if err != nil {
				return fmt.Errorf("failed to check clock code: %w", err)
			}
			if exists {
				return employee.ErrClockCodeExists
			}
		}

		updated, err = s.EmployeeRepository.Update(txCtx, next)
		return err
	})

	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.EmployeeRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if !current.IsActive {
			return employee.ErrAlreadyInactive
		}

		hasOpen, err := s.clockService.HasOpenShift(txCtx, current.ID)
		if err != nil {
			return err
		}
		if hasOpen {
			return employee.ErrOpenShift
		}

		current.IsActive = false
		updated, err = s.EmployeeRepository.Update(txCtx, current)
		return err
	})

	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}
