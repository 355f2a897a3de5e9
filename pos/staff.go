package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/utils"
)

func (s *Service) Employees(ctx context.Context) ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForLocation(s.store.Employees.All(), orgId, s.session.SelectedLocationId), nil
}

func (s *Service) AddEmployee(ctx context.Context, input *models.NewEmployee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Employee{}, err
	}
	locId, err := s.writeLocation(orgId, input.LocationId)
	if err != nil {
		return models.Employee{}, err
	}
	employee, err := input.Build("", orgId, locId)
	if err != nil {
		return models.Employee{}, err
	}
	s.store.Employees.Add(ctx, employee)
	return employee, nil
}

// UpdateEmployee replaces the employee's profile. Clock status and location are kept unless input names a location.
func (s *Service) UpdateEmployee(ctx context.Context, id string, input *models.NewEmployee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Employee{}, err
	}
	existing, err := store.GetScoped(s.store.Employees, id, orgId)
	if err != nil {
		return models.Employee{}, err
	}
	locId := existing.LocationId
	if input.LocationId != "" {
		if locId, err = s.writeLocation(orgId, input.LocationId); err != nil {
			return models.Employee{}, err
		}
	}
	employee, err := input.Build(id, orgId, locId)
	if err != nil {
		return models.Employee{}, err
	}
	employee.Status = existing.Status
	s.store.Employees.Update(ctx, employee)
	return employee, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Employees, id, orgId); err != nil {
		return err
	}
	s.store.Employees.Delete(ctx, id)
	return nil
}

// ClockIn marks the employee clocked in and opens a shift starting now.
func (s *Service) ClockIn(ctx context.Context, employeeId string) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Shift{}, err
	}
	employee, err := store.GetScoped(s.store.Employees, employeeId, orgId)
	if err != nil {
		return models.Shift{}, err
	}
	employee.Status = models.EmployeeClockedIn
	shift := models.Shift{
		Id:             utils.NewId(),
		OrganizationId: orgId,
		EmployeeId:     employee.Id,
		StartTime:      s.now(),
	}

	s.store.Commit(ctx,
		s.store.Employees.Stage(replace(s.store.Employees.All(), employee)),
		s.store.Shifts.Stage(append(s.store.Shifts.All(), shift)),
	)
	return shift, nil
}

// ClockOut marks the employee clocked out and closes every shift they still have open.
func (s *Service) ClockOut(ctx context.Context, employeeId string) ([]models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	employee, err := store.GetScoped(s.store.Employees, employeeId, orgId)
	if err != nil {
		return nil, err
	}
	employee.Status = models.EmployeeClockedOut

	now := s.now()
	closed := []models.Shift{}
	shifts := s.store.Shifts.All()
	for i, sh := range shifts {
		if sh.EmployeeId == employee.Id && sh.IsOpen() {
			shifts[i] = sh.Close(now)
			closed = append(closed, shifts[i])
		}
	}

	s.store.Commit(ctx,
		s.store.Employees.Stage(replace(s.store.Employees.All(), employee)),
		s.store.Shifts.Stage(shifts),
	)
	return closed, nil
}

func (s *Service) Shifts(ctx context.Context) ([]models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForOrganization(s.store.Shifts.All(), orgId), nil
}

func (s *Service) AddShift(ctx context.Context, input *models.NewShift) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Shift{}, err
	}
	if _, err := store.GetScoped(s.store.Employees, input.EmployeeId, orgId); err != nil {
		return models.Shift{}, err
	}
	shift, err := input.Build("", orgId)
	if err != nil {
		return models.Shift{}, err
	}
	s.store.Shifts.Add(ctx, shift)
	return shift, nil
}

// UpdateShift replaces the shift; hours worked are recomputed from its start and end.
func (s *Service) UpdateShift(ctx context.Context, id string, input *models.NewShift) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Shift{}, err
	}
	if _, err := store.GetScoped(s.store.Shifts, id, orgId); err != nil {
		return models.Shift{}, err
	}
	if _, err := store.GetScoped(s.store.Employees, input.EmployeeId, orgId); err != nil {
		return models.Shift{}, err
	}
	shift, err := input.Build(id, orgId)
	if err != nil {
		return models.Shift{}, err
	}
	s.store.Shifts.Update(ctx, shift)
	return shift, nil
}

func (s *Service) DeleteShift(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Shifts, id, orgId); err != nil {
		return err
	}
	s.store.Shifts.Delete(ctx, id)
	return nil
}

// replace swaps the record sharing r's id.
func replace[T models.Resource](items []T, r T) []T {
	for i := range items {
		if items[i].GetId() == r.GetId() {
			items[i] = r
		}
	}
	return items
}
