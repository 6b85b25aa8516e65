package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameExists         = errors.New("a department with this name already exists")
	ErrNameTooShort       = errors.New("department name must be at least 2 characters long")
	ErrHasWorkers         = errors.New("cannot delete department while workers are assigned to it")
)
