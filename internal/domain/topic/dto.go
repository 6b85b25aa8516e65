package topic

import "github.com/tracklabs/workforce-backend-go/internal/pkg/validator"

type CreateTopicRequest struct {
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Department string `json:"department"`
}

func (r *CreateTopicRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "topic name cannot be empty",
		})
	}

	if r.Points < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "points",
			Message: "points must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTopicRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Points     *int    `json:"points"`
	Department *string `json:"department"`
}

func (r *UpdateTopicRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "topic name cannot be empty",
		})
	}

	if r.Points != nil && *r.Points < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "points",
			Message: "points must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
