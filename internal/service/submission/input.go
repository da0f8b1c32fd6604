package submission

import (
	"github.com/daviidy/transpayra-backend/internal/domain"
)

// SubmitInput holds parameters for a salary submission.
type SubmitInput struct {
	Company    string
	JobTitle   string
	Location   string
	BaseSalary domain.Money
	Bonus      domain.Money
	Stock      domain.Money
}

func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.Company == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
	} else if len(i.Company) > 255 {
		errs = append(errs, domain.FieldError{Field: "company", Message: "too long"})
	}

	if i.JobTitle == "" {
		errs = append(errs, domain.FieldError{Field: "job_title", Message: "required"})
	} else if len(i.JobTitle) > 255 {
		errs = append(errs, domain.FieldError{Field: "job_title", Message: "too long"})
	}

	if i.Location == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	} else if len(i.Location) > 255 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}

	if i.BaseSalary <= 0 {
		errs = append(errs, domain.FieldError{Field: "base_salary", Message: "must be positive"})
	}
	if i.Bonus < 0 {
		errs = append(errs, domain.FieldError{Field: "bonus", Message: "must not be negative"})
	}
	if i.Stock < 0 {
		errs = append(errs, domain.FieldError{Field: "stock", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MigrateInput holds parameters for adopting anonymous submissions.
type MigrateInput struct {
	Token string
}

func (i MigrateInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.Token) > 512 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
