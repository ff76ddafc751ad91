package models

// Job is a row of the jobs table. Equity is a decimal string such as "0.25".
type Job struct {
	ID            int     `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Salary        *int    `json:"salary" db:"salary"`
	Equity        *string `json:"equity" db:"equity"`
	CompanyHandle string  `json:"companyHandle" db:"company_handle"`
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string  `json:"title" validate:"required"`
	Salary        *int    `json:"salary" validate:"omitempty,gte=0"`
	Equity        *string `json:"equity" validate:"omitempty,equity"`
	CompanyHandle string  `json:"companyHandle" validate:"required,max=25"`
}

// UpdateJobRequest is the body of PATCH /jobs/:id. The id and the company
// of a job never change.
type UpdateJobRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=1"`
	Salary *int    `json:"salary" validate:"omitempty,gte=0"`
	Equity *string `json:"equity" validate:"omitempty,equity"`
}

// JobSearchQuery is the query string of GET /jobs.
type JobSearchQuery struct {
	Title     *string `schema:"title" validate:"omitempty,min=1"`
	MinSalary *int    `schema:"minSalary" validate:"omitempty,gte=0"`
	HasEquity *bool   `schema:"hasEquity"`
}
