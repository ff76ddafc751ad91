package models

// Company is a row of the companies table.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CacheKey is the cache key of a company detail. Job writes invalidate it
// as well since the detail lists the company's jobs.
func CacheKey(handle string) string {
	return "company:" + handle
}

// CompanyJob is the summary of a job listed under its company.
type CompanyJob struct {
	ID     int     `json:"id" db:"id"`
	Title  string  `json:"title" db:"title"`
	Salary *int    `json:"salary" db:"salary"`
	Equity *string `json:"equity" db:"equity"`
}

// CompanyDetail is a company together with its jobs.
type CompanyDetail struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,max=25,lowercase"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// UpdateCompanyRequest is the body of PATCH /companies/:handle. Only the
// fields present in the body are changed.
type UpdateCompanyRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// CompanySearchQuery is the query string of GET /companies.
type CompanySearchQuery struct {
	NameLike     *string `schema:"nameLike"`
	MinEmployees *int    `schema:"minEmployees"`
	MaxEmployees *int    `schema:"maxEmployees"`
}
