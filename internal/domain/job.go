package domain

// JobRecord is one extracted job detail page. Field order here is the
// CSV column order; every field is a plain string and defaults to ""
// when the page doesn't carry it, so all records share the same shape.
type JobRecord struct {
	Title          string
	Company        string
	Location       string
	DatePosted     string
	Description    string
	SeniorityLevel string
	Industries     string
	EmploymentType string
	JobFunctions   string
}

// FieldNames returns the CSV header in declaration order.
func FieldNames() []string {
	return []string{
		"title",
		"company",
		"location",
		"datePosted",
		"description",
		"seniorityLevel",
		"industries",
		"employmentType",
		"jobFunctions",
	}
}

// Values returns the record's fields in the same order as FieldNames.
func (r JobRecord) Values() []string {
	return []string{
		r.Title,
		r.Company,
		r.Location,
		r.DatePosted,
		r.Description,
		r.SeniorityLevel,
		r.Industries,
		r.EmploymentType,
		r.JobFunctions,
	}
}

// Set assigns a field by its FieldNames name. Unknown names are ignored.
func (r *JobRecord) Set(name, value string) {
	switch name {
	case "title":
		r.Title = value
	case "company":
		r.Company = value
	case "location":
		r.Location = value
	case "datePosted":
		r.DatePosted = value
	case "description":
		r.Description = value
	case "seniorityLevel":
		r.SeniorityLevel = value
	case "industries":
		r.Industries = value
	case "employmentType":
		r.EmploymentType = value
	case "jobFunctions":
		r.JobFunctions = value
	}
}
