package employee

type Employee struct {
	ID           string
	CompanyID    string
	FirstName    string
	LastName     string
	EmployeeCode string
	Department   string
}

// DisplayName is the label used on report rows.
func (e Employee) DisplayName() string {
	switch {
	case e.FirstName == "" && e.LastName == "":
		return e.EmployeeCode
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
