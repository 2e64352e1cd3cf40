package models

// Record is one normalized dashboard row. Blank reports whether the record
// carries no identifying fields and should be dropped after mapping.
type Record interface {
	Blank() bool
}

// RiskRecord is one row of the risk register.
type RiskRecord struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Rating         string `json:"rating"`
	OwnerRole      string `json:"ownerRole"`
	NextActionDate string `json:"nextActionDate"`
	LastUpdatedRow string `json:"lastUpdatedRow"`
}

// Blank reports whether both the id and description are empty.
func (r RiskRecord) Blank() bool {
	return r.ID == "" && r.Description == ""
}

// TqRecord is one row of the technical-query log.
type TqRecord struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Blank reports whether both the id and title are empty.
func (r TqRecord) Blank() bool {
	return r.ID == "" && r.Title == ""
}

// DatasetOutput is the JSON document the dashboard reads. It is rebuilt from
// scratch on every run; the previous file is fully replaced.
type DatasetOutput struct {
	// LastUpdated is the shared generation timestamp of the run,
	// formatted as "YYYY-MM-DD HH:MM TZ".
	LastUpdated string `json:"lastUpdated"`
	// Items holds the records in sheet row order.
	Items []Record `json:"items"`
}
