package domain

// Country represents one record of the dataset
type Country struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Code    string `json:"code"`
	Capital string `json:"capital"`
}
