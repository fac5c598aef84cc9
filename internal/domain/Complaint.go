package domain

import "github.com/pkg/errors"

// Complaint é uma reclamação recente identificada pelo backend de análise
type Complaint struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// ValidateComplaints garante que cada reclamação possui texto
func ValidateComplaints(complaints []Complaint) error {
	for i, complaint := range complaints {
		if complaint.Text == "" {
			return errors.Errorf("reclamação %d sem texto", i)
		}
	}

	return nil
}
