package models

type Document struct {
	ID              int64  `json:"id"`
	EmployeeID      int64  `json:"employeeId"`
	EmployeeName    string `json:"employeeName,omitempty"`
	DocumentType    string `json:"documentType"`
	DocumentNumber  string `json:"documentNumber,omitempty"`
	IssueDate       string `json:"issueDate,omitempty"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
	DaysUntilExpiry *int   `json:"daysUntilExpiry,omitempty"`
	FileName        string `json:"fileName,omitempty"`
	ContentType     string `json:"contentType,omitempty"`
}

func (d Document) Expiry() ExpiryLabel {
	return Classify(d.DaysUntilExpiry)
}

// DocumentUpload is the metadata part of the multipart upload form.
type DocumentUpload struct {
	EmployeeID     int64  `json:"employeeId" validate:"required,gt=0"`
	DocumentType   string `json:"documentType" validate:"required"`
	DocumentNumber string `json:"documentNumber,omitempty" validate:"omitempty,max=64"`
	IssueDate      string `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     string `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// FindDuplicate returns the first document in existing, other than the
// candidate itself, with the same type and number. Documents without a
// number never match.
func FindDuplicate(existing []Document, candidate Document) *Document {
	if candidate.DocumentNumber == "" {
		return nil
	}
	for i := range existing {
		d := existing[i]
		if d.ID == candidate.ID {
			continue
		}
		if d.DocumentType == candidate.DocumentType && d.DocumentNumber == candidate.DocumentNumber {
			return &existing[i]
		}
	}
	return nil
}
