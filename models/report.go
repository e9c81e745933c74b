package models

// CIBILReport is a credit report the borrower attached. Its contents are
// never parsed; they are forwarded verbatim with the next analysis.
type CIBILReport struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"` // base64 in JSON
}

func (r *CIBILReport) Size() int {
	if r == nil {
		return 0
	}
	return len(r.Data)
}
