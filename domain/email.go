package domain

import "time"

// EmailRecord is one entry in the mail log, the file-backed stand-in for
// outbound email delivery. One JSON object per line.
type EmailRecord struct {
	Time    time.Time `json:"time"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
}
