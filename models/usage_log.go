package models

import "time"

// UsageTimeLayout is the wire format of handset_submit_time.
const UsageTimeLayout = "2006-01-02 15:04:05"

// UsageLog is a locally queued search-usage record waiting to be submitted
// to the server.
type UsageLog struct {
	ID            int64     `json:"id"`
	SubmitTime    time.Time `json:"handset_submit_time"`
	IntervieweeID string    `json:"interviewee_id"`
	Keyword       string    `json:"keyword"`
}

// UsageContext carries handset-wide values attached to every submitted log.
type UsageContext struct {
	HandsetID string `json:"handset_id"`
	Location  string `json:"location"`
}

// UsageReport is one submitted usage log as received by the catalog server.
type UsageReport struct {
	Log       UsageLog     `json:"log"`
	Context   UsageContext `json:"context"`
	Received  time.Time    `json:"received"`
	RequestIP string       `json:"request_ip,omitempty"`
}
