// Package events delivers job status events to subscribers via PostgreSQL
// NOTIFY/LISTEN. Events are persisted to the events table and broadcast in
// the same transaction, so a subscriber that reconnects can catch up from the
// table using the db_event_id carried on every notification.
package events

// GlobalJobsChannel carries transient copies of job-level terminal events.
// Dashboards listing jobs subscribe here instead of one channel per job.
const GlobalJobsChannel = "jobs"

// JobChannel returns the NOTIFY channel for one job's status events.
// Format: "job:{job_id}"
func JobChannel(jobID string) string {
	return "job:" + jobID
}

// notifyLimit is the usable size for a NOTIFY payload. PostgreSQL caps
// payloads at 8000 bytes; we leave headroom for the db_event_id injection.
const notifyLimit = 7900
