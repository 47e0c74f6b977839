package models

// Issue is a tracker issue as far as the report is concerned
type Issue struct {
	// Key is the tracker identifier (e.g., "MYPROJ-12")
	Key string
	// Status is the workflow status name (e.g., "In Progress")
	Status string
}
