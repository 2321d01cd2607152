package service

import "time"

// RemoteList represents a task list on a remote service.
type RemoteList struct {
	ID    string
	Title string
}

// RemoteTask is the shape a local task takes when published.
type RemoteTask struct {
	Title     string
	Notes     string
	Due       time.Time
	Completed bool
}

// PublishResult summarizes a publish run.
type PublishResult struct {
	List        RemoteList
	ListCreated bool
	Created     int
	Skipped     int // already in the remote list before the run
	Duplicates  int // repeated a description published earlier in the same run
}
