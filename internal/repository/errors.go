package repository

import "errors"

// Common repository errors
var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrMilestoneNotFound is returned when a milestone is not found
	ErrMilestoneNotFound = errors.New("milestone not found")

	// ErrProposalNotFound is returned when a change proposal is not found
	ErrProposalNotFound = errors.New("change proposal not found")

	// ErrAttachmentNotFound is returned when an attachment is not found
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrJobPositionNotFound is returned when a job position is not found
	ErrJobPositionNotFound = errors.New("job position not found")

	// ErrNotificationEventNotFound is returned when a notification event is not found
	ErrNotificationEventNotFound = errors.New("notification event not found")
)
