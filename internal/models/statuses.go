package models

type UserRole string

const (
	UserRoleTalent   UserRole = "talent"
	UserRoleProducer UserRole = "producer"
	UserRoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusPublished ProjectStatus = "published"
)

// Wizard steps in order. A project records the furthest step saved.
type ProjectStep string

const (
	ProjectStepDetails      ProjectStep = "details"
	ProjectStepRoles        ProjectStep = "roles"
	ProjectStepCompensation ProjectStep = "compensation"
	ProjectStepPrescreens   ProjectStep = "prescreens"
)

type CompensationKind string

const (
	CompensationPaid     CompensationKind = "paid"
	CompensationUnpaid   CompensationKind = "unpaid"
	CompensationDeferred CompensationKind = "deferred"
)

type PrescreenKind string

const (
	PrescreenKindText   PrescreenKind = "text"
	PrescreenKindChoice PrescreenKind = "choice"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

type NotificationType string

const (
	NotificationConnectionRequest  NotificationType = "connection_request"
	NotificationConnectionAccepted NotificationType = "connection_accepted"
	NotificationNewMessage         NotificationType = "new_message"
	NotificationNewReview          NotificationType = "new_review"
)
