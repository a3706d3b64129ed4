package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule       Module = "USERS"
	DictModule        Module = "DICT"
	WorkflowModule    Module = "WORKFLOW"
	JobModule         Module = "JOB"
	CandidateModule   Module = "CANDIDATE"
	ApplicationModule Module = "APPLICATION"
	InterviewModule   Module = "INTERVIEW"
	OfferModule       Module = "OFFER"
	DashboardModule   Module = "DASHBOARD"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	FilesPermission  Permission = "FILES"
)
