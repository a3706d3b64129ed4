package models

type CandidateStatus string

const (
	CandidateStatusNew         CandidateStatus = "New"
	CandidateStatusShortlisted CandidateStatus = "Shortlisted"
	CandidateStatusInterviewed CandidateStatus = "Interviewed"
	CandidateStatusRejected    CandidateStatus = "Rejected"
	CandidateStatusHired       CandidateStatus = "Hired"
	CandidateStatusPool        CandidateStatus = "Pool"
)

type CandidateSource string

const (
	CandidateSourceCareerPage  CandidateSource = "Internal Career Page"
	CandidateSourceJobPortal   CandidateSource = "Job Portal"
	CandidateSourceSocialMedia CandidateSource = "Social Media"
	CandidateSourceCampus      CandidateSource = "Campus Placement"
	CandidateSourceReference   CandidateSource = "Reference"
	CandidateSourceWalkIn      CandidateSource = "Walk-in"
	CandidateSourceManual      CandidateSource = "Manual Entry"
)

type JobStatus string

const (
	JobStatusDraft           JobStatus = "Draft"
	JobStatusPendingApproval JobStatus = "Pending Approval"
	JobStatusApproved        JobStatus = "Approved"
	JobStatusActive          JobStatus = "Active"
	JobStatusClosed          JobStatus = "Closed"
	JobStatusArchived        JobStatus = "Archived"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeTrainee    JobType = "Management Trainee"
	JobTypeInternship JobType = "Internship"
)

type LocationType string

const (
	LocationTypeOnsite LocationType = "onsite"
	LocationTypeRemote LocationType = "remote"
	LocationTypeHybrid LocationType = "hybrid"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "Interviewed"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusHired       ApplicationStatus = "Hired"
)

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "Scheduled"
	InterviewStatusCompleted InterviewStatus = "Completed"
	InterviewStatusCancelled InterviewStatus = "Cancelled"
)

type RoundType string

const (
	RoundTypeHR        RoundType = "HR"
	RoundTypeManager   RoundType = "Manager"
	RoundTypeExecutive RoundType = "Executive"
)

// RequiredRoundTypes - раунды, обязательные для подсчёта итогового процента
var RequiredRoundTypes = []RoundType{RoundTypeHR, RoundTypeManager, RoundTypeExecutive}

func (r RoundType) IsValid() bool {
	return r == RoundTypeHR || r == RoundTypeManager || r == RoundTypeExecutive
}

type OfferStatus string

const (
	OfferStatusDraft    OfferStatus = "DRAFT"
	OfferStatusSent     OfferStatus = "SENT"
	OfferStatusAccepted OfferStatus = "ACCEPTED"
	OfferStatusRejected OfferStatus = "REJECTED"
)

// ShortlistThreshold - порог итогового процента для перевода кандидата в Shortlisted
const ShortlistThreshold = 60.0
