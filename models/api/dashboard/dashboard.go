package dashboardapimodels

import "time"

// StatCard - карточка показателя на главной странице
type StatCard struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	Change     string `json:"change"`
	ChangeType string `json:"changeType"`
	Icon       string `json:"icon"`
}

type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type JobStats struct {
	Total           int64 `json:"total"`
	Active          int64 `json:"active"`
	PendingApproval int64 `json:"pending_approval"`
	Draft           int64 `json:"draft"`
}

type CandidateStats struct {
	Total       int64 `json:"total"`
	New         int64 `json:"new"`
	Shortlisted int64 `json:"shortlisted"`
	Interviewed int64 `json:"interviewed"`
	InPool      int64 `json:"in_pool"`
}

type ApplicationStats struct {
	Total       int64 `json:"total"`
	Applied     int64 `json:"applied"`
	Shortlisted int64 `json:"shortlisted"`
	Interviewed int64 `json:"interviewed"`
	Hired       int64 `json:"hired"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type Overview struct {
	Jobs            JobStats         `json:"jobs"`
	Candidates      CandidateStats   `json:"candidates"`
	Applications    ApplicationStats `json:"applications"`
	SourceBreakdown []SourceCount    `json:"source_breakdown"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type PoolStats struct {
	TotalInPool      int64            `json:"total_in_pool"`
	TopSkills        []SkillCount     `json:"top_skills"`
	ExperienceLevels map[string]int64 `json:"experience_levels"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

type SourceEffectiveness struct {
	Source        string  `json:"source"`
	Total         int64   `json:"total"`
	Shortlisted   int64   `json:"shortlisted"`
	Hired         int64   `json:"hired"`
	ShortlistRate float64 `json:"shortlist_rate"`
	HireRate      float64 `json:"hire_rate"`
}

type Funnel struct {
	Funnel              []FunnelStage         `json:"funnel"`
	SourceEffectiveness []SourceEffectiveness `json:"source_effectiveness"`
}

type DepartmentJobStats struct {
	DepartmentID string `json:"department_id"`
	TotalJobs    int64  `json:"total_jobs"`
	ActiveJobs   int64  `json:"active_jobs"`
}

type DepartmentApplicationStats struct {
	DepartmentID      string  `json:"department_id"`
	TotalApplications int64   `json:"total_applications"`
	Shortlisted       int64   `json:"shortlisted"`
	Hired             int64   `json:"hired"`
	ShortlistRate     float64 `json:"shortlist_rate"`
	HireRate          float64 `json:"hire_rate"`
}

type PendingJob struct {
	ID            string    `json:"id"`
	PositionTitle string    `json:"position_title"`
	PositionCode  string    `json:"position_code"`
	Department    string    `json:"department,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type UpcomingInterview struct {
	ID           string    `json:"id"`
	CandidateFIO string    `json:"candidate_fio,omitempty"`
	JobID        string    `json:"job_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

type DepartmentStats struct {
	JobsByDepartment         []DepartmentJobStats         `json:"jobs_by_department"`
	ApplicationsByDepartment []DepartmentApplicationStats `json:"applications_by_department"`
}
