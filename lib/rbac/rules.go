package rbac

import (
	"hrms-backend/models"
)

var (
	AdminHrRoleSet         = []models.UserRole{models.UserRoleAdmin, models.UserRoleHrSpoc}
	RecruitingRoleSet      = []models.UserRole{models.UserRoleAdmin, models.UserRoleHrSpoc, models.UserRoleRecruiter}
	AdminHrEmployerRoleSet = []models.UserRole{models.UserRoleAdmin, models.UserRoleHrSpoc, models.UserRoleEmployer}
	InterviewerRoleSet     = []models.UserRole{models.UserRoleAdmin, models.UserRoleHrSpoc, models.UserRoleManager, models.UserRoleEmployer}
	AllRoles               = []models.UserRole{models.UserRoleAdmin, models.UserRoleHrSpoc, models.UserRoleEmployer, models.UserRoleManager, models.UserRoleRecruiter}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.addDictsRbac()
	i.addWorkflowRbac()
	i.addJobRbac()
	i.addCandidateRbac()
	i.addApplicationRbac()
	i.addInterviewRbac()
	i.addOfferRbac()
	i.addDashboardRbac()
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/list [post]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, []models.UserRole{models.UserRoleAdmin}, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, []models.UserRole{models.UserRoleAdmin}, "/api/v1/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, []models.UserRole{models.UserRoleAdmin}, "/api/v1/users/{id} [delete]", nil)
}

func (i *impl) addDictsRbac() {
	//VIEW
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/department/list [post]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/department/{id} [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/agency/list [post]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/agency/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/dict/department [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/dict/department/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/dict/department/{id} [delete]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/dict/agency [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/dict/agency/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/dict/agency/{id} [delete]", nil)
}

func (i *impl) addWorkflowRbac() {
	//VIEW
	i.RegisterRule(models.WorkflowModule, models.ViewPermission, AllRoles, "/api/v1/workflow/list [post]", nil)
	i.RegisterRule(models.WorkflowModule, models.ViewPermission, AllRoles, "/api/v1/workflow/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.WorkflowModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/workflow [post]", nil)
	i.RegisterRule(models.WorkflowModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/workflow/{id} [put]", nil)
	i.RegisterRule(models.WorkflowModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/workflow/{id} [delete]", nil)
}

func (i *impl) addJobRbac() {
	//VIEW
	i.RegisterRule(models.JobModule, models.ViewPermission, AllRoles, "/api/v1/space/job/list [post]", nil)
	i.RegisterRule(models.JobModule, models.ViewPermission, AllRoles, "/api/v1/space/job/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.JobModule, models.CreatePermission, AdminHrEmployerRoleSet, "/api/v1/space/job [post]", nil)
	i.RegisterRule(models.JobModule, models.EditPermission, AdminHrEmployerRoleSet, "/api/v1/space/job/{id} [put]", nil)
	i.RegisterRule(models.JobModule, models.EditPermission, AdminHrRoleSet, "/api/v1/space/job/{id} [delete]", nil)
	//FLOW - согласование и публикация
	i.RegisterRule(models.JobModule, models.FlowPermission, AdminHrEmployerRoleSet, "/api/v1/space/job/{id}/submit_for_approval [put]", nil)
	i.RegisterRule(models.JobModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/space/job/{id}/approve [put]", nil)
	i.RegisterRule(models.JobModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/space/job/{id}/reject [put]", nil)
	i.RegisterRule(models.JobModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/space/job/{id}/publish [put]", nil)
	i.RegisterRule(models.JobModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/space/job/{id}/close [put]", nil)
	//подбор в пул
	i.RegisterRule(models.JobModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/job/{id}/pool_candidates [post]", nil)
}

func (i *impl) addCandidateRbac() {
	//VIEW
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/space/candidate/list [post]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/space/candidate/{id} [get]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, AllRoles, "/api/v1/space/candidate/search [post]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.CandidateModule, models.CreatePermission, RecruitingRoleSet, "/api/v1/space/candidate [post]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, RecruitingRoleSet, "/api/v1/space/candidate/{id} [put]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, AdminHrRoleSet, "/api/v1/space/candidate/{id} [delete]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, RecruitingRoleSet, "/api/v1/space/candidate/{id}/pool/add [put]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, RecruitingRoleSet, "/api/v1/space/candidate/{id}/pool/remove [put]", nil)
	//FILES
	i.RegisterRule(models.CandidateModule, models.FilesPermission, RecruitingRoleSet, "/api/v1/space/candidate/{id}/upload-resume [post]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AllRoles, "/api/v1/space/candidate/{id}/resume [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/space/candidate/export [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/space/candidate/import-template [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/space/candidate/import [post]", nil)
}

func (i *impl) addApplicationRbac() {
	//VIEW
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/space/application/list [post]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/space/application/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.ApplicationModule, models.CreatePermission, RecruitingRoleSet, "/api/v1/space/application [post]", nil)
	i.RegisterRule(models.ApplicationModule, models.EditPermission, RecruitingRoleSet, "/api/v1/space/application/{id} [put]", nil)
	i.RegisterRule(models.ApplicationModule, models.EditPermission, AdminHrRoleSet, "/api/v1/space/application/{id} [delete]", nil)
}

func (i *impl) addInterviewRbac() {
	//VIEW
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/space/interview/list [post]", nil)
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/space/interview/{id} [get]", nil)
	//CREATE
	i.RegisterRule(models.InterviewModule, models.CreatePermission, RecruitingRoleSet, "/api/v1/space/interview [post]", nil)
	//FLOW - раунды проводят интервьюеры
	i.RegisterRule(models.InterviewModule, models.FlowPermission, InterviewerRoleSet, "/api/v1/space/interview/{id}/round/start [post]", nil)
	i.RegisterRule(models.InterviewModule, models.FlowPermission, InterviewerRoleSet, "/api/v1/space/interview/{id}/round/submit [post]", nil)
	//вопросы
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/space/interview/question/list [post]", nil)
	i.RegisterRule(models.InterviewModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/interview/question [post]", nil)
	i.RegisterRule(models.InterviewModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/space/interview/question/{id} [delete]", nil)
}

func (i *impl) addOfferRbac() {
	//VIEW
	i.RegisterRule(models.OfferModule, models.ViewPermission, AllRoles, "/api/v1/space/offer/list [post]", nil)
	i.RegisterRule(models.OfferModule, models.ViewPermission, AllRoles, "/api/v1/space/offer/{id} [get]", nil)
	i.RegisterRule(models.OfferModule, models.ViewPermission, AllRoles, "/api/v1/space/offer/{id}/download [get]", nil)
	//FLOW
	i.RegisterRule(models.OfferModule, models.FlowPermission, AdminHrRoleSet, "/api/v1/space/candidate/{id}/issue-offer [post]", nil)
	i.RegisterRule(models.OfferModule, models.FlowPermission, RecruitingRoleSet, "/api/v1/space/offer/{id}/accept [put]", nil)
	i.RegisterRule(models.OfferModule, models.FlowPermission, RecruitingRoleSet, "/api/v1/space/offer/{id}/reject [put]", nil)
}

func (i *impl) addDashboardRbac() {
	// VIEW
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/overview [get]", nil)
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/stats [get]", nil)
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/activity [get]", nil)
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/funnel [get]", nil)
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/pool [get]", nil)
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/pending_approvals [get]", nil)
	i.RegisterRule(models.DashboardModule, models.ViewPermission, RecruitingRoleSet, "/api/v1/space/dashboard/upcoming_interviews [get]", nil)
	// статистика по отделам доступна администратору и hr
	i.RegisterRule(models.DashboardModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/space/dashboard/departments [get]", nil)
}
