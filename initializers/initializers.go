package initializers

import (
	"context"
	"hrms-backend/config"
	"hrms-backend/fiberlog"
	applicationhandler "hrms-backend/lib/application"
	candidatehandler "hrms-backend/lib/candidate"
	dashboardhandler "hrms-backend/lib/dashboard"
	agencyprovider "hrms-backend/lib/dicts/agency"
	departmentprovider "hrms-backend/lib/dicts/department"
	xlsexport "hrms-backend/lib/export/xls"
	filestorage "hrms-backend/lib/file-storage"
	interviewhandler "hrms-backend/lib/interview"
	jobhandler "hrms-backend/lib/job"
	offerhandler "hrms-backend/lib/offer"
	"hrms-backend/lib/rbac"
	usershandler "hrms-backend/lib/users"
	workflowhandler "hrms-backend/lib/workflow"
	s3client "hrms-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewInstance(s3client.Client)
	xlsexport.NewHandler()
	usershandler.NewHandler()
	departmentprovider.NewHandler()
	agencyprovider.NewHandler()
	workflowhandler.NewHandler()
	candidatehandler.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	offerhandler.NewHandler()
	dashboardhandler.NewHandler()
	rbac.NewHandler()
}
