package initializers

import (
	"context"

	"police-hr-backend/config"
	"police-hr-backend/fiberlog"
	armoryprovider "police-hr-backend/lib/armory"
	attendanceprovider "police-hr-backend/lib/attendance"
	authprovider "police-hr-backend/lib/auth"
	committeeprovider "police-hr-backend/lib/committee"
	complaintprovider "police-hr-backend/lib/complaint"
	employeeprovider "police-hr-backend/lib/employee"
	xlsexport "police-hr-backend/lib/export/xls"
	filestorage "police-hr-backend/lib/file-storage"
	gptprovider "police-hr-backend/lib/gpt"
	inventoryprovider "police-hr-backend/lib/inventory"
	"police-hr-backend/lib/mailer"
	rewardprovider "police-hr-backend/lib/reward"
	shiftprovider "police-hr-backend/lib/shift"
	tenantprovider "police-hr-backend/lib/tenant"
	connectionhub "police-hr-backend/lib/ws/hub/connection-hub"
	s3client "police-hr-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewInstance(s3client.Client)
	mailer.NewHandler()
	xlsexport.NewHandler()
	gptprovider.NewHandler()
	authprovider.NewHandler()
	tenantprovider.NewHandler()
	employeeprovider.NewHandler()
	committeeprovider.NewHandler()
	complaintprovider.NewHandler()
	shiftprovider.NewHandler()
	attendanceprovider.NewHandler()
	inventoryprovider.NewHandler()
	armoryprovider.NewHandler()
	rewardprovider.NewHandler()
}
