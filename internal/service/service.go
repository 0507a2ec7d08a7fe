package service

import (
	"github.com/drivahub/drivahub/internal/events"
	"github.com/drivahub/drivahub/internal/handlers/auth"
	"github.com/drivahub/drivahub/internal/handlers/dashboard"
	"github.com/drivahub/drivahub/internal/handlers/loads"
	"github.com/drivahub/drivahub/internal/handlers/profile"
	"github.com/drivahub/drivahub/internal/handlers/reports"
	"github.com/drivahub/drivahub/internal/handlers/statements"
	"github.com/drivahub/drivahub/internal/handlers/uploads"
	"github.com/drivahub/drivahub/internal/ingest"

	pkgauth "github.com/drivahub/drivahub/pkg/auth"

	"github.com/drivahub/drivahub/internal/repo"
	"github.com/drivahub/drivahub/internal/service/authservice"
	"github.com/drivahub/drivahub/internal/service/dashboardservice"
	"github.com/drivahub/drivahub/internal/service/ingestservice"
	"github.com/drivahub/drivahub/internal/service/loadservice"
	"github.com/drivahub/drivahub/internal/service/profileservice"
	"github.com/drivahub/drivahub/internal/service/reportservice"
	"github.com/drivahub/drivahub/internal/service/statementservice"
)

type Services struct {
	AuthService      auth.Service
	ProfileService   profile.Service
	StatementService statements.Service
	LoadService      loads.Service
	IngestService    uploads.Service
	DashboardService dashboard.Service
	ReportService    reports.Service
}

func New(
	repo *repo.Repositories,
	jwtService pkgauth.JWTServiceInterface,
	extractor ingestservice.Extractor,
	publisher events.Publisher,
) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	ingestService := ingestservice.New(
		extractor,
		repo.StatementRepo,
		repo.LoadRepo,
		repo.TxManager,
		publisher,
		ingest.New(),
	)

	return &Services{
		AuthService:      authService,
		ProfileService:   profileservice.New(repo.ProfileRepo),
		StatementService: statementservice.New(repo.StatementRepo),
		LoadService:      loadservice.New(repo.LoadRepo),
		IngestService:    ingestService,
		DashboardService: dashboardservice.New(repo.StatementRepo),
		ReportService:    reportservice.New(repo.ProfileRepo, repo.StatementRepo, repo.LoadRepo),
	}
}
