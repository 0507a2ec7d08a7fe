package repo

import (
	"github.com/drivahub/drivahub/internal/pg"
	loadrepo "github.com/drivahub/drivahub/internal/repo/load-repo"
	statementrepo "github.com/drivahub/drivahub/internal/repo/statement-repo"
	userrepo "github.com/drivahub/drivahub/internal/repo/user-repo"
	"github.com/drivahub/drivahub/internal/service/authservice"
	"github.com/drivahub/drivahub/internal/service/loadservice"
	"github.com/drivahub/drivahub/internal/service/profileservice"
	"github.com/drivahub/drivahub/internal/service/statementservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	ProfileRepo   profileservice.Repo
	StatementRepo statementservice.Repo
	LoadRepo      loadservice.Repo
	TxManager     pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	statementRepo := statementrepo.New(conn, txManager)
	loadRepo := loadrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:      userRepo,
		ProfileRepo:   userRepo,
		StatementRepo: statementRepo,
		LoadRepo:      loadRepo,
		TxManager:     txManager,
	}
}
