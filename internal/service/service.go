package service

import (
	"github.com/dhanriti/tankflow/internal/config"
	"github.com/dhanriti/tankflow/internal/handlers/auth"
	"github.com/dhanriti/tankflow/internal/handlers/canvas"
	"github.com/dhanriti/tankflow/internal/handlers/flow"
	"github.com/dhanriti/tankflow/internal/handlers/funnel"
	"github.com/dhanriti/tankflow/internal/handlers/tank"
	"github.com/dhanriti/tankflow/internal/pg"
	"github.com/dhanriti/tankflow/internal/repo"
	authservice "github.com/dhanriti/tankflow/internal/service/authservice"
	canvasservice "github.com/dhanriti/tankflow/internal/service/canvasservice"
	flowservice "github.com/dhanriti/tankflow/internal/service/flowservice"
	funnelservice "github.com/dhanriti/tankflow/internal/service/funnelservice"
	tankservice "github.com/dhanriti/tankflow/internal/service/tankservice"
	pkgauth "github.com/dhanriti/tankflow/pkg/auth"
)

type Services struct {
	AuthService   auth.Service
	CanvasService canvas.Service
	TankService   tank.Service
	FunnelService funnel.Service
	FlowService   flow.Service

	// FlowEngine is the concrete flow service; the sweeper drives it with
	// internal trigger options that the HTTP surface never exposes.
	FlowEngine *flowservice.Service

	JWTService *pkgauth.JWTService
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	canvasService := canvasservice.New(repo.CanvasRepo, repo.FunnelRepo)
	tankService := tankservice.New(repo.TankRepo, repo.CanvasRepo, repo.FunnelRepo, txManager)
	funnelService := funnelservice.New(repo.FunnelRepo, repo.CanvasRepo, repo.TankRepo)
	flowService := flowservice.New(repo.CanvasRepo, repo.TankRepo, repo.FunnelRepo, repo.FlowRepo, txManager)

	return &Services{
		AuthService:   authService,
		CanvasService: canvasService,
		TankService:   tankService,
		FunnelService: funnelService,
		FlowService:   flowService,
		FlowEngine:    flowService,
		JWTService:    jwtService,
	}
}
