package repo

import (
	"github.com/dhanriti/tankflow/internal/pg"
	canvasrepo "github.com/dhanriti/tankflow/internal/repo/canvas-repo"
	flowrepo "github.com/dhanriti/tankflow/internal/repo/flow-repo"
	funnelrepo "github.com/dhanriti/tankflow/internal/repo/funnel-repo"
	tankrepo "github.com/dhanriti/tankflow/internal/repo/tank-repo"
	userrepo "github.com/dhanriti/tankflow/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo   *userrepo.Repository
	CanvasRepo *canvasrepo.Repository
	TankRepo   *tankrepo.Repository
	FunnelRepo *funnelrepo.Repository
	FlowRepo   *flowrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:   userrepo.New(conn),
		CanvasRepo: canvasrepo.New(conn, txManager),
		TankRepo:   tankrepo.New(conn, txManager),
		FunnelRepo: funnelrepo.New(conn),
		FlowRepo:   flowrepo.New(conn),
	}
}
