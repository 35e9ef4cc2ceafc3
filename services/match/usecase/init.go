package usecase

import (
	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/services/match"
)

// MatchUC implements the matchmaking use case interface.
type MatchUC struct {
	cfg        *models.Config
	intentRepo match.IntentRepo
	groupRepo  match.GroupRepo
	matchGW    match.MatchGW
}

// NewMatchUC creates the matchmaking use case.
func NewMatchUC(
	cfg *models.Config,
	intentRepo match.IntentRepo,
	groupRepo match.GroupRepo,
	matchGW match.MatchGW,
) *MatchUC {
	return &MatchUC{
		cfg:        cfg,
		intentRepo: intentRepo,
		groupRepo:  groupRepo,
		matchGW:    matchGW,
	}
}
