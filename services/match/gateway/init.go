package gateway

import (
	"github.com/musafir-app/musafir/internal/pkg/models"
	nsqpkg "github.com/musafir-app/musafir/internal/pkg/nsq"
)

// MatchGW bundles the matchmaking service's outbound collaborators: the
// NSQ event bus and the destination geocoder. Either may be nil when
// disabled by configuration; calls then degrade to no-ops.
type MatchGW struct {
	cfg      *models.Config
	producer *nsqpkg.Producer
	geocoder *Geocoder
}

// NewMatchGW creates the gateway bundle.
func NewMatchGW(cfg *models.Config, producer *nsqpkg.Producer, geocoder *Geocoder) *MatchGW {
	return &MatchGW{
		cfg:      cfg,
		producer: producer,
		geocoder: geocoder,
	}
}
