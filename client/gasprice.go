package client

import (
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/params"
)

// gasPriceSim produces a plausible 25-35 gwei gas price without any
// network call. The dashboard is a demo; the chain is never consulted.
type gasPriceSim struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newGasPriceSim() *gasPriceSim {
	return &gasPriceSim{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Sample returns the next simulated gas price in wei.
func (g *gasPriceSim) Sample() *big.Int {
	g.mu.Lock()
	gwei := 25 + g.rng.Float64()*10
	g.mu.Unlock()

	return big.NewInt(int64(gwei * params.GWei))
}
