// Package mockdata synthesizes company profiles from the per-industry
// distributions held in a domain.Catalog.
package mockdata

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/i2y/vendorrisk/internal/domain"
)

// Generator draws randomized but bounded company profiles.
// It is safe for concurrent use; draws from the shared source are serialized.
type Generator struct {
	catalog *domain.Catalog
	logger  *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator reading from src. A nil src yields a
// time-seeded source.
func NewGenerator(catalog *domain.Catalog, src rand.Source, logger *slog.Logger) *Generator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1)
	}
	return &Generator{
		catalog: catalog,
		logger:  logger.With("component", "mockdata_generator"),
		rng:     rand.New(src),
	}
}

// NewSeededGenerator is a convenience for deterministic output.
func NewSeededGenerator(catalog *domain.Catalog, seed uint64, logger *slog.Logger) *Generator {
	return NewGenerator(catalog, rand.NewPCG(seed, seed), logger)
}

// Generate classifies companyName and synthesizes a profile within the
// matching industry's ranges. The name is used as supplied.
func (g *Generator) Generate(companyName string) domain.CompanyProfile {
	p := g.catalog.ProfileFor(companyName)
	c := g.catalog

	g.mu.Lock()
	defer g.mu.Unlock()

	profile := domain.CompanyProfile{
		Name:            companyName,
		Industry:        p.Industry,
		BaseRiskScore:   round1(g.uniform(p.BaseRisk)),
		FinancialHealth: g.pick(p.FinancialHealth),
		SecurityRating:  g.pick(p.SecurityRatings),
		ReputationScore: round1(g.uniform(p.Reputation)),
		Founded:         c.Founded.From + g.rng.IntN(c.Founded.To-c.Founded.From+1),
		Size:            g.pick(c.Sizes),
		Location:        g.pick(c.Locations),
		Compliance:      g.sample(c.Certifications, c.ComplianceMin+g.rng.IntN(c.ComplianceMax-c.ComplianceMin+1)),
	}

	g.logger.Debug("Generated company profile",
		slog.String("company", companyName),
		slog.String("industry", string(profile.Industry)),
		slog.Float64("base_risk_score", profile.BaseRiskScore))
	return profile
}

func (g *Generator) uniform(r domain.Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

// sample draws n distinct entries from pool, in draw order.
func (g *Generator) sample(pool []string, n int) []string {
	perm := g.rng.Perm(len(pool))
	out := make([]string, n)
	for i := range n {
		out[i] = pool[perm[i]]
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
