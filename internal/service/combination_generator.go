package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"retire-explorer/internal/domain"
)

// Shuffler es la fuente de aleatoriedad del generador. *rand.Rand la satisface.
type Shuffler interface {
	IntN(n int) int
}

// CombinationSource expone las ternas curadas y la búsqueda de opciones.
type CombinationSource interface {
	Curated() []domain.CuratedEntry
	Option(dim domain.Dimension, id string) (domain.Option, bool)
}

// CombinationGenerator resuelve las ternas curadas y opcionalmente las mezcla.
type CombinationGenerator struct {
	source   CombinationSource
	shuffler Shuffler
	logger   *zap.Logger
}

// NewCombinationGenerator crea el generador. Con shuffler nil el orden curado se conserva.
func NewCombinationGenerator(source CombinationSource, shuffler Shuffler, logger *zap.Logger) *CombinationGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CombinationGenerator{source: source, shuffler: shuffler, logger: logger}
}

// WithShuffler devuelve una copia del generador que usa otra fuente aleatoria.
func (g *CombinationGenerator) WithShuffler(shuffler Shuffler) *CombinationGenerator {
	next := *g
	next.shuffler = shuffler
	return &next
}

// Generate devuelve las combinaciones resolubles. Las ternas con algún id inexistente se descartan.
func (g *CombinationGenerator) Generate() []domain.Combination {
	curated := g.source.Curated()
	out := make([]domain.Combination, 0, len(curated))

	for i, e := range curated {
		location, okL := g.source.Option(domain.DimensionLocation, e.LocationID)
		family, okF := g.source.Option(domain.DimensionFamily, e.FamilyID)
		lifestyle, okS := g.source.Option(domain.DimensionLifestyle, e.LifestyleID)
		if !okL || !okF || !okS {
			g.logger.Warn("dropping unresolved curated combination",
				zap.Int("index", i+1),
				zap.String("country", e.Country),
				zap.String("location_id", e.LocationID),
				zap.String("family_id", e.FamilyID),
				zap.String("lifestyle_id", e.LifestyleID),
			)
			continue
		}
		out = append(out, domain.Combination{
			ID:            fmt.Sprintf("combo-%d", i+1),
			Country:       e.Country,
			CountryCode:   e.CountryCode,
			ImageURL:      e.ImageURL,
			Location:      location,
			FamilyContext: family,
			Lifestyle:     lifestyle,
		})
	}

	if g.shuffler == nil {
		return out
	}
	shuffle(out, g.shuffler)
	separateCountries(out)
	return out
}

// shuffle es Fisher-Yates desde el final.
func shuffle(items []domain.Combination, r Shuffler) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// separateCountries hace una sola pasada hacia adelante: si i repite el país de i-1,
// lo intercambia con la primera entrada posterior de otro país. Si no hay ninguna,
// el par repetido queda.
func separateCountries(items []domain.Combination) {
	for i := 1; i < len(items); i++ {
		if items[i].Country != items[i-1].Country {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if items[j].Country != items[i].Country {
				items[i], items[j] = items[j], items[i]
				break
			}
		}
	}
}

// NewSeededShuffler crea un PRNG determinista para el seed dado.
func NewSeededShuffler(seed int64) *rand.Rand {
	// #nosec G404 -- mezcla de presentación, no criptográfica.
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// NewSeed genera un seed con crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// LockedShuffler serializa el acceso a un *rand.Rand compartido entre requests.
type LockedShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewLockedShuffler(seed int64) *LockedShuffler {
	return &LockedShuffler{rnd: NewSeededShuffler(seed)}
}

func (s *LockedShuffler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
