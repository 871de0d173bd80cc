package testkit

import (
	"fmt"
	"math/rand"
	"strings"
)

// LeadHeaders is the column layout of generated lead lists
var LeadHeaders = []string{"First Name", "Last Name", "Job Title", "Company Name", "Email", "Linkedin Url"}

// LeadGeneratorConfig configures the lead list generator
type LeadGeneratorConfig struct {
	Count            int
	Seed             int64
	MissingEmailRate float64 // share of rows with a blank Email cell
}

// DefaultLeadConfig returns defaults for lead list generation
func DefaultLeadConfig() LeadGeneratorConfig {
	return LeadGeneratorConfig{
		Count:            200,
		Seed:             42,
		MissingEmailRate: 0.2,
	}
}

var (
	firstNames = []string{"Ann", "Bob", "Carla", "Dev", "Emeka", "Fatima", "Goran", "Hana"}
	lastNames  = []string{"Ng", "Okafor", "Silva", "Meyer", "Tanaka", "Kowalski"}

	// Raw titles as exported by prospecting tools, messy casing included.
	rawTitles = []string{
		"vp of sales",
		"SENIOR SOFTWARE ENGINEER",
		"head of it",
		"Head of IT Infrastructure",
		"Head of Information Technology and Security",
		"Director, CISO",
		"Director of Information Security (CISO)",
		"Chief Information Security Officer",
		"CIO / CISO",
		"it manager",
		"director of marketing",
		"Chief Technology Officer",
		"  account executive  ",
	}

	rawCompanies = []string{
		"Acme (Holdings) Inc.",
		"IBM Corp",
		"globex corporation",
		"Initech LLC",
		"Umbrella Ltd",
		"Stark Industries Limited",
		"Coca-Cola Company",
		"Wayne Enterprises, Inc.",
		"SAP SE",
		"Hooli",
	}
)

// LeadGenerator generates synthetic lead lists
type LeadGenerator struct {
	config LeadGeneratorConfig
	rng    *rand.Rand
}

// NewLeadGenerator creates a new lead generator
func NewLeadGenerator(config LeadGeneratorConfig) *LeadGenerator {
	return &LeadGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateRows returns the header row followed by Count lead rows, ready for
// WriteWorkbook. Blank emails are nil cells.
func (g *LeadGenerator) GenerateRows() [][]interface{} {
	rows := make([][]interface{}, 0, g.config.Count+1)

	header := make([]interface{}, len(LeadHeaders))
	for i, h := range LeadHeaders {
		header[i] = h
	}
	rows = append(rows, header)

	for i := 0; i < g.config.Count; i++ {
		rows = append(rows, g.generateLead(i))
	}
	return rows
}

func (g *LeadGenerator) generateLead(i int) []interface{} {
	first := g.pick(firstNames)
	last := g.pick(lastNames)
	slug := strings.ToLower(fmt.Sprintf("%s-%s-%04d", first, last, i+1))

	var email interface{}
	if g.rng.Float64() >= g.config.MissingEmailRate {
		email = slug + "@example.com"
	}

	return []interface{}{
		first,
		last,
		g.pick(rawTitles),
		g.pick(rawCompanies),
		email,
		"https://www.linkedin.com/in/" + slug,
	}
}

func (g *LeadGenerator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}
