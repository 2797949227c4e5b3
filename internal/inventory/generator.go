package inventory

import (
	"fmt"
	"math/rand"
	"time"

	"server-faker/pkg/schema"
)

var (
	tokenChars = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	locations  = []string{"US-East", "US-West", "EU-Central", "Asia-Pacific"}
	oses       = []string{"Ubuntu 20.04", "CentOS 7", "Debian 11", "Windows Server 2019"}
	cpuSizes   = []int{2, 4, 8, 16}
	ramSizes   = []int{4, 8, 16, 32}
	diskSizes  = []int{100, 250, 500, 1000}
)

// Generator fabricates inventory records for one schema.
type Generator struct {
	sc  *schema.Schema
	rnd *rand.Rand
}

// New returns a generator seeded with seed. A zero seed picks a
// time-based seed, so runs are not reproducible unless one is given.
func New(sc *schema.Schema, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{sc: sc, rnd: rand.New(rand.NewSource(seed))}
}

// Generate fabricates exactly count records in generation order.
// Identifiers are random draws with no uniqueness guarantee.
func (g *Generator) Generate(count int) []Record {
	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.record(i))
	}
	return records
}

func (g *Generator) record(i int) Record {
	rec := Record{
		ServerID:     "SRV" + g.token(6),
		ServerName:   "Server" + g.token(6),
		IPv4:         g.address(i),
		Description:  fmt.Sprintf("Generated server %d", i+1),
		Location:     locations[g.rnd.Intn(len(locations))],
		OS:           oses[g.rnd.Intn(len(oses))],
		IntervalTime: 5 + g.rnd.Intn(26),
		CPU:          cpuSizes[g.rnd.Intn(len(cpuSizes))],
		RAM:          ramSizes[g.rnd.Intn(len(ramSizes))],
		Disk:         diskSizes[g.rnd.Intn(len(diskSizes))],
	}
	if len(g.sc.Statuses) > 0 {
		rec.Status = g.sc.Statuses[g.rnd.Intn(len(g.sc.Statuses))]
	}
	return rec
}

func (g *Generator) token(length int) string {
	runes := make([]rune, length)
	for i := range runes {
		runes[i] = tokenChars[g.rnd.Intn(len(tokenChars))]
	}
	return string(runes)
}

func (g *Generator) address(i int) string {
	if g.sc.AddressMode == schema.AddressSequential {
		return fmt.Sprintf("%s.%d", g.sc.Subnet, i+1)
	}
	// Split the index into octets so addresses stay unique up to 2^24 rows.
	return fmt.Sprintf("10.%d.%d.%d", i>>16&0xff, i>>8&0xff, i&0xff)
}
