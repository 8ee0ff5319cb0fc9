package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var firstNames = []string{
	"Ivan", "Olga", "Dmitry", "Anna", "Sergey", "Elena", "Alexey", "Maria",
	"Nikolay", "Tatiana", "Pavel", "Natalia", "Mikhail", "Irina", "Andrey",
	"Svetlana", "Victor", "Ekaterina", "Roman", "Yulia",
}

var lastNames = []string{
	"Ivanov", "Petrova", "Sidorov", "Smirnova", "Kuznetsov", "Popova",
	"Volkov", "Sokolova", "Morozov", "Lebedeva", "Novikov", "Kozlova",
	"Fedorov", "Orlova", "Egorov", "Pavlova",
}

var emailDomains = []string{"example.com", "example.org", "example.net"}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DataGenerator produces the synthetic attribute values for seeding.
// Uniqueness of emails, booking references and ticket numbers is tracked
// per generator, i.e. per seeding run.
type DataGenerator struct {
	rand *rand.Rand

	usedEmails  map[string]struct{}
	usedRefs    map[string]struct{}
	usedTickets map[string]struct{}
	emailSeq    int
}

func NewDataGenerator(rng *rand.Rand) *DataGenerator {
	return &DataGenerator{
		rand:        rng,
		usedEmails:  make(map[string]struct{}),
		usedRefs:    make(map[string]struct{}),
		usedTickets: make(map[string]struct{}),
	}
}

func (g *DataGenerator) FirstName() string {
	return firstNames[g.rand.Intn(len(firstNames))]
}

func (g *DataGenerator) LastName() string {
	return lastNames[g.rand.Intn(len(lastNames))]
}

// UniqueEmail derives an address from the name, suffixing a counter on
// collision. Uniqueness is required by the Users.email constraint.
func (g *DataGenerator) UniqueEmail(first, last string) string {
	domain := emailDomains[g.rand.Intn(len(emailDomains))]
	base := strings.ToLower(first) + "." + strings.ToLower(last)
	email := base + "@" + domain
	for {
		if _, taken := g.usedEmails[email]; !taken {
			g.usedEmails[email] = struct{}{}
			return email
		}
		g.emailSeq++
		email = fmt.Sprintf("%s%d@%s", base, g.emailSeq, domain)
	}
}

func (g *DataGenerator) Phone() string {
	return fmt.Sprintf("+7%010d", g.rand.Int63n(10_000_000_000))
}

// PassportNumber follows the "## ######" series/number layout.
func (g *DataGenerator) PassportNumber() string {
	return fmt.Sprintf("%02d %06d", g.rand.Intn(100), g.rand.Intn(1_000_000))
}

// SeatNumber yields rows 10-49, letters A-F.
func (g *DataGenerator) SeatNumber() string {
	return fmt.Sprintf("%d%d%c", 1+g.rand.Intn(4), g.rand.Intn(10), rune('A'+g.rand.Intn(6)))
}

// BookingReference returns a run-unique 6-character [A-Z0-9] code.
func (g *DataGenerator) BookingReference() string {
	for {
		b := make([]byte, 6)
		for i := range b {
			b[i] = referenceAlphabet[g.rand.Intn(len(referenceAlphabet))]
		}
		ref := string(b)
		if _, taken := g.usedRefs[ref]; !taken {
			g.usedRefs[ref] = struct{}{}
			return ref
		}
	}
}

// TicketNumber returns a run-unique 9-digit number.
func (g *DataGenerator) TicketNumber() string {
	for {
		n := fmt.Sprintf("%09d", g.rand.Intn(1_000_000_000))
		if _, taken := g.usedTickets[n]; !taken {
			g.usedTickets[n] = struct{}{}
			return n
		}
	}
}

// TimeBetween picks a uniformly distributed instant in [from, to).
func (g *DataGenerator) TimeBetween(from, to time.Time) time.Time {
	span := to.Unix() - from.Unix()
	if span <= 0 {
		return from
	}
	return time.Unix(from.Unix()+g.rand.Int63n(span), 0).UTC()
}

// IntBetween picks uniformly from [min, max] inclusive.
func (g *DataGenerator) IntBetween(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

// Price picks a price in [min, max] rounded to two decimals.
func (g *DataGenerator) Price(min, max float64) float64 {
	cents := int64(min*100) + g.rand.Int63n(int64(max*100)-int64(min*100)+1)
	return float64(cents) / 100
}

// Maybe returns the generated value with probability p, nil otherwise.
func (g *DataGenerator) Maybe(p float64, gen func() string) *string {
	if g.rand.Float64() >= p {
		return nil
	}
	v := gen()
	return &v
}
