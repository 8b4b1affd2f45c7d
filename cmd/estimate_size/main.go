// estimate_size measures how large the json store grows and how long it
// takes to save and load a big address book.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/td0m/devbook/pkg/model"
	"github.com/td0m/devbook/pkg/persist"
)

var (
	projects   = flag.Int("projects", 2000, "Number of projects")
	deadlines  = flag.Int("deadlines", 20, "Deadlines per project")
	developers = flag.Int("developers", 5000, "Number of developers")
	clients    = flag.Int("clients", 1000, "Number of clients")
)

func main() {
	flag.Parse()
	file := filepath.Join(os.TempDir(), "devbook.json")
	p := persist.InJSON(file)

	s := generate(rand.New(rand.NewSource(time.Now().UnixNano())))
	m, err := model.FromSnapshot(s)
	check(err)

	writeTime := measureTime(func() {
		check(p.Save(m.Snapshot()))
	})

	readTime := measureTime(func() {
		loaded, err := p.Load()
		check(err)
		_, err = model.FromSnapshot(loaded)
		check(err)
	})

	info, err := os.Stat(file)
	check(err)
	fmt.Printf("Projects: %d with %d deadlines each\n", *projects, *deadlines)
	fmt.Printf("Developers: %d, clients: %d\n", *developers, *clients)
	fmt.Printf("File size: %dMB\n", info.Size()/1024/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
}

func generate(r *rand.Rand) model.Snapshot {
	s := model.Snapshot{}
	names := make([]string, *projects)
	for i := range names {
		names[i] = "Project " + randomString(r, 10)
		dls := make([]string, *deadlines)
		for j := range dls {
			dls[j] = fmt.Sprintf("%02d-%02d-%d,%s,%s,%d",
				r.Intn(28)+1, r.Intn(12)+1, 2020+r.Intn(10), randomString(r, 20),
				[]string{"HIGH", "MEDIUM", "LOW"}[r.Intn(3)], r.Intn(2))
		}
		s.Projects = append(s.Projects, model.ProjectRecord{
			Name: names[i], Description: randomString(r, 40), Deadlines: dls,
		})
	}
	contact := func(prefix string, i int) model.ContactRecord {
		c := model.ContactRecord{
			Name:    fmt.Sprintf("%s %d %s", prefix, i, randomString(r, 8)),
			Phone:   fmt.Sprintf("9%07d", r.Intn(10000000)),
			Email:   randomString(r, 8) + "@example.com",
			Address: randomString(r, 30),
			Role:    "Engineer",
		}
		if len(names) > 0 {
			c.Projects = []string{names[r.Intn(len(names))]}
		}
		return c
	}
	for i := 0; i < *developers; i++ {
		s.Developers = append(s.Developers, model.DeveloperRecord{
			ContactRecord: contact("Developer", i), Salary: "5000", DateJoined: "01-01-2020",
		})
	}
	for i := 0; i < *clients; i++ {
		s.Clients = append(s.Clients, model.ClientRecord{
			ContactRecord: contact("Client", i), Organisation: "Acme", Document: "https://docs.example.com/" + randomString(r, 6),
		})
	}
	return s
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(r *rand.Rand, l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
