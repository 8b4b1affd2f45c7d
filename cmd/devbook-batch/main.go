// devbook-batch runs commands read from stdin, one per line, and prints the
// feedback of each. It stops at the first exit command.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/td0m/devbook/internal/config"
	"github.com/td0m/devbook/internal/logging"
	"github.com/td0m/devbook/pkg/logic"
	"github.com/td0m/devbook/pkg/persist"
)

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	cfg, err := config.Load("devbook-batch", os.Args[1:])
	check(err)
	logger, err := logging.New("devbook-batch", cfg.LogLevel)
	check(err)

	var storage persist.Storage = persist.InJSON(cfg.File)
	if cfg.Store == config.StoreRedis {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		storage = persist.InRedis(client, cfg.Redis.Key)
	}
	manager := logic.New(storage, logger)
	check(manager.Load())

	if failed := run(manager, os.Stdin, os.Stdout); failed > 0 {
		os.Exit(2)
	}
}

// run returns how many lines failed
func run(m *logic.Manager, in io.Reader, out io.Writer) int {
	failed := 0
	s := bufio.NewScanner(in)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		res, err := m.Execute(line)
		if err != nil {
			failed++
			fmt.Fprintf(out, "! %s\n", err)
			if !res.Mutated {
				continue
			}
		}
		fmt.Fprintln(out, res.Feedback)
		if res.Exit {
			break
		}
	}
	if err := s.Err(); err != nil {
		fmt.Fprintf(out, "! %s\n", err)
		failed++
	}
	return failed
}
