package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/andersk/elect/ballot"
	"github.com/andersk/elect/internal/stv"
	"github.com/andersk/elect/report"
	"github.com/andersk/elect/weight"
	"github.com/andersk/elect/weight/decimalw"
	"github.com/andersk/elect/weight/hwfloat"
	"github.com/andersk/elect/weight/rational"
)

const version = "elect 1.0.0"

const usageHeader = `Usage: elect [-w N|--winners N] [--calc TYPE] FILE...

Each FILE has one ballot description per line, with candidate names
separated by > or = to indicate strict and equal preference. Prefixing
a ballot with WEIGHT: makes WEIGHT copies of it.

  Chocolate > Vanilla > Strawberry > Cookie Dough
  Cookie Dough > Chocolate > Strawberry
  2: Strawberry = Chocolate > Vanilla

Candidate names are case-sensitive, and may include whitespace but may
not include >, =, or :. Whitespace around operators is ignored.
Candidates not listed in a ballot are tied for least preferred.

Pass - to read ballots from stdin.

`

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	var winners int
	flag.IntVar(&winners, "w", 1, "elect an N-winner committee")
	flag.IntVar(&winners, "winners", 1, "elect an N-winner committee")
	var calc string
	flag.StringVar(&calc, "calc", "rational", "numeric backend: rational, hwfloat, or decimal")
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageHeader)
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch calc {
	case "rational":
		err = run(rational.Backend(), winners, files)
	case "hwfloat":
		err = run(hwfloat.Backend(), winners, files)
	case "decimal":
		err = run(decimalw.Backend(), winners, files)
	default:
		log.Fatalf("unknown --calc backend %q", calc)
	}
	if err != nil {
		log.WithError(err).Fatal("election tally failed")
	}
}

func run[T weight.Value[T]](backend weight.Backend[T], numSeats int, filenames []string) error {
	table := ballot.NewTable()
	var ballots []stv.Ballot[T]

	for _, filename := range filenames {
		ballots1, err := readBallots(backend, table, filename)
		if err != nil {
			return err
		}
		ballots = append(ballots, ballots1...)
	}

	if len(ballots) == 0 {
		return fmt.Errorf("no ballots found")
	}
	if numSeats < 1 || numSeats > table.Len() {
		return fmt.Errorf("--winners must be between 1 and the number of candidates (%d)", table.Len())
	}

	winners := stv.Run(backend, table.Len(), numSeats, ballots)
	report.Print(os.Stdout, backend, table.Names(), ballots, numSeats, winners)
	return nil
}

func readBallots[T weight.Value[T]](backend weight.Backend[T], table *ballot.Table, filename string) ([]stv.Ballot[T], error) {
	var r io.Reader
	if filename == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defer f.Close()
		r = f
	}
	return ballot.Parse(backend, table, filename, r)
}
