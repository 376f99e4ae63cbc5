// Command perft runs the move-generation conformance harness from
// the command line: parse a FEN, generate to a given depth, and print
// node and move-kind counts in the breakdown the published reference
// vectors use. It does not compare them against those vectors.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tbreese3/helios/internal/config"
	"github.com/tbreese3/helios/internal/logging"
	"github.com/tbreese3/helios/internal/movegen"
	"github.com/tbreese3/helios/internal/position"
	"github.com/tbreese3/helios/internal/util"
)

var out = message.NewPrinter(language.English)

var log = logging.GetLog("cmd/perft")

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (off|critical|error|warning|notice|info|debug)")
	fenFlag := flag.String("fen", position.StartFEN, "FEN to run perft from")
	depth := flag.Int("depth", 5, "perft depth")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile of the perft run to ./cpu.pprof")
	movesFlag := flag.String("moves", "", "space-separated UCI moves to apply to the FEN before running perft")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.LogLevel = *logLvl
	}

	pos, err := position.FromFEN(*fenFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}

	if *movesFlag != "" {
		for _, uci := range strings.Fields(*movesFlag) {
			m := movegen.MoveFromUCI(pos, uci)
			if m == 0 {
				fmt.Fprintln(os.Stderr, "not a legal move in the current position:", uci)
				os.Exit(1)
			}
			if !pos.MakeMoveInPlace(m) {
				fmt.Fprintln(os.Stderr, "move rejected as illegal:", uci)
				os.Exit(1)
			}
		}
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	log.Infof("running perft depth %d on %s", *depth, pos.ToFEN())
	start := time.Now()
	result := movegen.Perft(pos, *depth)
	elapsed := time.Since(start)

	out.Printf("FEN         : %s\n", pos.ToFEN())
	out.Printf("Depth       : %d\n", *depth)
	out.Printf("Time        : %s\n", elapsed)
	out.Printf("NPS         : %d\n", util.Nps(result.Nodes, elapsed))
	out.Printf("Nodes       : %d\n", result.Nodes)
	out.Printf("Captures    : %d\n", result.Captures)
	out.Printf("En Passant  : %d\n", result.EnPassant)
	out.Printf("Castles     : %d\n", result.Castles)
	out.Printf("Promotions  : %d\n", result.Promotions)
	out.Printf("Checks      : %d\n", result.Checks)
	out.Printf("Checkmates  : %d\n", result.CheckMates)
}

